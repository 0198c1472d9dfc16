package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docgrip/internal/viewer/outline"
)

// OutlineRenderer draws the table-of-contents sidebar.
type OutlineRenderer struct {
	styles *Styles
}

// NewOutlineRenderer creates a new outline renderer
func NewOutlineRenderer(styles *Styles) *OutlineRenderer {
	return &OutlineRenderer{styles: styles}
}

// Render draws the outline rows with the cursor row marked. Rows are
// indented two columns per nesting level and clipped to the sidebar.
func (o *OutlineRenderer) Render(rows []outline.Row, cursor int, focused bool, width, height int) string {
	inner := width - 4 // border and padding
	if inner < 4 {
		inner = 4
	}

	// Keep the cursor row on screen.
	offset := 0
	if cursor >= height {
		offset = cursor - height + 1
	}

	lines := make([]string, 0, height)
	for i := offset; i < len(rows) && len(lines) < height; i++ {
		row := rows[i]
		label := strings.Repeat("  ", row.Depth) + row.Node.Title
		label = clipLine(label, inner)

		if i == cursor && focused {
			label = o.styles.OutlineCursor.Render(padLine(label, inner))
		} else if i == cursor {
			label = o.styles.ToolbarValue.Render(label)
		}
		lines = append(lines, label)
	}

	body := strings.Join(lines, "\n")
	frame := o.styles.Outline
	if focused {
		frame = o.styles.OutlineFocus
	}
	return frame.Width(width - 2).Height(height).Render(body)
}

func clipLine(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

func padLine(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
