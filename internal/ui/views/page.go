package views

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// PageRenderer draws the wrapped text of the visible page.
type PageRenderer struct {
	styles *Styles
}

// NewPageRenderer creates a new page renderer
func NewPageRenderer(styles *Styles) *PageRenderer {
	return &PageRenderer{styles: styles}
}

// Render wraps the page text to wrapWidth, highlights query matches,
// and returns the framed slice of lines starting at scroll.
func (p *PageRenderer) Render(text, query string, wrapWidth, scroll, width, height int) string {
	if wrapWidth < 1 {
		wrapWidth = 1
	}

	wrapped := lipgloss.NewStyle().Width(wrapWidth).Render(text)
	lines := strings.Split(wrapped, "\n")

	if scroll > len(lines)-1 {
		scroll = len(lines) - 1
	}
	if scroll < 0 {
		scroll = 0
	}

	visible := lines[scroll:]
	if len(visible) > height {
		visible = visible[:height]
	}

	out := make([]string, len(visible))
	for i, line := range visible {
		out[i] = p.highlight(line, query)
	}

	return p.styles.Page.Width(width - 2).Height(height).Render(strings.Join(out, "\n"))
}

// highlight marks every case-insensitive occurrence of query in line.
// Matches are located in the lowered copy; since lowering maps rune to
// rune, the original is sliced by rune offsets, never by the lowered
// copy's byte offsets (those diverge for runes whose lowercase form has
// a different byte length).
func (p *PageRenderer) highlight(line, query string) string {
	if query == "" {
		return line
	}

	lower := strings.ToLower(line)
	needle := strings.ToLower(query)
	runes := []rune(line)
	needleRunes := utf8.RuneCountInString(needle)

	var b strings.Builder
	emitted := 0 // rune offset already written
	from := 0    // byte offset into lower
	for {
		idx := strings.Index(lower[from:], needle)
		if idx < 0 {
			b.WriteString(string(runes[emitted:]))
			break
		}
		start := utf8.RuneCountInString(lower[:from+idx])
		end := start + needleRunes
		b.WriteString(string(runes[emitted:start]))
		b.WriteString(p.styles.Match.Render(string(runes[start:end])))
		emitted = end
		from = from + idx + len(needle)
	}
	return b.String()
}
