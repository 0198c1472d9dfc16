package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// Render renders the help screen, windowed to height with scrollOffset.
func (r *HelpRenderer) Render(height int, scrollOffset int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Docgrip Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Pages"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("←/→, h/l"), descStyle.Render("Previous/next page")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Scroll page text")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("g"), descStyle.Render("Go to page number")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("/"), descStyle.Render("Search document text")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("n"), descStyle.Render("Next match")))
	help.WriteString(fmt.Sprintf("  %s   %s\n", keyStyle.Render("Shift+N"), descStyle.Render("Previous match")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Outline"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("Tab"), descStyle.Render("Focus the outline sidebar")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("j/k"), descStyle.Render("Move between headings")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Enter"), descStyle.Render("Jump to the heading's page")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Zoom"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("+/-"), descStyle.Render("Cycle zoom presets")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("z"), descStyle.Render("Fit text to window width")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("y"), descStyle.Render("Copy the selected match line")))
	help.WriteString(fmt.Sprintf("  %s   %s\n", keyStyle.Render("Shift+H"), descStyle.Render("Highlight selection (not implemented)")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("v"), descStyle.Render("View raw document text in a pager")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("?"), descStyle.Render("Toggle this help")))
	help.WriteString(fmt.Sprintf("  %s         %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	content := help.String()
	lines := strings.Split(content, "\n")
	totalLines := len(lines)

	visibleHeight := height - 2
	if visibleHeight < 5 {
		visibleHeight = 5
	}

	if totalLines > visibleHeight {
		maxOffset := totalLines - visibleHeight
		if scrollOffset > maxOffset {
			scrollOffset = maxOffset
		}
		if scrollOffset < 0 {
			scrollOffset = 0
		}

		endLine := scrollOffset + visibleHeight
		if endLine > totalLines {
			endLine = totalLines
		}
		visibleLines := lines[scrollOffset:endLine]

		if scrollOffset > 0 {
			visibleLines[0] = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("↑ (more above)")
		}
		if endLine < totalLines {
			visibleLines[len(visibleLines)-1] = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("↓ (more below)")
		}

		return strings.Join(visibleLines, "\n")
	}

	return content
}
