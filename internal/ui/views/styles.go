package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Toolbar       lipgloss.Style
	ToolbarValue  lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	SearchBar     lipgloss.Style
	SearchCount   lipgloss.Style
	Match         lipgloss.Style
	Page          lipgloss.Style
	Outline       lipgloss.Style
	OutlineFocus  lipgloss.Style
	OutlineCursor lipgloss.Style
	Help          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Toolbar:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ToolbarValue: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Dim:          lipgloss.NewStyle().Faint(true),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		SearchBar:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		SearchCount:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Match:        lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Page: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Outline: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		OutlineFocus: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		OutlineCursor: lipgloss.NewStyle().
			Background(lipgloss.Color("238")).
			Bold(true),
		Help: lipgloss.NewStyle().Faint(true),
	}
}
