package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docgrip/internal/viewer/outline"
	"docgrip/internal/viewer/search"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Title       string
	Loaded      bool
	CurrentPage int
	TotalPages  int
	ZoomLabel   string

	PageText   string
	PageScroll int
	WrapWidth  int

	OutlineRows   []outline.Row
	OutlineCursor int
	OutlineFocus  bool
	SidebarWidth  int

	Query         string
	MatchCount    int
	MatchIndex    int
	SearchPending bool

	InputMode string
	InputView string

	StatusMessage string
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	pageRender    *PageRenderer
	outlineRender *OutlineRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		pageRender:    NewPageRenderer(styles),
		outlineRender: NewOutlineRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderToolbar(state))
	content.WriteString("\n")

	if bar := r.renderInputBar(state); bar != "" {
		content.WriteString(bar)
		content.WriteString("\n")
	}

	bodyHeight := state.Height - lipgloss.Height(content.String()) - 3
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	content.WriteString(r.renderBody(state, bodyHeight))
	content.WriteString("\n")
	content.WriteString(r.renderStatusBar(state))

	return content.String()
}

func (r *Renderer) renderToolbar(state ViewState) string {
	logo := r.styles.Title.Render("docgrip")

	var parts []string
	if state.Title != "" && state.Title != "." {
		parts = append(parts, r.styles.ToolbarValue.Render(state.Title))
	}
	if state.Loaded {
		parts = append(parts, fmt.Sprintf("page %s",
			r.styles.ToolbarValue.Render(fmt.Sprintf("%d / %d", state.CurrentPage, state.TotalPages))))
		parts = append(parts, fmt.Sprintf("zoom %s", r.styles.ToolbarValue.Render(state.ZoomLabel)))
	} else {
		parts = append(parts, "no document")
	}

	info := r.styles.Toolbar.Render(strings.Join(parts, "  │  "))
	line := logo + "  " + info

	hint := r.styles.Dim.Render("? help")
	gap := state.Width - lipgloss.Width(line) - lipgloss.Width(hint)
	if gap > 0 {
		line += strings.Repeat(" ", gap) + hint
	}
	return line
}

func (r *Renderer) renderInputBar(state ViewState) string {
	switch state.InputMode {
	case "search":
		return r.styles.SearchBar.Render("/") + state.InputView
	case "goto":
		return r.styles.SearchBar.Render("go to page: ") + state.InputView
	}
	return ""
}

func (r *Renderer) renderBody(state ViewState, height int) string {
	pageWidth := state.Width
	var sidebar string
	if len(state.OutlineRows) > 0 {
		sidebar = r.outlineRender.Render(
			state.OutlineRows, state.OutlineCursor, state.OutlineFocus,
			state.SidebarWidth, height)
		pageWidth -= state.SidebarWidth + 1
	}

	var pageText string
	switch {
	case !state.Loaded:
		pageText = "No document loaded.\n\nStart with: docgrip <file.pdf>"
	case state.CurrentPage == 0:
		pageText = "This document has no pages."
	default:
		pageText = state.PageText
	}

	page := r.pageRender.Render(pageText, state.Query, state.WrapWidth,
		state.PageScroll, pageWidth, height)

	if sidebar == "" {
		return page
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", page)
}

func (r *Renderer) renderStatusBar(state ViewState) string {
	if state.StatusMessage != "" {
		return r.styles.Status.Render(state.StatusMessage)
	}

	if state.SearchPending {
		return r.styles.SearchCount.Render(fmt.Sprintf("Searching for %q…", state.Query))
	}

	if state.Query != "" && state.MatchCount > 0 {
		pos := ""
		if state.MatchIndex != search.NoCursor {
			pos = fmt.Sprintf("%d of %d", state.MatchIndex+1, state.MatchCount)
		}
		return r.styles.SearchBar.Render(fmt.Sprintf("/%s", state.Query)) +
			"  " + r.styles.SearchCount.Render(pos)
	}

	return r.styles.Help.Render("←/→ pages · / search · n/N matches · tab outline · +/- zoom · y copy · v raw text · q quit")
}
