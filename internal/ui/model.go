package ui

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"docgrip/internal/config"
	"docgrip/internal/eventbus"
	"docgrip/internal/ui/views"
	"docgrip/internal/viewer/coordinator"
	"docgrip/internal/viewer/zoom"
)

// sidebarWidth is the outline pane width; the page pane gets the rest.
const sidebarWidth = 32

// statusTimeout is how long transient status messages stay visible.
const statusTimeout = 3 * time.Second

type focusArea int

const (
	focusPage focusArea = iota
	focusOutline
)

// inputMode selects what the text input at the top is editing.
type inputMode string

const (
	inputNone   inputMode = ""
	inputSearch inputMode = "search"
	inputGoto   inputMode = "goto"
)

// Model represents the UI state
type Model struct {
	bus   eventbus.EventBus
	cfg   *config.Config
	coord *coordinator.Coordinator

	width  int
	height int

	focus         focusArea
	mode          inputMode
	textInput     textinput.Model
	outlineCursor int
	pageScroll    int
	lastPage      int

	searchPending bool
	status        string
	statusID      int

	showHelp   bool
	helpScroll int

	renderer *views.Renderer
	helpView *HelpRenderer
	rawOps   *RawTextOps

	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, coord *coordinator.Coordinator) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256

	return &Model{
		bus:       bus,
		cfg:       cfg,
		coord:     coord,
		textInput: ti,
		renderer:  views.NewRenderer(),
		helpView:  NewHelpRenderer(),
		rawOps:    NewRawTextOps(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.rawOps.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.coord.Engine().SetViewportWidth(m.pageColumns())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case searchResultsMsg:
		m.searchPending = false
		m.coord.Search.Apply(msg.seq, msg.query, msg.results)
		m.coord.SelectionForCurrentMatch()
		m.syncPage()
		if m.coord.Search.MatchCount() == 0 && m.coord.Search.Query() != "" {
			return m, m.setStatus(fmt.Sprintf("No matches for %q", msg.query))
		}
		return m, nil

	case pagerDoneMsg:
		if msg.err != nil {
			log.Printf("Pager error: %v", msg.err)
			return m, m.setStatus("Pager failed, see log")
		}
		return m, nil

	case statusExpiredMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil

	case EventMsg:
		return m.handleEvent(msg.Event)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch msg.String() {
		case "q", "esc", "?":
			m.showHelp = false
		case "down", "j":
			m.helpScroll++
		case "up", "k":
			if m.helpScroll > 0 {
				m.helpScroll--
			}
		}
		return m, nil
	}

	if m.mode != inputNone {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		if err := m.coord.Close(); err != nil {
			log.Printf("Close failed: %v", err)
		}
		return m, tea.Quit

	case "left", "h":
		m.coord.Navigation.Previous()
		m.syncPage()

	case "right", "l":
		m.coord.Navigation.Next()
		m.syncPage()

	case "g":
		m.mode = inputGoto
		m.textInput.Placeholder = fmt.Sprintf("1-%d", m.coord.Navigation.TotalPages())
		m.textInput.SetValue("")
		m.textInput.Focus()

	case "/":
		m.mode = inputSearch
		m.textInput.Placeholder = "Search..."
		m.textInput.SetValue(m.coord.Search.Query())
		m.textInput.Focus()

	case "n":
		m.coord.Search.Advance()
		m.coord.SelectionForCurrentMatch()
		m.syncPage()

	case "N":
		m.coord.Search.Retreat()
		m.coord.SelectionForCurrentMatch()
		m.syncPage()

	case "+", "=":
		if err := m.coord.Zoom.CyclePreset(1); err != nil {
			return m, m.setStatus(err.Error())
		}

	case "-", "_":
		if err := m.coord.Zoom.CyclePreset(-1); err != nil {
			return m, m.setStatus(err.Error())
		}

	case "z":
		if err := m.coord.Zoom.SetZoom(zoom.FitToWidthToken); err != nil {
			return m, m.setStatus(err.Error())
		}

	case "tab":
		if !m.coord.Outline.Empty() {
			if m.focus == focusPage {
				m.focus = focusOutline
			} else {
				m.focus = focusPage
			}
		}

	case "up", "k":
		if m.focus == focusOutline {
			if m.outlineCursor > 0 {
				m.outlineCursor--
			}
		} else if m.pageScroll > 0 {
			m.pageScroll--
		}

	case "down", "j":
		if m.focus == focusOutline {
			if m.outlineCursor < len(m.coord.Outline.Rows())-1 {
				m.outlineCursor++
			}
		} else {
			m.pageScroll++
		}

	case "enter":
		if m.focus == focusOutline {
			rows := m.coord.Outline.Rows()
			if m.outlineCursor < len(rows) {
				m.coord.Outline.Select(rows[m.outlineCursor].Node)
				m.syncPage()
			}
		}

	case "y":
		return m, m.copySelection()

	case "H":
		if m.coord.Engine().SelectedText() == "" {
			return m, m.setStatus("Nothing selected")
		}
		return m, m.setStatus("Highlighting is not implemented yet")

	case "v":
		return m, m.openRawText()

	case "?":
		m.showHelp = true
		m.helpScroll = 0
	}

	return m, nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = inputNone
		m.textInput.Blur()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.textInput.Value())
		mode := m.mode
		m.mode = inputNone
		m.textInput.Blur()

		switch mode {
		case inputGoto:
			return m, m.submitGoto(value)
		case inputSearch:
			return m, m.submitSearch(value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *Model) submitGoto(value string) tea.Cmd {
	page, err := strconv.Atoi(value)
	if err != nil {
		return m.setStatus(fmt.Sprintf("Not a page number: %q", value))
	}
	before := m.coord.Navigation.CurrentPage()
	m.coord.Navigation.Goto(page)
	m.syncPage()
	if m.coord.Navigation.CurrentPage() == before && page != before {
		return m.setStatus(fmt.Sprintf("Page %d is out of range", page))
	}
	return nil
}

func (m *Model) submitSearch(value string) tea.Cmd {
	seq, submitted := m.coord.Search.SetQuery(value)
	if !submitted {
		m.searchPending = false
		m.coord.SelectionForCurrentMatch()
		return nil
	}

	m.searchPending = true
	query := value
	return func() tea.Msg {
		return searchResultsMsg{
			seq:     seq,
			query:   query,
			results: m.coord.RunSearch(query),
		}
	}
}

func (m *Model) copySelection() tea.Cmd {
	text := m.coord.Engine().SelectedText()
	if text == "" {
		return m.setStatus("Nothing selected")
	}
	if err := clipboard.WriteAll(text); err != nil {
		log.Printf("Clipboard write failed: %v", err)
		return m.setStatus("Copy failed, see log")
	}
	return m.setStatus("Copied selection")
}

func (m *Model) openRawText() tea.Cmd {
	if !m.coord.Loaded() {
		return m.setStatus("No document loaded")
	}

	content := m.documentText()
	return func() tea.Msg {
		return pagerDoneMsg{err: m.rawOps.ShowInPager(content)}
	}
}

// documentText concatenates the extracted text of every page for the
// raw-text pager view.
func (m *Model) documentText() string {
	eng := m.coord.Engine()
	var b strings.Builder
	for i := 0; i < eng.PageCount(); i++ {
		fmt.Fprintf(&b, "── Page %d ──\n", i+1)
		b.WriteString(eng.PageText(i))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.DocumentLoadFailedEvent:
		return m, m.setStatus(fmt.Sprintf("Could not open %s: %v", filepath.Base(e.Path), e.Err))
	case eventbus.SearchCompletedEvent:
		if e.MatchCount > 0 {
			return m, m.setStatus(fmt.Sprintf("%d matches", e.MatchCount))
		}
	case eventbus.ErrorEvent:
		return m, m.setStatus(e.Message)
	}
	return m, nil
}

// syncPage resets the text scroll whenever the visible page changed.
func (m *Model) syncPage() {
	page := m.coord.Navigation.CurrentPage()
	if page != m.lastPage {
		m.pageScroll = 0
		m.lastPage = page
	}
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.status = text
	m.statusID++
	id := m.statusID
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusExpiredMsg{id: id}
	})
}

// pageColumns is the width available to the page text pane.
func (m *Model) pageColumns() int {
	cols := m.width - 4
	if !m.coord.Outline.Empty() {
		cols -= sidebarWidth + 1
	}
	if cols < 20 {
		cols = 20
	}
	return cols
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.helpView.Render(m.height, m.helpScroll)
	}

	eng := m.coord.Engine()
	page := m.coord.Navigation.CurrentPage()

	var pageText string
	if page > 0 {
		pageText = eng.PageText(page - 1)
	}

	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Title:         filepath.Base(m.coord.Info().Path),
		Loaded:        m.coord.Loaded(),
		CurrentPage:   page,
		TotalPages:    m.coord.Navigation.TotalPages(),
		ZoomLabel:     m.coord.Zoom.Label(),
		PageText:      pageText,
		PageScroll:    m.pageScroll,
		WrapWidth:     eng.WrapWidth(),
		OutlineRows:   m.coord.Outline.Rows(),
		OutlineCursor: m.outlineCursor,
		OutlineFocus:  m.focus == focusOutline,
		SidebarWidth:  sidebarWidth,
		Query:         m.coord.Search.Query(),
		MatchCount:    m.coord.Search.MatchCount(),
		MatchIndex:    m.coord.Search.CursorIndex(),
		SearchPending: m.searchPending,
		InputMode:     string(m.mode),
		InputView:     m.textInput.View(),
		StatusMessage: m.status,
	}

	return m.renderer.Render(state)
}

var _ tea.Model = (*Model)(nil)
