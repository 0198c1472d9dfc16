package engine

import (
	"context"
	"log"
	"os"
	"sync"

	pdflib "github.com/ledongthuc/pdf"

	"docgrip/internal/domain"
)

// DefaultBaseColumns is the wrap width at 100% zoom.
const DefaultBaseColumns = 80

// PDF is the production Engine backed by ledongthuc/pdf.
type PDF struct {
	mu sync.Mutex

	file   *os.File
	reader *pdflib.Reader
	path   string

	pages   int
	outline []*domain.OutlineNode
	texts   map[int]string // page -> extracted text, filled lazily

	visible int // 0-based page the viewport shows

	zoomMode      domain.ZoomMode
	zoomFactor    float64
	baseColumns   int
	viewportWidth int

	selection string

	caseSensitive bool
}

// Option configures a PDF engine.
type Option func(*PDF)

// WithBaseColumns sets the wrap width used at 100% zoom.
func WithBaseColumns(cols int) Option {
	return func(p *PDF) {
		if cols > 0 {
			p.baseColumns = cols
		}
	}
}

// WithCaseSensitiveSearch makes Search match case-sensitively.
func WithCaseSensitiveSearch(on bool) Option {
	return func(p *PDF) { p.caseSensitive = on }
}

// NewPDF creates an engine with no document loaded.
func NewPDF(opts ...Option) *PDF {
	p := &PDF{
		texts:       make(map[int]string),
		zoomMode:    domain.ZoomFitWidth,
		zoomFactor:  1.0,
		baseColumns: DefaultBaseColumns,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load opens the document at path. A failed load leaves any previously
// loaded document untouched and returns a *LoadError.
func (p *PDF) Load(path string) error {
	file, reader, err := pdflib.Open(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Swap in the new document before releasing the old handle.
	old := p.file
	p.file = file
	p.reader = reader
	p.path = path
	p.pages = reader.NumPage()
	p.texts = make(map[int]string)
	p.visible = 0
	p.selection = ""
	p.outline = readOutline(reader)

	if old != nil {
		_ = old.Close()
	}

	log.Printf("Loaded %s: %d pages, %d outline roots", path, p.pages, len(p.outline))
	return nil
}

// PageCount returns the number of pages, 0 when no document is loaded.
func (p *PDF) PageCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pages
}

// JumpTo moves the viewport to a 0-based page index.
func (p *PDF) JumpTo(page int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if page < 0 || page >= p.pages {
		return
	}
	p.visible = page
}

// VisiblePage returns the 0-based page the viewport shows.
func (p *PDF) VisiblePage() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

// PageText extracts and caches the plain text of a 0-based page.
func (p *PDF) PageText(page int) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pageTextLocked(page)
}

func (p *PDF) pageTextLocked(page int) string {
	if p.reader == nil || page < 0 || page >= p.pages {
		return ""
	}
	if text, ok := p.texts[page]; ok {
		return text
	}

	// ledongthuc/pdf pages are 1-based.
	pg := p.reader.Page(page + 1)
	if pg.V.IsNull() {
		p.texts[page] = ""
		return ""
	}
	text, err := pg.GetPlainText(nil)
	if err != nil {
		log.Printf("Text extraction failed for page %d: %v", page+1, err)
		text = ""
	}
	p.texts[page] = text
	return text
}

// Search scans all pages for query in page order.
func (p *PDF) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	return findAll(ctx, p, query, p.caseSensitive)
}

// Outline returns the table of contents read at load time.
func (p *PDF) Outline() []*domain.OutlineNode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.outline
}

// SetZoomFactor applies a fixed zoom factor.
func (p *PDF) SetZoomFactor(factor float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if factor <= 0 {
		return
	}
	p.zoomMode = domain.ZoomFixed
	p.zoomFactor = factor
}

// SetFitToWidth switches to fit-to-width mode.
func (p *PDF) SetFitToWidth() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.zoomMode = domain.ZoomFitWidth
}

// ZoomMode reports the current zoom mode and factor.
func (p *PDF) ZoomMode() (domain.ZoomMode, float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.zoomMode, p.zoomFactor
}

// WrapWidth returns the reflow column for the current zoom state.
func (p *PDF) WrapWidth() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.zoomMode == domain.ZoomFitWidth {
		if p.viewportWidth > 0 {
			return p.viewportWidth
		}
		return p.baseColumns
	}

	cols := int(float64(p.baseColumns) * p.zoomFactor)
	if cols < 20 {
		cols = 20
	}
	return cols
}

// SetViewportWidth records the terminal viewport width for fit-to-width.
func (p *PDF) SetViewportWidth(cols int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cols > 0 {
		p.viewportWidth = cols
	}
}

// SetSelection marks text as selected in the view.
func (p *PDF) SetSelection(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selection = text
}

// SelectedText returns the currently selected text, "" if none.
func (p *PDF) SelectedText() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.selection
}

// Close releases the document handle.
func (p *PDF) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.file == nil {
		return nil
	}
	err := p.file.Close()
	p.file = nil
	p.reader = nil
	p.pages = 0
	p.outline = nil
	p.texts = make(map[int]string)
	p.selection = ""
	return err
}
