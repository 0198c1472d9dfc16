package engine

import (
	"context"
	"fmt"

	"docgrip/internal/domain"
)

// Engine is the rendering/parsing collaborator the viewer core talks to.
// It owns all byte-level format knowledge; the viewer only ever hands it
// 0-based page indices it has already validated.
type Engine interface {
	// Load opens and parses the document at path. On failure the engine
	// keeps whatever document was loaded before (if any) and returns a
	// *LoadError; this is reported, never fatal.
	Load(path string) error

	// PageCount returns the number of pages, 0 if no document is loaded.
	PageCount() int

	// JumpTo moves the visible viewport to the given 0-based page.
	// Indices are assumed valid; the viewer clamps before calling.
	JumpTo(page int)

	// VisiblePage returns the 0-based page the viewport is showing.
	VisiblePage() int

	// PageText returns the extracted plain text of a 0-based page.
	PageText(page int) string

	// Search scans the document for query and returns matches in page
	// order. It honors ctx cancellation; a cancelled scan returns the
	// matches found so far along with ctx.Err().
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)

	// Outline returns the document's table of contents, nil if absent.
	// The tree is read once after load and immutable afterwards.
	Outline() []*domain.OutlineNode

	// SetZoomFactor applies a fixed zoom factor to the view.
	SetZoomFactor(factor float64)

	// SetFitToWidth switches the view to fit-to-width mode.
	SetFitToWidth()

	// ZoomMode reports the current zoom mode and factor.
	ZoomMode() (domain.ZoomMode, float64)

	// WrapWidth returns the column the page text is reflowed to under
	// the current zoom mode and viewport width.
	WrapWidth() int

	// SetViewportWidth tells the engine how wide the terminal viewport
	// is; fit-to-width reflows to this value.
	SetViewportWidth(cols int)

	// SetSelection marks text as selected in the view; SelectedText
	// returns it. Copy/highlight actions are gated on it being non-empty.
	SetSelection(text string)
	SelectedText() string

	// Close releases the document handle. Safe to call more than once.
	Close() error
}

// LoadError wraps a document open/parse failure.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
