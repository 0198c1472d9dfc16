package coordinator

import (
	"context"
	"sync"

	"docgrip/internal/domain"
	"docgrip/internal/engine"
	"docgrip/internal/eventbus"
	"docgrip/internal/viewer/navigation"
	"docgrip/internal/viewer/outline"
	"docgrip/internal/viewer/search"
	"docgrip/internal/viewer/zoom"
)

// Coordinator composes the viewer services and routes everything that
// moves the page through the navigation service. Services never talk
// to each other directly; their cross-dependencies are injected here
// as explicit callbacks.
type Coordinator struct {
	// Services
	Navigation *navigation.Service
	Search     *search.Service
	Outline    *outline.Service
	Zoom       *zoom.Service

	// Dependencies
	bus eventbus.EventBus
	eng engine.Engine

	// mu guards loaded and the search cancellation state; loaded is
	// read from the search goroutine while the UI thread loads and
	// closes documents.
	mu           sync.Mutex
	info         domain.DocumentInfo
	loaded       bool
	docCtx       context.Context
	docCancel    context.CancelFunc
	cancelSearch context.CancelFunc
}

// New creates a coordinator with all services wired.
func New(bus eventbus.EventBus, eng engine.Engine, zoomPresets []string) *Coordinator {
	c := &Coordinator{
		Navigation: navigation.NewService(bus),
		Search:     search.NewService(bus),
		Outline:    outline.NewService(bus),
		Zoom:       zoom.NewService(bus, zoomPresets),
		bus:        bus,
		eng:        eng,
	}
	c.docCtx, c.docCancel = context.WithCancel(context.Background())

	c.wireServices()

	return c
}

// wireServices connects services with their dependencies. Everything
// that jumps pages funnels through Navigation.Goto.
func (c *Coordinator) wireServices() {
	c.Navigation.SetJumpFunction(func(internal int) {
		c.eng.JumpTo(internal)
	})

	c.Search.SetGotoFunction(c.Navigation.Goto)
	c.Outline.SetGotoFunction(c.Navigation.Goto)

	c.Zoom.SetApplyFunctions(c.eng.SetZoomFactor, c.eng.SetFitToWidth)
}

// LoadDocument opens the document at path. On failure the viewer stays
// in (or enters) the empty-document state and the error is published,
// never fatal. A previously loaded document is left untouched.
func (c *Coordinator) LoadDocument(path string) error {
	if err := c.eng.Load(path); err != nil {
		c.publish(domain.DocumentLoadFailedEvent{Path: path, Err: err})
		if !c.Loaded() {
			c.Navigation.SetTotalPages(0)
		}
		return err
	}

	info := domain.DocumentInfo{Path: path, TotalPages: c.eng.PageCount()}
	c.mu.Lock()
	c.loaded = true
	c.info = info
	c.mu.Unlock()

	// Search state from the previous document does not survive a load,
	// and neither may any of its in-flight deliveries.
	c.Search.Abandon()
	c.Search.SetQuery("")
	c.Navigation.SetTotalPages(info.TotalPages)
	c.Outline.SetTree(c.eng.Outline())

	c.publish(domain.DocumentLoadedEvent{Info: info})
	return nil
}

func (c *Coordinator) publish(e domain.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}

// Loaded reports whether a document is open.
func (c *Coordinator) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Info returns the loaded document's metadata.
func (c *Coordinator) Info() domain.DocumentInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.info
}

// Engine exposes the engine to the widget layer (page text, selection).
func (c *Coordinator) Engine() engine.Engine {
	return c.eng
}

// RunSearch executes the engine scan for a query submitted under seq.
// It is meant to run off the UI thread; the caller marshals the result
// back and hands it to Search.Apply, which drops it if superseded.
// Submitting a new scan cancels the previous in-flight one.
func (c *Coordinator) RunSearch(query string) []domain.SearchResult {
	c.mu.Lock()
	if !c.loaded {
		c.mu.Unlock()
		return nil
	}
	if c.cancelSearch != nil {
		c.cancelSearch()
	}
	ctx, cancel := context.WithCancel(c.docCtx)
	c.cancelSearch = cancel
	c.mu.Unlock()

	results, _ := c.eng.Search(ctx, query)
	return results
}

// SelectionForCurrentMatch marks the current search match's line as the
// view selection, which gates the copy action.
func (c *Coordinator) SelectionForCurrentMatch() {
	cur := c.Search.Current()
	if cur == nil {
		c.eng.SetSelection("")
		return
	}
	c.eng.SetSelection(cur.Snippet)
}

// Close releases the document handle and abandons any in-flight search
// so a late delivery cannot fire its callback.
func (c *Coordinator) Close() error {
	c.docCancel()
	c.Search.Abandon()
	c.mu.Lock()
	c.loaded = false
	c.mu.Unlock()
	return c.eng.Close()
}
