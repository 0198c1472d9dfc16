package search

import (
	"log"

	"docgrip/internal/domain"
	"docgrip/internal/eventbus"
)

// Service owns the search query and the cyclic cursor over its result
// set. Result delivery is asynchronous: every submitted query gets a
// monotonically increasing sequence number and Apply discards any
// delivery that is not for the latest one, so result sets can never be
// applied out of order (last query wins).
type Service struct {
	state  *State
	bus    eventbus.EventBus
	gotoFn func(int) // jump to a 1-based page, injected at wiring time

	seq uint64 // latest issued sequence number
}

// NewService creates a new search service
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		state: &State{Cursor: NoCursor},
		bus:   bus,
	}
}

// SetGotoFunction sets the page jump callback.
func (s *Service) SetGotoFunction(fn func(int)) {
	s.gotoFn = fn
}

// SetQuery starts a new search. It clears the previous result set and
// returns the sequence number the caller must tag the engine submission
// with. submitted is false when no engine call should happen (empty or
// unchanged query).
func (s *Service) SetQuery(text string) (seq uint64, submitted bool) {
	if text == s.state.Query {
		return s.seq, false
	}

	s.seq++
	s.state.Query = text
	s.state.Results = nil
	s.state.Cursor = NoCursor

	if text == "" {
		if s.bus != nil {
			s.bus.Publish(domain.SearchClearedEvent{})
		}
		return s.seq, false
	}

	if s.bus != nil {
		s.bus.Publish(domain.SearchStartedEvent{Query: text, Seq: s.seq})
	}
	return s.seq, true
}

// Apply delivers a result set for a previously submitted query. Stale
// deliveries (seq older than the latest issued) are discarded. A
// non-empty set moves the cursor to the first result and jumps to its
// page.
func (s *Service) Apply(seq uint64, query string, results []domain.SearchResult) {
	if seq != s.seq {
		log.Printf("Discarding stale search results for %q (seq %d, want %d)", query, seq, s.seq)
		return
	}

	s.state.Results = results
	if len(results) == 0 {
		s.state.Cursor = NoCursor
	} else {
		s.state.Cursor = 0
		s.jumpToCursor()
	}

	if s.bus != nil {
		s.bus.Publish(domain.SearchCompletedEvent{Query: query, MatchCount: len(results)})
	}
}

// Advance moves the cursor to the next result, wrapping past the end.
func (s *Service) Advance() {
	if len(s.state.Results) == 0 {
		return
	}
	s.state.Cursor = (s.state.Cursor + 1) % len(s.state.Results)
	s.jumpToCursor()
	s.publishNavigated()
}

// Retreat moves the cursor to the previous result, wrapping past the
// beginning.
func (s *Service) Retreat() {
	if len(s.state.Results) == 0 {
		return
	}
	n := len(s.state.Results)
	s.state.Cursor = (s.state.Cursor - 1 + n) % n
	s.jumpToCursor()
	s.publishNavigated()
}

// Abandon invalidates any in-flight delivery without touching state.
// Used on teardown so a late completion cannot fire its callback.
func (s *Service) Abandon() {
	s.seq++
}

// Query returns the current query string.
func (s *Service) Query() string {
	return s.state.Query
}

// MatchCount returns the number of results.
func (s *Service) MatchCount() int {
	return len(s.state.Results)
}

// CursorIndex returns the cursor position, NoCursor if no results.
func (s *Service) CursorIndex() int {
	return s.state.Cursor
}

// Current returns the result under the cursor, nil if none.
func (s *Service) Current() *domain.SearchResult {
	if s.state.Cursor == NoCursor || s.state.Cursor >= len(s.state.Results) {
		return nil
	}
	return &s.state.Results[s.state.Cursor]
}

func (s *Service) jumpToCursor() {
	if s.gotoFn == nil {
		return
	}
	// Results carry 0-based engine pages; Goto wants the 1-based one.
	s.gotoFn(s.state.Results[s.state.Cursor].Page + 1)
}

func (s *Service) publishNavigated() {
	if s.bus == nil {
		return
	}
	s.bus.Publish(domain.SearchNavigatedEvent{
		Index: s.state.Cursor,
		Total: len(s.state.Results),
	})
}
