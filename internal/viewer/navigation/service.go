package navigation

import (
	"docgrip/internal/domain"
	"docgrip/internal/eventbus"
)

// Service owns the current page pointer. It is the single source of
// truth for "current page"; every other component that wants to move
// the view goes through Goto.
type Service struct {
	state  *State
	bus    eventbus.EventBus
	jumpFn func(int) // engine jump, takes the 0-based internal index
}

// NewService creates a new navigation service
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// SetJumpFunction sets the engine callback that moves the viewport.
func (s *Service) SetJumpFunction(fn func(int)) {
	s.jumpFn = fn
}

// CurrentPage returns the 1-based current page, 0 if no document.
func (s *Service) CurrentPage() int {
	return s.state.CurrentPage
}

// TotalPages returns the page count of the loaded document.
func (s *Service) TotalPages() int {
	return s.state.TotalPages
}

// SetTotalPages establishes the valid page range after a load. With
// n > 0 the current page becomes 1; otherwise the service enters the
// empty-document state.
func (s *Service) SetTotalPages(n int) {
	if n <= 0 {
		s.state.CurrentPage = 0
		s.state.TotalPages = 0
		return
	}

	s.state.TotalPages = n
	s.state.CurrentPage = 1
	if s.jumpFn != nil {
		s.jumpFn(0)
	}
	s.publishPageChanged()
}

// Goto jumps to a 1-based page. Out-of-range requests are a no-op, not
// an error.
func (s *Service) Goto(page int) {
	if page < 1 || page > s.state.TotalPages {
		return
	}

	if s.jumpFn != nil {
		s.jumpFn(page - 1)
	}
	s.state.CurrentPage = page
	s.publishPageChanged()
}

// Previous moves one page back. At the first page it is a no-op; the
// pointer does not wrap.
func (s *Service) Previous() {
	if s.state.CurrentPage > 1 {
		s.Goto(s.state.CurrentPage - 1)
	}
}

// Next moves one page forward without wrapping.
func (s *Service) Next() {
	if s.state.CurrentPage > 0 && s.state.CurrentPage < s.state.TotalPages {
		s.Goto(s.state.CurrentPage + 1)
	}
}

func (s *Service) publishPageChanged() {
	if s.bus == nil {
		return
	}
	s.bus.Publish(domain.PageChangedEvent{
		Page:       s.state.CurrentPage,
		TotalPages: s.state.TotalPages,
	})
}
