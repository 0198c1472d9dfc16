package ui

import (
	"docgrip/internal/domain"
	"docgrip/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// searchResultsMsg delivers an engine search completion back onto the
// UI thread. seq ties it to the query submission; stale deliveries are
// discarded by the search service.
type searchResultsMsg struct {
	seq     uint64
	query   string
	results []domain.SearchResult
}

// pagerDoneMsg reports the raw-text pager exiting
type pagerDoneMsg struct {
	err error
}

// statusExpiredMsg clears a transient status message
type statusExpiredMsg struct {
	id int
}
