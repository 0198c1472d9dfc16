package search

import "docgrip/internal/domain"

// State holds the query and its ordered result set. Cursor is an index
// into Results, NoCursor when the set is empty.
type State struct {
	Query   string
	Results []domain.SearchResult
	Cursor  int
}

// NoCursor is the cursor value while there are no results.
const NoCursor = -1
