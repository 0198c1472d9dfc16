package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDocumentLoaded     EventType = "DocumentLoaded"
	EventDocumentLoadFailed EventType = "DocumentLoadFailed"
	EventPageChanged        EventType = "PageChanged"
	EventSearchStarted      EventType = "SearchStarted"
	EventSearchCompleted    EventType = "SearchCompleted"
	EventSearchCleared      EventType = "SearchCleared"
	EventSearchNavigated    EventType = "SearchNavigated"
	EventOutlineSelected    EventType = "OutlineSelected"
	EventZoomChanged        EventType = "ZoomChanged"
	EventError              EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DocumentLoadedEvent is emitted when a document has been opened and parsed
type DocumentLoadedEvent struct {
	Info DocumentInfo
}

func (e DocumentLoadedEvent) Type() EventType { return EventDocumentLoaded }

// DocumentLoadFailedEvent is emitted when a document could not be opened.
// The viewer stays in the empty-document state; this is reported, not fatal.
type DocumentLoadFailedEvent struct {
	Path string
	Err  error
}

func (e DocumentLoadFailedEvent) Type() EventType { return EventDocumentLoadFailed }

// PageChangedEvent is emitted on every successful page jump
type PageChangedEvent struct {
	Page       int // 1-based, user-facing
	TotalPages int
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// SearchStartedEvent is emitted when a new query is submitted to the engine
type SearchStartedEvent struct {
	Query string
	Seq   uint64
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted when a result set has been applied.
// Deliveries for superseded queries are discarded and never produce this event.
type SearchCompletedEvent struct {
	Query      string
	MatchCount int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchClearedEvent is emitted when the query is reset to empty
type SearchClearedEvent struct{}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// SearchNavigatedEvent is emitted when the result cursor moves
type SearchNavigatedEvent struct {
	Index int // 0-based index into the result set
	Total int
}

func (e SearchNavigatedEvent) Type() EventType { return EventSearchNavigated }

// OutlineSelectedEvent is emitted when an outline node resolves to a page jump
type OutlineSelectedEvent struct {
	Title string
	Page  int // 1-based, user-facing
}

func (e OutlineSelectedEvent) Type() EventType { return EventOutlineSelected }

// ZoomChangedEvent is emitted when the zoom mode or factor changes
type ZoomChangedEvent struct {
	Mode   ZoomMode
	Factor float64 // meaningful only for ZoomFixed
}

func (e ZoomChangedEvent) Type() EventType { return EventZoomChanged }

// ErrorEvent is emitted when a recoverable error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
