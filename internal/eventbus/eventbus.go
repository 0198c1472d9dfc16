package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"docgrip/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventDocumentLoaded     = domain.EventDocumentLoaded
	EventDocumentLoadFailed = domain.EventDocumentLoadFailed
	EventPageChanged        = domain.EventPageChanged
	EventSearchStarted      = domain.EventSearchStarted
	EventSearchCompleted    = domain.EventSearchCompleted
	EventSearchCleared      = domain.EventSearchCleared
	EventSearchNavigated    = domain.EventSearchNavigated
	EventOutlineSelected    = domain.EventOutlineSelected
	EventZoomChanged        = domain.EventZoomChanged
	EventError              = domain.EventError
)

// Re-export domain event types
type DocumentLoadedEvent = domain.DocumentLoadedEvent
type DocumentLoadFailedEvent = domain.DocumentLoadFailedEvent
type PageChangedEvent = domain.PageChangedEvent
type SearchStartedEvent = domain.SearchStartedEvent
type SearchCompletedEvent = domain.SearchCompletedEvent
type SearchClearedEvent = domain.SearchClearedEvent
type SearchNavigatedEvent = domain.SearchNavigatedEvent
type OutlineSelectedEvent = domain.OutlineSelectedEvent
type ZoomChangedEvent = domain.ZoomChangedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	SubscribeAll(handler EventHandler) func()
	Close()
}

// subscription pairs a handler with an identity for unsubscribing.
type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	nextID    uint64
	handlers  map[EventType][]subscription
	wildcards []subscription
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	switch event.Type() {
	case EventPageChanged:
		// Don't log page changes, they fire on every keystroke held down
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	select {
	case b.eventChan <- event:
	default:
		// Channel full, log and drop
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}

// SubscribeAll subscribes to every event regardless of type
// Returns an unsubscribe function
func (b *bus) SubscribeAll(handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.wildcards = append(b.wildcards, subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		for i, s := range b.wildcards {
			if s.id == id {
				b.wildcards = append(b.wildcards[:i], b.wildcards[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher. Events published after Close are dropped.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers. Handlers run in
// order on this goroutine, so subscribers observe events in the order
// they were published.
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, 0, len(b.handlers[event.Type()])+len(b.wildcards))
			subs = append(subs, b.handlers[event.Type()]...)
			subs = append(subs, b.wildcards...)
			b.mu.RUnlock()

			for _, sub := range subs {
				func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("Event handler panic for %s: %v\nStack: %s", eventType, r, debug.Stack())
						}
					}()
					h(event)
				}(sub.handler, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
