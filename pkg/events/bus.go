package events

import (
	"sync"
)

// Event types emitted by the console.
const (
	// ConsoleUpdated is emitted with the session ID whenever the visible
	// console state changes.
	ConsoleUpdated = "console.updated"
	// ConsoleClosed is emitted with the session ID when a session is torn down.
	ConsoleClosed = "console.closed"
)

// Bus is an in-process publish/subscribe bus. Handlers run asynchronously,
// each in its own goroutine.
type Bus struct {
	subscribers map[string][]subscriberInfo
	mu          sync.RWMutex
	nextID      int
	pending     sync.WaitGroup
}

type subscriberInfo struct {
	id      int
	handler func(interface{})
	once    bool
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[string][]subscriberInfo),
		nextID:      1,
	}
}

// Subscribe registers a handler for an event type and returns a function
// that removes it.
func (bus *Bus) Subscribe(eventType string, handler func(interface{})) func() {
	return bus.subscribe(eventType, handler, false)
}

// SubscribeOnce registers a handler that is removed after its first call.
func (bus *Bus) SubscribeOnce(eventType string, handler func(interface{})) func() {
	return bus.subscribe(eventType, handler, true)
}

func (bus *Bus) subscribe(eventType string, handler func(interface{}), once bool) func() {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	id := bus.nextID
	bus.nextID++

	bus.subscribers[eventType] = append(bus.subscribers[eventType], subscriberInfo{
		id:      id,
		handler: handler,
		once:    once,
	})

	return func() {
		bus.unsubscribe(eventType, id)
	}
}

// Emit sends event to every subscriber of eventType.
func (bus *Bus) Emit(eventType string, event interface{}) {
	bus.mu.Lock()
	subscribers := bus.subscribers[eventType]
	handlers := make([]subscriberInfo, len(subscribers))
	copy(handlers, subscribers)
	for _, sub := range handlers {
		if sub.once {
			bus.removeSubscriber(eventType, sub.id)
		}
	}
	bus.mu.Unlock()

	for _, sub := range handlers {
		bus.pending.Add(1)
		go func(h func(interface{})) {
			defer bus.pending.Done()
			h(event)
		}(sub.handler)
	}
}

// WaitForPendingEvents blocks until every handler started by Emit returned.
func (bus *Bus) WaitForPendingEvents() {
	bus.pending.Wait()
}

// SubscriberCount returns the number of handlers for eventType.
func (bus *Bus) SubscriberCount(eventType string) int {
	bus.mu.RLock()
	defer bus.mu.RUnlock()
	return len(bus.subscribers[eventType])
}

// Clear removes all subscribers.
func (bus *Bus) Clear() {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	bus.subscribers = make(map[string][]subscriberInfo)
}

func (bus *Bus) unsubscribe(eventType string, id int) {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	bus.removeSubscriber(eventType, id)
}

// removeSubscriber must be called with the lock held.
func (bus *Bus) removeSubscriber(eventType string, id int) {
	subscribers := bus.subscribers[eventType]

	for i, sub := range subscribers {
		if sub.id == id {
			bus.subscribers[eventType] = append(subscribers[:i:i], subscribers[i+1:]...)
			if len(bus.subscribers[eventType]) == 0 {
				delete(bus.subscribers, eventType)
			}
			break
		}
	}
}
