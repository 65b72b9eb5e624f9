package events

import (
	"fmt"
	"sync"
)

// Bus is a simple event bus for UI services
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners synchronously.
// Selection and focus transitions must be observable before the next
// input event is processed, so handlers run inline on the caller.
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	eventType := fmt.Sprintf("%T", event)
	handlers := make([]func(interface{}), len(b.listeners[eventType]))
	copy(handlers, b.listeners[eventType])
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
