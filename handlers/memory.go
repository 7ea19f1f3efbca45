package handlers

import (
	"sync"

	"github.com/quillog/quill/core"
)

// MemoryHandler stores log events in memory for inspection and testing.
type MemoryHandler struct {
	events []core.LogEvent
	mu     sync.RWMutex
}

// NewMemoryHandler creates a new memory handler.
func NewMemoryHandler() *MemoryHandler {
	return &MemoryHandler{
		events: make([]core.LogEvent, 0),
	}
}

// Handle stores a copy of the event in memory.
func (m *MemoryHandler) Handle(event *core.LogEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, *event)
	return nil
}

// Close does nothing for the memory handler.
func (m *MemoryHandler) Close() error {
	return nil
}

// Events returns a copy of all stored events.
func (m *MemoryHandler) Events() []core.LogEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]core.LogEvent, len(m.events))
	copy(result, m.events)
	return result
}

// Clear removes all stored events.
func (m *MemoryHandler) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = m.events[:0]
}

// Count returns the number of stored events.
func (m *MemoryHandler) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.events)
}

// FindEvents returns events that match the given predicate.
func (m *MemoryHandler) FindEvents(predicate func(*core.LogEvent) bool) []core.LogEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []core.LogEvent
	for _, event := range m.events {
		if predicate(&event) {
			result = append(result, event)
		}
	}
	return result
}

// HasEvent returns true if any event matches the predicate.
func (m *MemoryHandler) HasEvent(predicate func(*core.LogEvent) bool) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, event := range m.events {
		if predicate(&event) {
			return true
		}
	}
	return false
}

// LastEvent returns the most recent event, or nil if no events.
func (m *MemoryHandler) LastEvent() *core.LogEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.events) == 0 {
		return nil
	}

	event := m.events[len(m.events)-1]
	return &event
}
