package core

// Filter determines which events proceed to history and handlers.
type Filter interface {
	// IsEnabled returns true if the event should be logged.
	IsEnabled(event *LogEvent) bool
}
