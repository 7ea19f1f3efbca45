package filters

import (
	"github.com/quillog/quill/core"
)

// LevelFilter filters log events based on their level.
type LevelFilter struct {
	minimumLevel core.Level
}

// NewLevelFilter creates a filter that only allows events at or above the
// specified level.
func NewLevelFilter(minimumLevel core.Level) *LevelFilter {
	return &LevelFilter{
		minimumLevel: minimumLevel,
	}
}

// IsEnabled returns true if the event level is at or above the minimum level.
func (f *LevelFilter) IsEnabled(event *core.LogEvent) bool {
	return event.Level.AtLeast(f.minimumLevel)
}

// MinimumLevelFilter is a convenience function that creates a level filter.
func MinimumLevelFilter(level core.Level) core.Filter {
	return NewLevelFilter(level)
}

// FilterFunc adapts a predicate function to the core.Filter interface.
type FilterFunc func(*core.LogEvent) bool

// IsEnabled invokes the predicate.
func (f FilterFunc) IsEnabled(event *core.LogEvent) bool {
	return f(event)
}
