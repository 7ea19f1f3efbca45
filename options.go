package quill

import "github.com/quillog/quill/core"

// config holds the configuration for building a logger.
type config struct {
	minimumLevel core.Level
	levelSwitch  *LevelSwitch
	utc          bool
	indentation  bool
	filters      []core.Filter
	handlers     []core.Handler
}

// Option is a functional option for configuring a logger.
type Option func(*config)

// WithMinimumLevel sets the minimum log level. Events below it are dropped
// before filter evaluation.
func WithMinimumLevel(level core.Level) Option {
	return func(c *config) {
		c.minimumLevel = level
	}
}

// WithLevelSwitch enables dynamic level control. When a switch is provided
// it takes precedence over the static minimum level.
func WithLevelSwitch(ls *LevelSwitch) Option {
	return func(c *config) {
		c.levelSwitch = ls
	}
}

// WithUTC forces event timestamps to UTC for the logger's lifetime.
func WithUTC() Option {
	return func(c *config) {
		c.utc = true
	}
}

// WithIndentation aligns rendered continuation lines under the timestamp
// column instead of the flush-left marker.
func WithIndentation(enabled bool) Option {
	return func(c *config) {
		c.indentation = enabled
	}
}

// WithFilter appends a filter to the chain. Filters run in registration
// order with first-reject short-circuit.
func WithFilter(filter core.Filter) Option {
	return func(c *config) {
		c.filters = append(c.filters, filter)
	}
}

// WithHandler attaches a handler during construction. Handlers receive
// events in attachment order.
func WithHandler(handler core.Handler) Option {
	return func(c *config) {
		c.handlers = append(c.handlers, handler)
	}
}
