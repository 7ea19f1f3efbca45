// Package quill is a sectioned, leveled logging core. Each Logger owns one
// named section, a minimum level, an ordered filter chain, and an ordered
// set of output handlers; accepted events are rendered once, appended to an
// in-memory transcript, and delivered synchronously to every handler in
// attachment order.
package quill

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/quillog/quill/core"
	"github.com/quillog/quill/render"
	"github.com/quillog/quill/selflog"
)

// sectionPattern validates section identifiers at construction time.
var sectionPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Handler ownership is tracked across loggers so that attaching one handler
// instance to two loggers fails fast instead of duplicating delivery.
// Handlers are pointer values in practice, which keeps them comparable.
var (
	ownersMu sync.Mutex
	owners   = make(map[core.Handler]*Logger)
)

// Logger is the session object for one named section. A Logger is Active
// from construction until Dispose; a disposed Logger silently ignores
// further log calls.
//
// All state transitions and the filter-evaluate-dispatch-history sequence
// run under one mutex, so one event is fully delivered before the next
// begins even under concurrent callers.
type Logger struct {
	mu           sync.Mutex
	section      string
	minimumLevel core.Level
	levelSwitch  *LevelSwitch
	utc          bool
	indentation  bool
	filters      []core.Filter
	handlers     []core.Handler
	history      []*core.LogEvent
	transcript   strings.Builder
	disposed     bool
}

// New creates a logger for the given section. The section must be a
// non-empty identifier matching [A-Za-z_][A-Za-z0-9_]*; anything else is a
// ConfigurationError. Handlers passed via WithHandler are attached in order;
// if one of them is already attached elsewhere, New fails and releases the
// handlers it had claimed (without closing them).
func New(section string, opts ...Option) (*Logger, error) {
	if !sectionPattern.MatchString(section) {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("invalid section identifier %q", section)}
	}

	cfg := config{minimumLevel: core.DebugLevel}
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &Logger{
		section:      section,
		minimumLevel: cfg.minimumLevel,
		levelSwitch:  cfg.levelSwitch,
		utc:          cfg.utc,
		indentation:  cfg.indentation,
		filters:      cfg.filters,
	}

	for _, h := range cfg.handlers {
		if err := l.Attach(h); err != nil {
			l.releaseHandlers()
			return nil, err
		}
	}

	return l, nil
}

// Section returns the logger's section identifier.
func (l *Logger) Section() string {
	return l.section
}

// MinimumLevel returns the effective minimum level: the level switch when
// one is configured, otherwise the static minimum.
func (l *Logger) MinimumLevel() core.Level {
	if l.levelSwitch != nil {
		return l.levelSwitch.Level()
	}
	return l.minimumLevel
}

// Debug logs a debug-level event. Error and stack attachments are ignored
// at this level.
func (l *Logger) Debug(body string, opts ...EventOption) error {
	return l.log(core.DebugLevel, body, opts)
}

// Info logs an info-level event. Error and stack attachments are ignored
// at this level.
func (l *Logger) Info(body string, opts ...EventOption) error {
	return l.log(core.InfoLevel, body, opts)
}

// Warn logs a warn-level event.
func (l *Logger) Warn(body string, opts ...EventOption) error {
	return l.log(core.WarnLevel, body, opts)
}

// Error logs an error-level event.
func (l *Logger) Error(body string, opts ...EventOption) error {
	return l.log(core.ErrorLevel, body, opts)
}

// Fatal logs a fatal-level event. It does not terminate the process.
func (l *Logger) Fatal(body string, opts ...EventOption) error {
	return l.log(core.FatalLevel, body, opts)
}

// log is the shared path behind the five severity methods: build the event,
// gate on the minimum level, run the filter chain, then record and dispatch.
func (l *Logger) log(level core.Level, body string, opts []EventOption) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.disposed {
		selflog.Printf("[logger] %s: event dropped, logger is disposed", l.section)
		return nil
	}

	event := l.newEvent(level, body, opts)

	if !event.Level.AtLeast(l.MinimumLevel()) {
		return nil
	}

	for _, f := range l.filters {
		if !f.IsEnabled(event) {
			return nil
		}
	}

	l.history = append(l.history, event)
	l.transcript.WriteString(event.GeneratedMessage)
	l.transcript.WriteByte('\n')

	return l.dispatch(event)
}

// newEvent builds the immutable event for one log call, including both
// rendered forms. Must be called with l.mu held.
func (l *Logger) newEvent(level core.Level, body string, opts []EventOption) *core.LogEvent {
	var a attachments
	for _, opt := range opts {
		opt(&a)
	}

	// Error and stack attachments only carry meaning at warn and above.
	if !level.AtLeast(core.WarnLevel) {
		a.err = nil
		a.stack = nil
	}
	if a.err != nil && a.stack == nil {
		a.stack = core.StackFromError(a.err)
	}

	now := time.Now()
	if l.utc {
		now = now.UTC()
	}

	event := &core.LogEvent{
		Section:     l.section,
		Level:       level,
		Timestamp:   now,
		Body:        strings.TrimSpace(body),
		Description: strings.TrimSpace(a.description),
		Err:         a.err,
		Stack:       a.stack,
		Indentation: l.indentation,
	}
	event.GeneratedMessageColored = render.Colored(event)
	event.GeneratedMessage = render.Strip(event.GeneratedMessageColored)
	return event
}

// dispatch delivers the event to every handler in attachment order. A
// failing handler does not stop delivery to the handlers after it; all
// delivery errors are joined into the return value. Must be called with
// l.mu held.
func (l *Logger) dispatch(event *core.LogEvent) error {
	var errs []error
	for _, h := range l.handlers {
		if err := h.Handle(event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// AddFilter appends a filter to the chain.
func (l *Logger) AddFilter(filter core.Filter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filters = append(l.filters, filter)
}

// Attach adds a handler to the end of the registry. Attaching a handler
// instance that is already attached to any logger is a ConfigurationError.
func (l *Logger) Attach(handler core.Handler) error {
	l.mu.Lock()
	disposed := l.disposed
	l.mu.Unlock()
	if disposed {
		return &ConfigurationError{Reason: "cannot attach a handler to a disposed logger"}
	}

	ownersMu.Lock()
	if owner, taken := owners[handler]; taken {
		ownersMu.Unlock()
		if owner == l {
			return &ConfigurationError{Reason: "handler is already attached to this logger"}
		}
		return &ConfigurationError{Reason: "handler is already attached to another logger"}
	}
	owners[handler] = l
	ownersMu.Unlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers = append(l.handlers, handler)
	return nil
}

// Detach closes and removes a handler. Unknown handlers are a no-op. Close
// failures are suppressed and reported to selflog only.
func (l *Logger) Detach(handler core.Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, h := range l.handlers {
		if h == handler {
			l.detachAt(i)
			return
		}
	}
}

// DetachAt closes and removes the handler at the given index. Out-of-range
// indexes are a silent no-op to tolerate races with concurrent removal.
func (l *Logger) DetachAt(index int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.handlers) {
		return
	}
	l.detachAt(index)
}

// detachAt must be called with l.mu held and a valid index.
func (l *Logger) detachAt(index int) {
	h := l.handlers[index]
	if err := h.Close(); err != nil {
		selflog.Printf("[logger] %s: handler close failed: %v", l.section, err)
	}
	l.handlers = append(l.handlers[:index], l.handlers[index+1:]...)

	ownersMu.Lock()
	delete(owners, h)
	ownersMu.Unlock()
}

// Handlers returns the attached handlers in attachment order.
func (l *Logger) Handlers() []core.Handler {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]core.Handler, len(l.handlers))
	copy(out, l.handlers)
	return out
}

// History returns a copy of the accepted events in log order.
func (l *Logger) History() []*core.LogEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*core.LogEvent, len(l.history))
	copy(out, l.history)
	return out
}

// Transcript returns the concatenated plain renderings of every accepted
// event, one per line.
func (l *Logger) Transcript() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.transcript.String()
}

// Disposed reports whether the logger has been disposed.
func (l *Logger) Disposed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.disposed
}

// Dispose closes and detaches every handler and moves the logger to its
// terminal state. Further log calls are silently ignored. Idempotent.
func (l *Logger) Dispose() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.disposed {
		return
	}
	l.disposed = true
	for len(l.handlers) > 0 {
		l.detachAt(len(l.handlers) - 1)
	}
}

// releaseHandlers drops ownership of every attached handler without closing
// them; used when construction fails partway through attachment.
func (l *Logger) releaseHandlers() {
	l.mu.Lock()
	defer l.mu.Unlock()
	ownersMu.Lock()
	for _, h := range l.handlers {
		delete(owners, h)
	}
	ownersMu.Unlock()
	l.handlers = nil
}
