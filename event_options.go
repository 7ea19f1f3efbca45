package quill

import "github.com/quillog/quill/core"

// attachments collects the optional fields of one log call.
type attachments struct {
	description string
	err         error
	stack       []core.StackFrame
}

// EventOption attaches an optional field to a single log call.
type EventOption func(*attachments)

// WithDescription attaches a multi-line elaboration to the event.
func WithDescription(description string) EventOption {
	return func(a *attachments) {
		a.description = description
	}
}

// WithError attaches an error to the event. Ignored by Debug and Info. When
// no explicit stack is attached and the error carries one (pkg/errors), its
// frames become the event's stack.
func WithError(err error) EventOption {
	return func(a *attachments) {
		a.err = err
	}
}

// WithStack attaches a stack trace to the event. Ignored by Debug and Info.
func WithStack(stack []core.StackFrame) EventOption {
	return func(a *attachments) {
		a.stack = stack
	}
}
