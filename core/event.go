package core

import "time"

// LogEvent describes one log occurrence. Events are built once by the owning
// logger and never mutated afterwards; the generated message fields are
// computed at construction time and form the rendered-text contract consumed
// by handlers.
type LogEvent struct {
	// Section is the identifier of the logger that produced the event.
	Section string

	// Level is the severity of the event.
	Level Level

	// Timestamp is when the event occurred, local or UTC depending on the
	// owning logger's configuration.
	Timestamp time.Time

	// Body is the trimmed summary line.
	Body string

	// Description is an optional trimmed multi-line elaboration.
	Description string

	// Err is the error associated with the event, if any. Only meaningful
	// for warn level and above.
	Err error

	// Stack is an optional normalized stack trace, only meaningful for
	// warn level and above.
	Stack []StackFrame

	// Indentation records whether continuation lines align under the
	// timestamp column; copied from the owning logger at construction.
	Indentation bool

	// GeneratedMessage is the plain rendered form of the event. Handlers
	// treat it as an opaque ready-to-write string.
	GeneratedMessage string

	// GeneratedMessageColored is the ANSI-colored rendered form. The plain
	// form is always derivable from it by stripping color codes.
	GeneratedMessageColored string
}
