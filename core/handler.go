package core

// Handler is a unit of delivery: it receives accepted log events from the
// logger it is attached to. A handler instance may be attached to at most
// one logger at a time.
type Handler interface {
	// Handle writes one log event to the handler's destination. A returned
	// error surfaces to the caller of the logging method; it does not stop
	// delivery to handlers attached after this one.
	Handle(event *LogEvent) error

	// Close releases any resources held by the handler. It is called at
	// most once, on detach or logger disposal, and must be idempotent.
	Close() error
}
