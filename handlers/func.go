package handlers

import "github.com/quillog/quill/core"

// Func adapts a closure to the core.Handler interface, with an optional
// close hook.
type Func struct {
	handle func(*core.LogEvent) error
	close  func() error
}

// NewFunc creates a handler from a delivery closure.
func NewFunc(handle func(*core.LogEvent) error) *Func {
	return &Func{handle: handle}
}

// NewFuncWithClose creates a handler from a delivery closure and a close
// hook invoked on detach.
func NewFuncWithClose(handle func(*core.LogEvent) error, close func() error) *Func {
	return &Func{handle: handle, close: close}
}

// Handle invokes the delivery closure.
func (f *Func) Handle(event *core.LogEvent) error {
	if f.handle == nil {
		return nil
	}
	return f.handle(event)
}

// Close invokes the close hook, if any.
func (f *Func) Close() error {
	if f.close == nil {
		return nil
	}
	return f.close()
}
