package handlers

import "fmt"

// ResourceError reports a failure to open, lock, or write a handler's
// backing resource. Raised at construction or at delivery time; never
// swallowed except during close, where cleanup is best-effort.
type ResourceError struct {
	Resource string
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Resource, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }
