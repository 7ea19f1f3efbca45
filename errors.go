package quill

import "fmt"

// ConfigurationError reports invalid logger or handler configuration: a bad
// section identifier, or attaching a handler that is already attached.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("quill: %s: %v", e.Reason, e.Err)
	}
	return "quill: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
