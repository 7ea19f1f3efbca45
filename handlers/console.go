// Package handlers provides the output handlers consumed by quill loggers:
// console, single-file, per-day directory, in-memory, and closure adapters.
// Handlers treat the event's generated message as an opaque ready-to-write
// string; they never re-parse or reformat it.
package handlers

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/quillog/quill/core"
)

// ConsoleHandler writes rendered events to a pair of streams: events whose
// level defaults to an error-style stream go to errOut, everything else to
// out.
type ConsoleHandler struct {
	out      io.Writer
	errOut   io.Writer
	mu       sync.Mutex
	useColor bool
}

// NewConsoleHandler creates a console handler writing to stdout and stderr.
func NewConsoleHandler() *ConsoleHandler {
	return &ConsoleHandler{
		out:      os.Stdout,
		errOut:   os.Stderr,
		useColor: shouldUseColor(),
	}
}

// NewConsoleHandlerWithWriters creates a console handler with custom
// writers; color stays enabled unless disabled via SetUseColor.
func NewConsoleHandlerWithWriters(out, errOut io.Writer) *ConsoleHandler {
	return &ConsoleHandler{
		out:      out,
		errOut:   errOut,
		useColor: shouldUseColor(),
	}
}

// SetUseColor enables or disables color output.
func (ch *ConsoleHandler) SetUseColor(useColor bool) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.useColor = useColor
}

// Handle writes the event's rendered message, colored or plain, to the
// stream selected by the event's level.
func (ch *ConsoleHandler) Handle(event *core.LogEvent) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	message := event.GeneratedMessage
	if ch.useColor {
		message = event.GeneratedMessageColored
	}

	w := ch.out
	if event.Level.UseErrorStream() {
		w = ch.errOut
	}

	if _, err := fmt.Fprintln(w, message); err != nil {
		return fmt.Errorf("console write failed: %w", err)
	}
	return nil
}

// Close releases nothing; the console handler does not own its streams.
func (ch *ConsoleHandler) Close() error {
	return nil
}

// shouldUseColor determines if color output should be used.
func shouldUseColor() bool {
	if forceColor := os.Getenv("QUILL_FORCE_COLOR"); forceColor != "" {
		switch strings.ToLower(forceColor) {
		case "none", "0", "false", "off":
			return false
		case "true", "on", "1":
			return true
		}
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return true
}
