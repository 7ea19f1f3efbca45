package handlers

import (
	"time"

	"github.com/quillog/quill/core"
)

// testEvent builds a minimal event carrying pre-rendered messages, the way
// loggers hand them to handlers.
func testEvent(level core.Level, message string) *core.LogEvent {
	return &core.LogEvent{
		Section:                 "svc",
		Level:                   level,
		Timestamp:               time.Now(),
		Body:                    message,
		GeneratedMessage:        message,
		GeneratedMessageColored: level.Color() + message + core.ColorReset,
	}
}
