package core

import (
	"fmt"
	"strings"
)

// Level specifies the severity of a log event.
type Level int

const (
	// DebugLevel is for detailed diagnostic output.
	DebugLevel Level = iota

	// InfoLevel is for informational messages.
	InfoLevel

	// WarnLevel is for warnings.
	WarnLevel

	// ErrorLevel is for errors.
	ErrorLevel

	// FatalLevel is for unrecoverable errors.
	FatalLevel
)

// ColorReset clears all active ANSI attributes.
const ColorReset = "\x1b[0m"

// levelNameWidth is the fixed width level names are centered to when rendered.
const levelNameWidth = 5

// levelInfo carries the static per-level table: display name, ANSI color,
// importance rank, and whether output defaults to an error-style stream.
type levelInfo struct {
	name      string
	color     string
	rank      int
	errStream bool
}

// Only single-number SGR codes appear here so that stripping the pattern
// ESC[<digits>m removes every color the renderer can emit.
var levelTable = [...]levelInfo{
	DebugLevel: {name: "DEBUG", color: "\x1b[36m", rank: 0, errStream: false},
	InfoLevel:  {name: "INFO", color: "\x1b[32m", rank: 1, errStream: false},
	WarnLevel:  {name: "WARN", color: "\x1b[33m", rank: 2, errStream: true},
	ErrorLevel: {name: "ERROR", color: "\x1b[31m", rank: 3, errStream: true},
	FatalLevel: {name: "FATAL", color: "\x1b[91m", rank: 4, errStream: true},
}

// String returns the canonical display name of the level.
func (l Level) String() string {
	if l < DebugLevel || l > FatalLevel {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelTable[l].name
}

// Rank returns the integer importance rank of the level. All ordering
// decisions compare ranks rather than enumeration identity.
func (l Level) Rank() int {
	return levelTable[l].rank
}

// AtLeast reports whether l is at least as severe as other.
func (l Level) AtLeast(other Level) bool {
	return l.Rank() >= other.Rank()
}

// Color returns the ANSI color code associated with the level.
func (l Level) Color() string {
	return levelTable[l].color
}

// UseErrorStream reports whether output at this level defaults to an
// error-style stream such as stderr.
func (l Level) UseErrorStream() bool {
	return levelTable[l].errStream
}

// Padded returns the display name centered to a fixed width of 5 characters.
// When the total padding is odd the extra space goes to the right.
func (l Level) Padded() string {
	name := l.String()
	if len(name) >= levelNameWidth {
		return name
	}
	total := levelNameWidth - len(name)
	left := total / 2
	return strings.Repeat(" ", left) + name + strings.Repeat(" ", total-left)
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info", "information":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown level: %q", s)
	}
}

// Levels returns every level in rank order.
func Levels() []Level {
	return []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel}
}
