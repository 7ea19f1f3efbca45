package quill

import (
	"sync/atomic"

	"github.com/quillog/quill/core"
)

// LevelSwitch provides thread-safe, runtime control of a logger's minimum
// level. It enables dynamic adjustment without rebuilding the logger.
type LevelSwitch struct {
	// level is stored as int32 to enable atomic operations
	level int32
}

// NewLevelSwitch creates a level switch with the specified initial level.
func NewLevelSwitch(initial core.Level) *LevelSwitch {
	ls := &LevelSwitch{}
	ls.SetLevel(initial)
	return ls
}

// Level returns the current minimum level.
func (ls *LevelSwitch) Level() core.Level {
	return core.Level(atomic.LoadInt32(&ls.level))
}

// SetLevel updates the minimum level. Takes effect immediately.
func (ls *LevelSwitch) SetLevel(level core.Level) {
	atomic.StoreInt32(&ls.level, int32(level))
}

// IsEnabled returns true if an event at the specified level would pass the
// current minimum.
func (ls *LevelSwitch) IsEnabled(level core.Level) bool {
	return level.AtLeast(ls.Level())
}

// Debug sets the minimum level to Debug.
func (ls *LevelSwitch) Debug() *LevelSwitch {
	ls.SetLevel(core.DebugLevel)
	return ls
}

// Info sets the minimum level to Info.
func (ls *LevelSwitch) Info() *LevelSwitch {
	ls.SetLevel(core.InfoLevel)
	return ls
}

// Warn sets the minimum level to Warn.
func (ls *LevelSwitch) Warn() *LevelSwitch {
	ls.SetLevel(core.WarnLevel)
	return ls
}

// Error sets the minimum level to Error.
func (ls *LevelSwitch) Error() *LevelSwitch {
	ls.SetLevel(core.ErrorLevel)
	return ls
}

// Fatal sets the minimum level to Fatal.
func (ls *LevelSwitch) Fatal() *LevelSwitch {
	ls.SetLevel(core.FatalLevel)
	return ls
}
