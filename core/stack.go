package core

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// StackFrame is one entry of a normalized stack trace.
type StackFrame struct {
	Function string
	File     string
	Line     int
}

// String renders the frame tersely as "func (file:line)".
func (f StackFrame) String() string {
	return fmt.Sprintf("%s (%s:%d)", f.Function, f.File, f.Line)
}

// FrameFilter decides which frames survive stack folding. Returning false
// drops the frame from rendered output.
type FrameFilter func(StackFrame) bool

// KeepAllFrames is the default fold predicate: every frame survives.
func KeepAllFrames(StackFrame) bool { return true }

// CaptureStack records the calling goroutine's stack, skipping the given
// number of frames above CaptureStack itself.
func CaptureStack(skip int) []StackFrame {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}
	return framesFromPCs(pcs[:n])
}

// stackTracer is satisfied by errors created or wrapped with
// github.com/pkg/errors.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// StackFromError extracts stack frames carried by err, walking the unwrap
// chain from the outside in. Errors created or wrapped with pkg/errors carry
// a trace; anything else yields nil.
func StackFromError(err error) []StackFrame {
	for err != nil {
		if tracer, ok := err.(stackTracer); ok {
			trace := tracer.StackTrace()
			if len(trace) > 0 {
				pcs := make([]uintptr, len(trace))
				for i, f := range trace {
					pcs[i] = uintptr(f)
				}
				return framesFromPCs(pcs)
			}
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return nil
}

func framesFromPCs(pcs []uintptr) []StackFrame {
	frames := runtime.CallersFrames(pcs)
	var stack []StackFrame
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			stack = append(stack, StackFrame{
				Function: frame.Function,
				File:     frame.File,
				Line:     frame.Line,
			})
		}
		if !more {
			break
		}
	}
	return stack
}

// FoldStack applies the filter to every frame, preserving order.
func FoldStack(stack []StackFrame, keep FrameFilter) []StackFrame {
	if keep == nil {
		return stack
	}
	folded := make([]StackFrame, 0, len(stack))
	for _, f := range stack {
		if keep(f) {
			folded = append(folded, f)
		}
	}
	return folded
}

// RenderStack produces the terse multi-line rendering of a folded stack.
func RenderStack(stack []StackFrame, keep FrameFilter) string {
	folded := FoldStack(stack, keep)
	if len(folded) == 0 {
		return ""
	}
	lines := make([]string, len(folded))
	for i, f := range folded {
		lines[i] = f.String()
	}
	return strings.Join(lines, "\n")
}
