package core

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack(0)
	require.NotEmpty(t, stack)

	assert.Contains(t, stack[0].Function, "TestCaptureStack")
	assert.Contains(t, stack[0].File, "stack_test.go")
	assert.Greater(t, stack[0].Line, 0)
}

func TestStackFromError(t *testing.T) {
	err := errors.New("boom")
	stack := StackFromError(err)
	require.NotEmpty(t, stack)
	assert.Contains(t, stack[0].Function, "TestStackFromError")
}

func TestStackFromWrappedError(t *testing.T) {
	cause := errors.New("root cause")
	wrapped := fmt.Errorf("outer: %w", cause)

	stack := StackFromError(wrapped)
	require.NotEmpty(t, stack, "trace should be found through the unwrap chain")
}

func TestStackFromPlainError(t *testing.T) {
	assert.Nil(t, StackFromError(fmt.Errorf("plain")))
	assert.Nil(t, StackFromError(nil))
}

func TestFoldStack(t *testing.T) {
	stack := []StackFrame{
		{Function: "app.main", File: "main.go", Line: 10},
		{Function: "runtime.goexit", File: "asm.s", Line: 1},
		{Function: "app.worker", File: "worker.go", Line: 42},
	}

	folded := FoldStack(stack, func(f StackFrame) bool {
		return !strings.HasPrefix(f.Function, "runtime.")
	})
	require.Len(t, folded, 2)
	assert.Equal(t, "app.main", folded[0].Function)
	assert.Equal(t, "app.worker", folded[1].Function)

	// Nil filter keeps everything.
	assert.Len(t, FoldStack(stack, nil), 3)
}

func TestRenderStack(t *testing.T) {
	stack := []StackFrame{
		{Function: "app.main", File: "main.go", Line: 10},
		{Function: "app.run", File: "run.go", Line: 20},
	}

	text := RenderStack(stack, KeepAllFrames)
	lines := strings.Split(text, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "app.main (main.go:10)", lines[0])
	assert.Equal(t, "app.run (run.go:20)", lines[1])

	assert.Empty(t, RenderStack(nil, KeepAllFrames))
}
