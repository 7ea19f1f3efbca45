package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillog/quill/core"
)

func TestMemoryHandler(t *testing.T) {
	m := NewMemoryHandler()

	require.NoError(t, m.Handle(testEvent(core.InfoLevel, "one")))
	require.NoError(t, m.Handle(testEvent(core.ErrorLevel, "two")))

	assert.Equal(t, 2, m.Count())

	events := m.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "one", events[0].Body)

	last := m.LastEvent()
	require.NotNil(t, last)
	assert.Equal(t, "two", last.Body)

	errs := m.FindEvents(func(e *core.LogEvent) bool {
		return e.Level.AtLeast(core.ErrorLevel)
	})
	assert.Len(t, errs, 1)

	assert.True(t, m.HasEvent(func(e *core.LogEvent) bool { return e.Body == "one" }))

	m.Clear()
	assert.Zero(t, m.Count())
	assert.Nil(t, m.LastEvent())
	assert.NoError(t, m.Close())
}
