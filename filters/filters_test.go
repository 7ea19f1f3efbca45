package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillog/quill/core"
)

func eventAt(level core.Level) *core.LogEvent {
	return &core.LogEvent{Section: "svc", Level: level, Body: "msg"}
}

func TestLevelFilter(t *testing.T) {
	f := NewLevelFilter(core.WarnLevel)

	assert.False(t, f.IsEnabled(eventAt(core.DebugLevel)))
	assert.False(t, f.IsEnabled(eventAt(core.InfoLevel)))
	assert.True(t, f.IsEnabled(eventAt(core.WarnLevel)))
	assert.True(t, f.IsEnabled(eventAt(core.FatalLevel)))
}

func TestFilterFunc(t *testing.T) {
	f := FilterFunc(func(e *core.LogEvent) bool {
		return e.Section == "svc"
	})

	assert.True(t, f.IsEnabled(eventAt(core.InfoLevel)))
	assert.False(t, f.IsEnabled(&core.LogEvent{Section: "other"}))
}

func TestCompositeFilter(t *testing.T) {
	pass := FilterFunc(func(*core.LogEvent) bool { return true })
	fail := FilterFunc(func(*core.LogEvent) bool { return false })

	assert.True(t, NewCompositeFilter(pass, pass).IsEnabled(eventAt(core.InfoLevel)))
	assert.False(t, NewCompositeFilter(pass, fail).IsEnabled(eventAt(core.InfoLevel)))
	assert.True(t, NewCompositeFilter().IsEnabled(eventAt(core.InfoLevel)))

	c := NewCompositeFilter(pass)
	c.Add(fail)
	assert.False(t, c.IsEnabled(eventAt(core.InfoLevel)))
}

func TestOrFilter(t *testing.T) {
	pass := FilterFunc(func(*core.LogEvent) bool { return true })
	fail := FilterFunc(func(*core.LogEvent) bool { return false })

	assert.True(t, NewOrFilter(fail, pass).IsEnabled(eventAt(core.InfoLevel)))
	assert.False(t, NewOrFilter(fail, fail).IsEnabled(eventAt(core.InfoLevel)))
}

func TestNotFilter(t *testing.T) {
	fail := FilterFunc(func(*core.LogEvent) bool { return false })
	assert.True(t, NewNotFilter(fail).IsEnabled(eventAt(core.InfoLevel)))
}
