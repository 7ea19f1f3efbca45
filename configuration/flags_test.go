package configuration

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFlags(t *testing.T) {
	c := NewFlagConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.RegisterFlags(fs)

	require.NoError(t, fs.Parse([]string{"--log-level=error", "--log-utc", "--log-indent"}))

	config := &LoggerConfiguration{Section: "svc"}
	require.NoError(t, c.Apply(config))

	assert.Equal(t, "error", config.MinimumLevel)
	assert.True(t, config.UTC)
	assert.True(t, config.Indentation)
}

func TestApplyRejectsBadLevel(t *testing.T) {
	c := NewFlagConfig()
	c.Level = "loud"
	assert.Error(t, c.Apply(&LoggerConfiguration{Section: "svc"}))
}

func TestCustomFlagNames(t *testing.T) {
	c := &FlagConfig{Flags: Flags{Level: "verbosity", UTC: "utc", Indentation: "indent"}}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.RegisterFlags(fs)

	require.NoError(t, fs.Parse([]string{"--verbosity=warn"}))
	assert.Equal(t, "warn", c.Level)
}
