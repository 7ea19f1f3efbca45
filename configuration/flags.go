package configuration

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/quillog/quill/core"
)

// Flags holds CLI flag names for logger configuration, allowing callers to
// customize flag names while keeping sensible defaults via NewFlagConfig.
type Flags struct {
	Level       string
	UTC         string
	Indentation string
}

// FlagConfig holds CLI flag values for logger configuration.
type FlagConfig struct {
	Level       string
	UTC         bool
	Indentation bool
	Flags       Flags
}

// NewFlagConfig returns a FlagConfig with the default flag names. Register
// the flags with RegisterFlags, then fold the values into a
// LoggerConfiguration with Apply.
func NewFlagConfig() *FlagConfig {
	return &FlagConfig{
		Flags: Flags{
			Level:       "log-level",
			UTC:         "log-utc",
			Indentation: "log-indent",
		},
	}
}

// RegisterFlags adds the logger flags to the given flag set.
func (c *FlagConfig) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, "info",
		fmt.Sprintf("log level, one of: %s", strings.Join(levelNames(), ", ")))
	flags.BoolVar(&c.UTC, c.Flags.UTC, false,
		"render log timestamps in UTC")
	flags.BoolVar(&c.Indentation, c.Flags.Indentation, false,
		"align log continuation lines under the timestamp column")
}

// Apply folds the flag values into a logger configuration, overriding its
// level and rendering knobs.
func (c *FlagConfig) Apply(config *LoggerConfiguration) error {
	if _, err := core.ParseLevel(c.Level); err != nil {
		return err
	}
	config.MinimumLevel = c.Level
	config.UTC = c.UTC
	config.Indentation = c.Indentation
	return nil
}

func levelNames() []string {
	levels := core.Levels()
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = strings.ToLower(l.String())
	}
	return names
}
