// Package configuration builds quill loggers from declarative JSON or YAML
// documents, mapping named handler and filter entries onto factories.
package configuration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// LoggerConfiguration describes one logger: its section, level and
// rendering knobs, and the handlers and filters to wire in order.
type LoggerConfiguration struct {
	Section      string                 `json:"Section" yaml:"Section"`
	MinimumLevel string                 `json:"MinimumLevel,omitempty" yaml:"MinimumLevel,omitempty"`
	UTC          bool                   `json:"UTC,omitempty" yaml:"UTC,omitempty"`
	Indentation  bool                   `json:"Indentation,omitempty" yaml:"Indentation,omitempty"`
	WriteTo      []HandlerConfiguration `json:"WriteTo,omitempty" yaml:"WriteTo,omitempty"`
	Filter       []FilterConfiguration  `json:"Filter,omitempty" yaml:"Filter,omitempty"`
}

// HandlerConfiguration names a handler factory and its arguments.
type HandlerConfiguration struct {
	Name string                 `json:"Name" yaml:"Name"`
	Args map[string]interface{} `json:"Args,omitempty" yaml:"Args,omitempty"`
}

// FilterConfiguration names a filter factory and its arguments.
type FilterConfiguration struct {
	Name string                 `json:"Name" yaml:"Name"`
	Args map[string]interface{} `json:"Args,omitempty" yaml:"Args,omitempty"`
}

// Configuration is the root configuration object.
type Configuration struct {
	Quill LoggerConfiguration `json:"Quill" yaml:"Quill"`
}

// LoadFromFile loads configuration from a JSON or YAML file, dispatching on
// the file extension.
func LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return LoadFromYAML(data)
	default:
		return LoadFromJSON(data)
	}
}

// LoadFromJSON loads configuration from JSON data.
func LoadFromJSON(data []byte) (*Configuration, error) {
	var config Configuration
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	applyDefaults(&config)
	return &config, nil
}

// LoadFromYAML loads configuration from YAML data.
func LoadFromYAML(data []byte) (*Configuration, error) {
	var config Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(config *Configuration) {
	if config.Quill.MinimumLevel == "" {
		config.Quill.MinimumLevel = "Info"
	}
}

// GetString gets a string value from configuration args.
func GetString(args map[string]interface{}, key string, defaultValue string) string {
	if v, ok := args[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return defaultValue
}

// GetBool gets a bool value from configuration args.
func GetBool(args map[string]interface{}, key string, defaultValue bool) bool {
	if v, ok := args[key]; ok {
		switch val := v.(type) {
		case bool:
			return val
		case string:
			switch strings.ToLower(val) {
			case "true", "1", "yes", "on":
				return true
			case "false", "0", "no", "off":
				return false
			}
		}
	}
	return defaultValue
}
