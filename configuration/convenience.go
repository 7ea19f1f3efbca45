package configuration

import (
	"fmt"

	"github.com/quillog/quill"
)

// CreateLoggerFromFile creates a logger from a JSON or YAML configuration
// file. This is the main entry point for configuration-based creation.
func CreateLoggerFromFile(filename string) (*quill.Logger, error) {
	config, err := LoadFromFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return NewLoggerBuilder().Build(config)
}

// CreateLoggerFromJSON creates a logger from JSON configuration data.
func CreateLoggerFromJSON(jsonData []byte) (*quill.Logger, error) {
	config, err := LoadFromJSON(jsonData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return NewLoggerBuilder().Build(config)
}
