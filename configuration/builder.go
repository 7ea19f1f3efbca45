package configuration

import (
	"fmt"

	"github.com/quillog/quill"
	"github.com/quillog/quill/core"
	"github.com/quillog/quill/filters"
	"github.com/quillog/quill/handlers"
)

// LoggerBuilder builds a logger from configuration.
type LoggerBuilder struct {
	handlerFactories map[string]HandlerFactory
	filterFactories  map[string]FilterFactory
}

// HandlerFactory creates a handler from configuration args.
type HandlerFactory func(args map[string]interface{}) (core.Handler, error)

// FilterFactory creates a filter from configuration args.
type FilterFactory func(args map[string]interface{}) (core.Filter, error)

// NewLoggerBuilder creates a new logger builder with default factories.
func NewLoggerBuilder() *LoggerBuilder {
	lb := &LoggerBuilder{
		handlerFactories: make(map[string]HandlerFactory),
		filterFactories:  make(map[string]FilterFactory),
	}

	lb.RegisterHandler("Console", createConsoleHandler)
	lb.RegisterHandler("File", createFileHandler)
	lb.RegisterHandler("Directory", createDirectoryHandler)
	lb.RegisterHandler("Memory", createMemoryHandler)

	lb.RegisterFilter("MinimumLevel", createLevelFilter)

	return lb
}

// RegisterHandler registers a custom handler factory.
func (lb *LoggerBuilder) RegisterHandler(name string, factory HandlerFactory) {
	lb.handlerFactories[name] = factory
}

// RegisterFilter registers a custom filter factory.
func (lb *LoggerBuilder) RegisterFilter(name string, factory FilterFactory) {
	lb.filterFactories[name] = factory
}

// Build creates a logger from the configuration.
func (lb *LoggerBuilder) Build(config *Configuration) (*quill.Logger, error) {
	var options []quill.Option

	if config.Quill.MinimumLevel != "" {
		level, err := core.ParseLevel(config.Quill.MinimumLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid minimum level: %w", err)
		}
		options = append(options, quill.WithMinimumLevel(level))
	}
	if config.Quill.UTC {
		options = append(options, quill.WithUTC())
	}
	options = append(options, quill.WithIndentation(config.Quill.Indentation))

	for _, filterConfig := range config.Quill.Filter {
		filter, err := lb.createFilter(filterConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create filter %s: %w", filterConfig.Name, err)
		}
		options = append(options, quill.WithFilter(filter))
	}

	for _, handlerConfig := range config.Quill.WriteTo {
		handler, err := lb.createHandler(handlerConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create handler %s: %w", handlerConfig.Name, err)
		}
		options = append(options, quill.WithHandler(handler))
	}

	return quill.New(config.Quill.Section, options...)
}

// createHandler creates a handler from configuration.
func (lb *LoggerBuilder) createHandler(config HandlerConfiguration) (core.Handler, error) {
	factory, ok := lb.handlerFactories[config.Name]
	if !ok {
		return nil, fmt.Errorf("unknown handler: %s", config.Name)
	}
	return factory(config.Args)
}

// createFilter creates a filter from configuration.
func (lb *LoggerBuilder) createFilter(config FilterConfiguration) (core.Filter, error) {
	factory, ok := lb.filterFactories[config.Name]
	if !ok {
		return nil, fmt.Errorf("unknown filter: %s", config.Name)
	}
	return factory(config.Args)
}

// Default handler factories

func createConsoleHandler(args map[string]interface{}) (core.Handler, error) {
	handler := handlers.NewConsoleHandler()
	if !GetBool(args, "color", true) {
		handler.SetUseColor(false)
	}
	return handler, nil
}

func createFileHandler(args map[string]interface{}) (core.Handler, error) {
	path := GetString(args, "path", "")
	if path == "" {
		return nil, fmt.Errorf("file handler requires a 'path' argument")
	}
	return handlers.NewFileHandlerWithOptions(path, handlers.FileOptions{
		Append: GetBool(args, "append", true),
		Lock:   GetBool(args, "lock", false),
	})
}

func createDirectoryHandler(args map[string]interface{}) (core.Handler, error) {
	dir := GetString(args, "dir", "")
	if dir == "" {
		return nil, fmt.Errorf("directory handler requires a 'dir' argument")
	}
	return handlers.NewDirectoryHandler(dir, handlers.DirectoryOptions{
		Daily:         GetBool(args, "daily", false),
		SectionSuffix: GetBool(args, "sectionSuffix", false),
		Filename:      GetString(args, "filename", ""),
	})
}

func createMemoryHandler(map[string]interface{}) (core.Handler, error) {
	return handlers.NewMemoryHandler(), nil
}

// Default filter factories

func createLevelFilter(args map[string]interface{}) (core.Filter, error) {
	levelStr := GetString(args, "level", "Info")
	level, err := core.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	return filters.NewLevelFilter(level), nil
}
