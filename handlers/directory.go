package handlers

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/quillog/quill/core"
)

// DirectoryOptions configures a DirectoryHandler.
type DirectoryOptions struct {
	// Daily writes one file per calendar day named yyyy-MM-dd.log;
	// otherwise a fixed latest.log is used.
	Daily bool

	// SectionSuffix appends "-<section>" to the base name so sections do
	// not share a file.
	SectionSuffix bool

	// Filename, when non-empty, overrides the computed name entirely.
	Filename string
}

// DirectoryHandler writes rendered events into a directory, one file per
// calendar day or one fixed file. Files open lazily on the first event and
// reopen when the day rolls over.
type DirectoryHandler struct {
	dir     string
	opts    DirectoryOptions
	mu      sync.Mutex
	file    *os.File
	current string
	closed  bool
}

// NewDirectoryHandler creates a directory handler. The directory is created
// if missing; file opening is deferred until the first event because daily
// names depend on the event timestamp.
func NewDirectoryHandler(dir string, opts DirectoryOptions) (*DirectoryHandler, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &ResourceError{Resource: "creating log directory " + dir, Err: err}
	}
	return &DirectoryHandler{dir: dir, opts: opts}, nil
}

// filename computes the target name for one event.
func (dh *DirectoryHandler) filename(event *core.LogEvent) string {
	if dh.opts.Filename != "" {
		return dh.opts.Filename
	}

	base := "latest"
	if dh.opts.Daily {
		base = event.Timestamp.Format("2006-01-02")
	}
	if dh.opts.SectionSuffix {
		base += "-" + event.Section
	}
	return base + ".log"
}

// Handle appends the event's plain rendered message, rolling to a new file
// when the computed name changes.
func (dh *DirectoryHandler) Handle(event *core.LogEvent) error {
	dh.mu.Lock()
	defer dh.mu.Unlock()

	if dh.closed {
		return errors.Errorf("directory handler for %s is closed", dh.dir)
	}

	name := dh.filename(event)
	if dh.file == nil || name != dh.current {
		if err := dh.roll(name); err != nil {
			return err
		}
	}

	if _, err := dh.file.WriteString(event.GeneratedMessage + "\n"); err != nil {
		return &ResourceError{Resource: "writing log file " + dh.current, Err: err}
	}
	return nil
}

// roll closes the current file and opens the named one in append mode.
// Must be called with dh.mu held.
func (dh *DirectoryHandler) roll(name string) error {
	if dh.file != nil {
		_ = dh.file.Close()
		dh.file = nil
	}

	path := filepath.Join(dh.dir, name)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return &ResourceError{Resource: "opening log file " + path, Err: err}
	}
	dh.file = file
	dh.current = name
	return nil
}

// CurrentFile returns the name of the file currently open, if any.
func (dh *DirectoryHandler) CurrentFile() string {
	dh.mu.Lock()
	defer dh.mu.Unlock()
	return dh.current
}

// Close closes the open file, if any. Idempotent.
func (dh *DirectoryHandler) Close() error {
	dh.mu.Lock()
	defer dh.mu.Unlock()

	if dh.closed {
		return nil
	}
	dh.closed = true

	if dh.file == nil {
		return nil
	}
	err := dh.file.Close()
	dh.file = nil
	return err
}
