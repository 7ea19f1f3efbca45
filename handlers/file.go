package handlers

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/quillog/quill/core"
	"github.com/quillog/quill/selflog"
)

// FileOptions configures a FileHandler.
type FileOptions struct {
	// Append opens the file in append mode; otherwise a pre-existing file
	// is truncated before the first write.
	Append bool

	// Lock takes an exclusive OS-level lock on the file for the handler's
	// lifetime. No-op on platforms without flock.
	Lock bool
}

// FileHandler writes rendered events to a single file. The file is opened
// at construction and kept open, optionally OS-locked, until Close.
type FileHandler struct {
	path   string
	file   *os.File
	locked bool
	mu     sync.Mutex
	isOpen bool
}

// NewFileHandler creates a file handler in append mode without locking.
func NewFileHandler(path string) (*FileHandler, error) {
	return NewFileHandlerWithOptions(path, FileOptions{Append: true})
}

// NewFileHandlerWithOptions creates a file handler. Open and lock failures
// surface as errors; a partially opened handle is cleaned up before
// returning.
func NewFileHandlerWithOptions(path string, opts FileOptions) (*FileHandler, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &ResourceError{Resource: "creating log directory " + dir, Err: err}
	}

	flags := os.O_CREATE | os.O_WRONLY
	if opts.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, &ResourceError{Resource: "opening log file " + path, Err: err}
	}

	fh := &FileHandler{
		path:   path,
		file:   file,
		isOpen: true,
	}

	if opts.Lock {
		if err := lockFile(file); err != nil {
			// Construction failed after open; release the handle.
			_ = file.Close()
			return nil, &ResourceError{Resource: "locking log file " + path, Err: err}
		}
		fh.locked = true
	}

	return fh, nil
}

// Path returns the backing file path.
func (fh *FileHandler) Path() string {
	return fh.path
}

// Handle appends the event's plain rendered message and a newline.
func (fh *FileHandler) Handle(event *core.LogEvent) error {
	fh.mu.Lock()
	defer fh.mu.Unlock()

	if !fh.isOpen {
		return errors.Errorf("log file %s is closed", fh.path)
	}

	if _, err := fh.file.WriteString(event.GeneratedMessage + "\n"); err != nil {
		return &ResourceError{Resource: "writing log file " + fh.path, Err: err}
	}
	return nil
}

// Close unlocks and closes the backing file. Idempotent; cleanup failures
// during close are best-effort and reported to selflog only.
func (fh *FileHandler) Close() error {
	fh.mu.Lock()
	defer fh.mu.Unlock()

	if !fh.isOpen {
		return nil
	}
	fh.isOpen = false

	if fh.locked {
		if err := unlockFile(fh.file); err != nil {
			selflog.Printf("[file] unlock failed for %s: %v", fh.path, err)
		}
		fh.locked = false
	}

	if err := fh.file.Sync(); err != nil {
		selflog.Printf("[file] sync failed for %s: %v", fh.path, err)
	}
	return fh.file.Close()
}
