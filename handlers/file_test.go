package handlers

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillog/quill/core"
)

func TestFileHandlerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	fh, err := NewFileHandler(path)
	require.NoError(t, err)

	require.NoError(t, fh.Handle(testEvent(core.InfoLevel, "first")))
	require.NoError(t, fh.Handle(testEvent(core.InfoLevel, "second")))
	require.NoError(t, fh.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(content))
}

func TestFileHandlerTruncatesOnceThenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0644))

	fh, err := NewFileHandlerWithOptions(path, FileOptions{Append: false})
	require.NoError(t, err)

	require.NoError(t, fh.Handle(testEvent(core.InfoLevel, "fresh")))
	require.NoError(t, fh.Handle(testEvent(core.InfoLevel, "more")))
	require.NoError(t, fh.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh\nmore\n", string(content),
		"pre-existing content truncated before the first write only")
}

func TestFileHandlerAppendModeKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("kept\n"), 0644))

	fh, err := NewFileHandlerWithOptions(path, FileOptions{Append: true})
	require.NoError(t, err)
	require.NoError(t, fh.Handle(testEvent(core.InfoLevel, "added")))
	require.NoError(t, fh.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "kept\nadded\n", string(content))
}

func TestFileHandlerCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "app.log")

	fh, err := NewFileHandler(path)
	require.NoError(t, err)
	require.NoError(t, fh.Close())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFileHandlerClosedRejectsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	fh, err := NewFileHandler(path)
	require.NoError(t, err)

	require.NoError(t, fh.Close())
	require.NoError(t, fh.Close(), "close is idempotent")

	assert.Error(t, fh.Handle(testEvent(core.InfoLevel, "late")))
}

func TestFileHandlerExclusiveLock(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("flock is a no-op on windows")
	}

	path := filepath.Join(t.TempDir(), "locked.log")

	first, err := NewFileHandlerWithOptions(path, FileOptions{Append: true, Lock: true})
	require.NoError(t, err)

	_, err = NewFileHandlerWithOptions(path, FileOptions{Append: true, Lock: true})
	require.Error(t, err, "second handler must not acquire the lock")

	require.NoError(t, first.Close())

	// Lock released on close; a new handler can take it.
	third, err := NewFileHandlerWithOptions(path, FileOptions{Append: true, Lock: true})
	require.NoError(t, err)
	require.NoError(t, third.Close())
}
