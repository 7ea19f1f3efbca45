//go:build windows

package handlers

import "os"

// File locking is not supported on Windows; the lock option is a no-op.

func lockFile(*os.File) error   { return nil }
func unlockFile(*os.File) error { return nil }
