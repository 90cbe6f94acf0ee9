//go:build windows

package storage

import (
	"os"
)

// flockAcquire is a no-op on Windows; the PID file alone guards the ledger.
func flockAcquire(file *os.File) error {
	return nil
}

func flockRelease(file *os.File) error {
	return nil
}

// isProcessRunning reports whether a process with pid can be found.
func isProcessRunning(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	process.Release()
	return true
}
