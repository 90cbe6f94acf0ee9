//go:build !windows

package storage

import (
	stderrors "errors"
	"fmt"
	"os"
	"syscall"

	"github.com/manav03panchal/track/internal/errors"
)

// flockAcquire takes a non-blocking exclusive flock on the file.
func flockAcquire(file *os.File) error {
	if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		if stderrors.Is(err, syscall.EWOULDBLOCK) {
			return errors.ErrLockHeld
		}
		return fmt.Errorf("%w: %v", ErrLockAcquireFailed, err)
	}
	return nil
}

func flockRelease(file *os.File) error {
	return syscall.Flock(int(file.Fd()), syscall.LOCK_UN)
}

// isProcessRunning sends signal 0 to pid, which only checks for existence.
func isProcessRunning(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
