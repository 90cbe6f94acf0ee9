package storage

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manav03panchal/track/internal/errors"
)

// LockFileName is the name of the lock file next to the ledger.
const LockFileName = "track.lock"

// ErrLockAcquireFailed is returned when the lock file cannot be created or locked.
var ErrLockAcquireFailed = stderrors.New("failed to acquire ledger lock")

// FileLock is an advisory, exclusive lock held for the duration of one command.
// The holder's PID is written into the lock file so stale locks left by a
// crashed process can be removed.
type FileLock struct {
	path string
	file *os.File
}

// NewFileLock creates a new file lock in the specified directory.
func NewFileLock(dir string) *FileLock {
	return &FileLock{
		path: filepath.Join(dir, LockFileName),
	}
}

// Path returns the lock file path.
func (l *FileLock) Path() string {
	return l.path
}

// Acquire takes the lock without blocking. A lock held by another live
// process yields a *LockError matching errors.ErrLockHeld.
func (l *FileLock) Acquire() error {
	if l.file != nil {
		return nil
	}

	if err := l.cleanStaleLock(); err != nil {
		return err
	}

	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLockAcquireFailed, err)
	}

	if err := flockAcquire(file); err != nil {
		file.Close()
		if stderrors.Is(err, errors.ErrLockHeld) {
			return &LockError{Err: err, PID: l.readPID()}
		}
		return err
	}

	if err := writePID(file); err != nil {
		flockRelease(file)
		file.Close()
		return fmt.Errorf("%w: %v", ErrLockAcquireFailed, err)
	}

	l.file = file
	return nil
}

func writePID(file *os.File) error {
	if err := file.Truncate(0); err != nil {
		return err
	}
	if _, err := file.Seek(0, 0); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(file, "%d", os.Getpid()); err != nil {
		return err
	}
	return file.Sync()
}

// Release releases the lock and removes the lock file.
func (l *FileLock) Release() error {
	if l.file == nil {
		return nil
	}

	if err := flockRelease(l.file); err != nil {
		l.file.Close()
		l.file = nil
		return err
	}

	if err := l.file.Close(); err != nil {
		l.file = nil
		return err
	}
	l.file = nil

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// cleanStaleLock removes a lock file whose owning process is no longer running.
func (l *FileLock) cleanStaleLock() error {
	pid := l.readPID()
	if pid <= 0 || pid == os.Getpid() {
		return nil
	}

	if isProcessRunning(pid) {
		return nil
	}

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to clean stale lock of PID %d", pid)
	}
	return nil
}

// readPID returns the PID stored in the lock file, or 0.
func (l *FileLock) readPID() int {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return 0
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return pid
}

// LockError reports that another track process holds the ledger.
type LockError struct {
	Err error
	PID int
}

func (e *LockError) Error() string {
	if e.PID > 0 {
		return fmt.Sprintf("cannot access ledger: another track process (PID %d) is running", e.PID)
	}
	return fmt.Sprintf("cannot access ledger: %v", e.Err)
}

func (e *LockError) Unwrap() error {
	return e.Err
}
