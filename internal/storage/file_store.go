package storage

import (
	"os"
	"path/filepath"

	"github.com/manav03panchal/track/internal/errors"
	"github.com/manav03panchal/track/internal/logging"
)

const (
	// DefaultDataDir is the directory under the home directory holding the ledger.
	DefaultDataDir = ".track"
	// DefaultDataFileName is the ledger file name.
	DefaultDataFileName = "data.json"
)

// DefaultDataFile returns ~/.track/data.json.
func DefaultDataFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, DefaultDataDir, DefaultDataFileName)
}

// FileStore keeps the ledger blob in a JSON file. Writes are atomic and a
// FileLock in the same directory serializes track processes.
type FileStore struct {
	path string
	lock *FileLock
}

// NewFileStore creates a file-backed blob store at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		lock: NewFileLock(filepath.Dir(path)),
	}
}

// Path returns the ledger file path.
func (s *FileStore) Path() string {
	return s.path
}

// Dir returns the directory containing the ledger file.
func (s *FileStore) Dir() string {
	return filepath.Dir(s.path)
}

// Read returns the file contents, or nil if the file does not exist.
func (s *FileStore) Read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		if os.IsPermission(err) {
			return nil, &errors.SystemError{Kind: errors.ErrPermissionDenied, Message: "permission denied", Op: "read", Cause: err}
		}
		return nil, errors.NewSystemErrorWithOp("read", "failed to read ledger", err)
	}
	return data, nil
}

// Write atomically replaces the ledger file, creating its directory if needed.
func (s *FileStore) Write(data []byte) error {
	if err := EnsureDirectory(s.Dir()); err != nil {
		return err
	}
	if warning := CheckDiskSpaceWarning(s.Dir()); warning != "" {
		logging.Warn(warning, logging.KeyPath, s.path)
	}
	return SafeWrite(s.path, data, 0600)
}

// Lock takes the exclusive ledger lock.
func (s *FileStore) Lock() error {
	if err := EnsureDirectory(s.Dir()); err != nil {
		return err
	}
	return s.lock.Acquire()
}

// Unlock releases the ledger lock.
func (s *FileStore) Unlock() error {
	return s.lock.Release()
}

// Close releases the lock if it is still held.
func (s *FileStore) Close() error {
	return s.lock.Release()
}
