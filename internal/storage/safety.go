package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manav03panchal/track/internal/errors"
)

const (
	// MinFreeSpace is the minimum free space required for write operations (10MB).
	MinFreeSpace = 10 * 1024 * 1024
	// MinFreeSpaceWarning is the threshold for warning about low disk space (50MB).
	MinFreeSpaceWarning = 50 * 1024 * 1024
)

// DiskSpaceInfo contains information about available disk space.
type DiskSpaceInfo struct {
	Path       string
	TotalBytes uint64
	FreeBytes  uint64
	UsedBytes  uint64
}

// FreePercent returns the percentage of free space.
func (d *DiskSpaceInfo) FreePercent() float64 {
	if d.TotalBytes == 0 {
		return 0
	}
	return float64(d.FreeBytes) / float64(d.TotalBytes) * 100
}

// CheckDiskSpace returns ErrDiskFull if free space at path is below MinFreeSpace.
// Paths whose free space cannot be determined pass.
func CheckDiskSpace(path string) error {
	info, err := GetDiskSpace(path)
	if err != nil {
		return nil
	}

	if info.FreeBytes < MinFreeSpace {
		return &errors.SystemError{
			Kind: errors.ErrDiskFull,
			Message: fmt.Sprintf("insufficient disk space: %d MB free, need at least %d MB",
				info.FreeBytes/(1024*1024),
				MinFreeSpace/(1024*1024)),
			Cause: errors.ErrDiskFull,
		}
	}

	return nil
}

// CheckDiskSpaceWarning returns a warning message when disk space is low,
// or an empty string.
func CheckDiskSpaceWarning(path string) string {
	info, err := GetDiskSpace(path)
	if err != nil {
		return ""
	}
	return diskSpaceWarning(info)
}

func diskSpaceWarning(info *DiskSpaceInfo) string {
	if info.FreeBytes >= MinFreeSpaceWarning {
		return ""
	}
	return fmt.Sprintf("low disk space: %d MB free (%.1f%%)",
		info.FreeBytes/(1024*1024), info.FreePercent())
}

// existingAncestor returns path or its nearest parent that exists.
func existingAncestor(path string) string {
	for {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(path)
		if parent == path {
			return path
		}
		path = parent
	}
}

// SafeWrite replaces path atomically: the data goes to a temp file in the
// same directory, is synced, and renamed over the destination.
func SafeWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := CheckDiskSpace(dir); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".track-*.tmp")
	if err != nil {
		return wrapWriteError("create temp file", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return wrapWriteError("write", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return wrapWriteError("sync", err)
	}

	if err := tmpFile.Close(); err != nil {
		return errors.Wrap(err, "failed to close temp file")
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		return errors.Wrapf(err, "failed to set permissions %o", perm)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return wrapWriteError("rename", err)
	}

	success = true
	return nil
}

func wrapWriteError(op string, err error) error {
	switch {
	case isDiskFullError(err):
		return &errors.SystemError{Kind: errors.ErrDiskFull, Message: "disk full", Op: op, Cause: err}
	case os.IsPermission(err):
		return &errors.SystemError{Kind: errors.ErrPermissionDenied, Message: "permission denied", Op: op, Cause: err}
	default:
		return errors.NewSystemErrorWithOp(op, "failed to write ledger", err)
	}
}

// EnsureDirectory creates a directory with safe permissions if it doesn't exist.
func EnsureDirectory(path string) error {
	if err := CheckDiskSpace(filepath.Dir(path)); err != nil {
		return err
	}

	if err := os.MkdirAll(path, 0700); err != nil {
		return wrapWriteError("mkdir", err)
	}

	return nil
}
