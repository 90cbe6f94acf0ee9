package storage

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/manav03panchal/track/internal/errors"
)

const (
	// BackupDirName is the directory, next to the ledger, holding backups.
	BackupDirName = "backups"

	backupPrefix = "ledger-"
	backupSuffix = ".json.zst"
)

// BackupDir returns the backup directory for a ledger stored in dataDir.
func BackupDir(dataDir string) string {
	return filepath.Join(dataDir, BackupDirName)
}

// Backup writes a zstd-compressed copy of blob to
// <dir>/ledger-<timestamp>.json.zst and returns its path.
func Backup(dir string, blob []byte, now time.Time) (string, error) {
	if dir == "" {
		return "", errors.NewSystemError("backup directory is empty", nil)
	}
	if err := EnsureDirectory(dir); err != nil {
		return "", err
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return "", errors.NewSystemErrorWithOp("backup", "failed to create compressor", err)
	}
	compressed := enc.EncodeAll(blob, make([]byte, 0, len(blob)/2))
	if err := enc.Close(); err != nil {
		return "", errors.NewSystemErrorWithOp("backup", "failed to close compressor", err)
	}

	name := backupPrefix + now.Format("20060102-150405.000000000") + backupSuffix
	path := filepath.Join(dir, name)
	if err := SafeWrite(path, compressed, 0600); err != nil {
		return "", err
	}
	return path, nil
}

// ReadBackup decompresses a backup written by Backup.
func ReadBackup(path string) ([]byte, error) {
	compressed, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("read backup", "failed to read backup", err)
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("read backup", "failed to create decompressor", err)
	}
	defer dec.Close()

	data, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("read backup", "backup is not valid zstd data", err)
	}
	return data, nil
}

// ListBackups returns backup paths in dir, oldest first.
func ListBackups(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupSuffix) {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)
	return paths, nil
}
