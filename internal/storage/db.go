// Package storage persists the ledger. A ledger is a single JSON blob kept
// either in a plain file or under one key of a Badger database.
package storage

import (
	stderrors "errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	badger "github.com/dgraph-io/badger/v4"

	"github.com/manav03panchal/track/internal/errors"
)

const (
	// AppName is the application name used for data directories.
	AppName = "track"

	// LedgerKey is the Badger key holding the ledger blob.
	LedgerKey = "ledger"
)

// BlobStore is an opaque persistent blob. A blob that was never written
// reads as nil.
type BlobStore interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// Options configures the Badger database.
type Options struct {
	// Path is the database directory path. Empty string uses in-memory mode.
	Path string
	// InMemory forces in-memory mode regardless of Path.
	InMemory bool
}

// DefaultBadgerPath returns the default database path following the XDG spec.
func DefaultBadgerPath() string {
	return filepath.Join(xdg.DataHome, AppName, "db")
}

// BadgerStore keeps the ledger blob under LedgerKey in a Badger database.
// Badger holds its own directory lock, so no FileLock is needed.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens or creates a Badger-backed blob store.
func OpenBadger(opts Options) (*BadgerStore, error) {
	var badgerOpts badger.Options

	if opts.InMemory || opts.Path == "" {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(opts.Path, 0700); err != nil {
			return nil, wrapWriteError("mkdir", err)
		}
		badgerOpts = badger.DefaultOptions(opts.Path)
	}

	// Reduce logging noise
	badgerOpts = badgerOpts.WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("open", "failed to open badger database", err)
	}

	return &BadgerStore{db: db}, nil
}

// Read returns the stored ledger blob, or nil if none has been written.
func (s *BadgerStore) Read() ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(LedgerKey))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("read", "failed to read ledger", err)
	}
	return data, nil
}

// Write replaces the stored ledger blob in a single transaction.
func (s *BadgerStore) Write(data []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(LedgerKey), data)
	})
	if err != nil {
		return errors.NewSystemErrorWithOp("write", "failed to write ledger", err)
	}
	return nil
}

// Close runs value log garbage collection and closes the database.
func (s *BadgerStore) Close() error {
	if s.db == nil {
		return nil
	}
	for {
		if err := s.db.RunValueLogGC(0.5); err != nil {
			break // nothing left to collect
		}
	}
	err := s.db.Close()
	s.db = nil
	return err
}
