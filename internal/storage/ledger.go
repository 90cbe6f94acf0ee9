package storage

import (
	"io"
	"time"

	"github.com/manav03panchal/track/internal/logging"
	"github.com/manav03panchal/track/internal/model"
)

// Load decodes a ledger blob and repairs session ids. Any id that is not
// 8 lowercase hex characters, or repeats an earlier session's id, is replaced
// with a fresh one from ids. repaired reports whether that happened.
// An empty blob yields an empty ledger.
func Load(blob []byte, ids IDSource) (ledger *model.Ledger, repaired bool, err error) {
	ledger, err = decodeLedger(blob)
	if err != nil {
		return nil, false, err
	}
	return ledger, repairIDs(ledger, ids) > 0, nil
}

// repairIDs regenerates invalid or duplicate ids in place and returns how
// many were replaced. Replacement ids avoid every valid id in the ledger,
// including later ones.
func repairIDs(ledger *model.Ledger, ids IDSource) int {
	taken := make(map[string]struct{}, len(ledger.Sessions))
	for _, s := range ledger.Sessions {
		if IsValidID(s.ID) {
			taken[s.ID] = struct{}{}
		}
	}

	seen := make(map[string]struct{}, len(ledger.Sessions))
	repaired := 0
	for _, s := range ledger.Sessions {
		if IsValidID(s.ID) {
			if _, dup := seen[s.ID]; !dup {
				seen[s.ID] = struct{}{}
				continue
			}
		}

		old := s.ID
		s.ID = NextID(taken, ids)
		taken[s.ID] = struct{}{}
		seen[s.ID] = struct{}{}
		repaired++
		logging.DebugLog("session id regenerated", "old_id", old, logging.KeySessionID, s.ID)
	}
	return repaired
}

// Save serializes the full ledger. Saving always replaces the whole blob.
func Save(ledger *model.Ledger) ([]byte, error) {
	return encodeLedger(ledger)
}

// Store loads and saves ledgers through a BlobStore.
type Store struct {
	blob BlobStore
	ids  IDSource

	// backupDir receives a compressed copy of the blob before an id repair
	// is persisted. Empty disables backups.
	backupDir string
	now       func() time.Time
}

// StoreOptions configures a Store.
type StoreOptions struct {
	IDs       IDSource
	BackupDir string
}

// NewStore creates a ledger store over blob.
func NewStore(blob BlobStore, opts StoreOptions) *Store {
	ids := opts.IDs
	if ids == nil {
		ids = UUIDSource
	}
	return &Store{
		blob:      blob,
		ids:       ids,
		backupDir: opts.BackupDir,
		now:       time.Now,
	}
}

// IDs returns the id source used for new sessions.
func (s *Store) IDs() IDSource {
	return s.ids
}

// Blob returns the underlying blob store.
func (s *Store) Blob() BlobStore {
	return s.blob
}

// Load reads the ledger. A repaired ledger is written back immediately,
// after backing up the original blob when backups are enabled.
func (s *Store) Load() (*model.Ledger, error) {
	blob, err := s.blob.Read()
	if err != nil {
		return nil, err
	}

	ledger, err := decodeLedger(blob)
	if err != nil {
		return nil, err
	}

	if repaired := repairIDs(ledger, s.ids); repaired > 0 {
		if s.backupDir != "" {
			path, err := Backup(s.backupDir, blob, s.now())
			if err != nil {
				logging.Warn("failed to back up ledger before repair", logging.KeyError, err)
			} else {
				logging.Info("ledger backed up", logging.KeyPath, path)
			}
		}
		if err := s.Save(ledger); err != nil {
			return nil, err
		}
		logging.Info("repaired session ids", logging.KeyCount, repaired)
	}

	return ledger, nil
}

// Save writes the full ledger.
func (s *Store) Save(ledger *model.Ledger) error {
	data, err := Save(ledger)
	if err != nil {
		return err
	}
	return s.blob.Write(data)
}

// Close releases the blob store if it holds resources.
func (s *Store) Close() error {
	if c, ok := s.blob.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
