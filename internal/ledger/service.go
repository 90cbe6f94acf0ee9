// Package ledger implements the track operations on an in-memory ledger.
// Callers load the ledger, run one operation, and save it when it changed.
package ledger

import (
	"time"

	"github.com/manav03panchal/track/internal/logging"
	"github.com/manav03panchal/track/internal/model"
	"github.com/manav03panchal/track/internal/naming"
	"github.com/manav03panchal/track/internal/parser"
	"github.com/manav03panchal/track/internal/report"
	"github.com/manav03panchal/track/internal/storage"
)

// Service holds the collaborators shared by all ledger operations.
type Service struct {
	Names    *naming.Checker
	IDs      storage.IDSource
	Interval int

	// Now returns the current time. Tests replace it.
	Now func() time.Time
}

// NewService creates a service. A nil checker uses the default cutoff, a nil
// id source uses random UUID prefixes, and a non-positive interval uses the
// default rounding interval.
func NewService(names *naming.Checker, ids storage.IDSource, interval int) *Service {
	if names == nil {
		names = naming.NewChecker(naming.DefaultCutoff, false)
	}
	if ids == nil {
		ids = storage.UUIDSource
	}
	if interval <= 0 {
		interval = parser.DefaultIntervalMinutes
	}
	return &Service{Names: names, IDs: ids, Interval: interval, Now: time.Now}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// knownNames returns the project and tag sets used for typo checks.
func knownNames(l *model.Ledger) (map[string]struct{}, map[string]struct{}) {
	return report.CollectKnownNames(l.Sessions, l.Active)
}

// appendSession gives sess a fresh id and appends it to the ledger.
func (s *Service) appendSession(l *model.Ledger, sess *model.Session) *model.Session {
	sess.ID = storage.NextID(l.IDs(), s.IDs)
	l.Sessions = append(l.Sessions, sess)
	logging.DebugLog("session recorded",
		logging.KeySessionID, sess.ID,
		logging.KeyProject, sess.Project,
		logging.KeyDuration, sess.Duration().Milliseconds(),
	)
	return sess
}
