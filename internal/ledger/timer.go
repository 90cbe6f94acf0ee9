package ledger

import (
	"time"

	"github.com/manav03panchal/track/internal/errors"
	"github.com/manav03panchal/track/internal/model"
	"github.com/manav03panchal/track/internal/validate"
)

// StartRequest describes a new timer.
type StartRequest struct {
	Project         string
	Tags            []string
	Note            string
	At              time.Time // zero means now
	ForceNewProject bool
	ForceNewTag     bool
}

// StartTimer begins a timer. Only one timer may run at a time.
func (s *Service) StartTimer(l *model.Ledger, req StartRequest) (*model.ActiveTimer, error) {
	if l.IsTracking() {
		return nil, errors.NewUserError(
			errors.ErrDuplicateActiveTimer,
			"A timer is already running. Stop it before starting a new one.",
			"",
		)
	}

	projects, tags := knownNames(l)
	project, err := s.Names.Project(req.Project, projects, req.ForceNewProject)
	if err != nil {
		return nil, err
	}
	normalizedTags, err := s.Names.Tags(req.Tags, tags, req.ForceNewTag)
	if err != nil {
		return nil, err
	}

	note, err := validate.Note(req.Note)
	if err != nil {
		return nil, err
	}

	start := req.At
	if start.IsZero() {
		start = s.now()
	}

	l.Active = model.NewActiveTimer(project, normalizedTags, note, start)
	return l.Active, nil
}

// StopTimer closes the running timer into a session ending at at, or now
// when at is zero.
func (s *Service) StopTimer(l *model.Ledger, at time.Time) (*model.Session, error) {
	if !l.IsTracking() {
		return nil, errors.NewUserError(errors.ErrNoActiveTimer, "No active timer to stop.", "")
	}

	end := at
	if end.IsZero() {
		end = s.now()
	}
	end = model.TruncateToSecond(end)
	if end.Before(l.Active.Start) {
		return nil, errors.NewUserError(
			errors.ErrTimeOrderViolation,
			"Stop time must not be before start time.",
			"",
		)
	}

	sess := s.appendSession(l, l.Active.Close("", end))
	l.Active = nil
	return sess, nil
}

// Status describes the running timer.
type Status struct {
	Timer   *model.ActiveTimer
	Elapsed time.Duration
}

// Status returns the running timer, or false when none is running.
// Elapsed never goes negative.
func (s *Service) Status(l *model.Ledger) (Status, bool) {
	if !l.IsTracking() {
		return Status{}, false
	}
	elapsed := l.Active.Elapsed(s.now())
	if elapsed < 0 {
		elapsed = 0
	}
	return Status{Timer: l.Active, Elapsed: elapsed}, true
}
