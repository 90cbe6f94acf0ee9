package ledger

import (
	"fmt"
	"time"

	"github.com/manav03panchal/track/internal/errors"
	"github.com/manav03panchal/track/internal/logging"
	"github.com/manav03panchal/track/internal/model"
	"github.com/manav03panchal/track/internal/naming"
	"github.com/manav03panchal/track/internal/parser"
	"github.com/manav03panchal/track/internal/validate"
)

// AddRequest describes a manually logged session. Either From and To or
// Duration must be given; a duration ends the session now.
type AddRequest struct {
	Project         string
	Tags            []string
	Note            string
	From            string
	To              string
	Duration        string
	ForceNewProject bool
	ForceNewTag     bool
}

// AddSession appends a completed session.
func (s *Service) AddSession(l *model.Ledger, req AddRequest) (*model.Session, error) {
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

	start, end, err := s.sessionBounds(req)
	if err != nil {
		return nil, err
	}

	sess := model.NewSession("", project, normalizedTags, note, start, end)
	if sess.End.Before(sess.Start) {
		return nil, errors.NewUserError(
			errors.ErrTimeOrderViolation,
			"End time must not be before start time.",
			"",
		)
	}
	return s.appendSession(l, sess), nil
}

func (s *Service) sessionBounds(req AddRequest) (time.Time, time.Time, error) {
	if req.Duration != "" {
		d, err := parser.ParseDuration(req.Duration)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end := model.TruncateToSecond(s.now())
		return end.Add(-d), end, nil
	}

	if req.From == "" || req.To == "" {
		return time.Time{}, time.Time{}, errors.NewUserError(
			errors.ErrInvalidArgs,
			"Provide both --from and --to when not using --time.",
			"",
		)
	}
	start, err := parser.ParseDateTime(req.From)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parser.ParseDateTime(req.To)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// DeleteRequest selects sessions to delete. SessionID wins over Tag, which
// wins over Project; with Tag set, Project narrows the match.
type DeleteRequest struct {
	SessionID string
	Tag       string
	Project   string
}

// Delete dispatches to the matching Delete* operation.
func (s *Service) Delete(l *model.Ledger, req DeleteRequest) (int, error) {
	switch {
	case req.SessionID != "":
		return s.DeleteByID(l, req.SessionID)
	case naming.Normalize(req.Tag) != "":
		return s.DeleteByTag(l, req.Tag, req.Project)
	case naming.Normalize(req.Project) != "":
		return s.DeleteByProject(l, req.Project)
	default:
		return 0, errors.NewUserError(errors.ErrInvalidArgs, "Provide --project, --tag, or --session.", "")
	}
}

// DeleteByID removes the session with the given id.
func (s *Service) DeleteByID(l *model.Ledger, id string) (int, error) {
	removed := l.RemoveWhere(func(sess *model.Session) bool { return sess.ID == id })
	if removed == 0 {
		return 0, notFound(fmt.Sprintf("Session id %s not found.", id))
	}
	logDeleted(removed, logging.KeySessionID, id)
	return removed, nil
}

// DeleteByProject removes every session of a project.
func (s *Service) DeleteByProject(l *model.Ledger, project string) (int, error) {
	project = naming.Normalize(project)
	removed := l.RemoveWhere(func(sess *model.Session) bool {
		return naming.Normalize(sess.Project) == project
	})
	if removed == 0 {
		return 0, notFound(fmt.Sprintf("Project '%s' not found.", project))
	}
	logDeleted(removed, logging.KeyProject, project)
	return removed, nil
}

// DeleteByTag removes every session carrying tag, limited to project when
// project is non-empty.
func (s *Service) DeleteByTag(l *model.Ledger, tag, project string) (int, error) {
	tag = naming.Normalize(tag)
	project = naming.Normalize(project)
	removed := l.RemoveWhere(func(sess *model.Session) bool {
		if project != "" && naming.Normalize(sess.Project) != project {
			return false
		}
		return hasNormalizedTag(sess.Tags, tag)
	})
	if removed == 0 {
		return 0, notFound("No sessions matched the requested tag/project filter.")
	}
	logDeleted(removed, logging.KeyTag, tag, logging.KeyProject, project)
	return removed, nil
}

func logDeleted(count int, args ...any) {
	logging.DebugLog("sessions deleted", append([]any{logging.KeyCount, count}, args...)...)
}

func hasNormalizedTag(tags []string, tag string) bool {
	for _, t := range tags {
		if naming.Normalize(t) == tag {
			return true
		}
	}
	return false
}

func notFound(msg string) error {
	return errors.NewUserError(errors.ErrSessionNotFound, msg, "")
}
