package ledger

import (
	"fmt"

	"github.com/manav03panchal/track/internal/errors"
	"github.com/manav03panchal/track/internal/logging"
	"github.com/manav03panchal/track/internal/model"
	"github.com/manav03panchal/track/internal/naming"
)

// RenameRequest renames either a project or a tag. SessionID limits a tag
// rename to one session.
type RenameRequest struct {
	Project   string
	Tag       string
	SessionID string
	To        string
}

// Rename dispatches to RenameProject or RenameTag.
func (s *Service) Rename(l *model.Ledger, req RenameRequest) (int, error) {
	if (req.Project == "") == (req.Tag == "") {
		return 0, errors.NewUserError(errors.ErrInvalidArgs, "Provide exactly one of --project or --tag.", "")
	}
	if req.Project != "" {
		return s.RenameProject(l, req.Project, req.To)
	}
	return s.RenameTag(l, req.Tag, req.To, req.SessionID)
}

// RenameProject moves every session of from to project to.
func (s *Service) RenameProject(l *model.Ledger, from, to string) (int, error) {
	from = naming.Normalize(from)
	to = naming.Normalize(to)
	if err := naming.Validate(naming.KindProject, to); err != nil {
		return 0, err
	}

	changed := 0
	for _, sess := range l.Sessions {
		if naming.Normalize(sess.Project) == from {
			sess.Project = to
			changed++
		}
	}
	if changed == 0 {
		return 0, notFound(fmt.Sprintf("Project '%s' not found.", from))
	}

	logging.DebugLog("project renamed", logging.KeyProject, to, logging.KeyCount, changed)
	return changed, nil
}

// RenameTag replaces tag from with to, in one session when sessionID is set
// or across the ledger otherwise. Tag lists stay free of duplicates.
func (s *Service) RenameTag(l *model.Ledger, from, to, sessionID string) (int, error) {
	from = naming.Normalize(from)
	to = naming.Normalize(to)
	if err := naming.Validate(naming.KindTag, to); err != nil {
		return 0, err
	}

	if sessionID != "" {
		sess := l.FindByID(sessionID)
		if sess == nil {
			return 0, notFound(fmt.Sprintf("Session id %s not found.", sessionID))
		}
		if !hasNormalizedTag(sess.Tags, from) {
			return 0, notFound(fmt.Sprintf("Tag '%s' not found in session id %s.", from, sessionID))
		}
		sess.Tags = replaceTag(sess.Tags, from, to)
		return 1, nil
	}

	changed := 0
	for _, sess := range l.Sessions {
		if hasNormalizedTag(sess.Tags, from) {
			sess.Tags = replaceTag(sess.Tags, from, to)
			changed++
		}
	}
	if changed == 0 {
		return 0, notFound(fmt.Sprintf("Tag '%s' not found.", from))
	}

	logging.DebugLog("tag renamed", logging.KeyTag, to, logging.KeyCount, changed)
	return changed, nil
}

func replaceTag(tags []string, from, to string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if naming.Normalize(t) == from {
			t = to
		}
		out = append(out, t)
	}
	return naming.Dedupe(out)
}
