// Package report selects ledger sessions by project, tag and date range and
// aggregates their durations for reports and exports.
package report

import (
	"time"

	"github.com/manav03panchal/track/internal/errors"
	"github.com/manav03panchal/track/internal/model"
	"github.com/manav03panchal/track/internal/naming"
	"github.com/manav03panchal/track/internal/parser"
)

// Filter narrows a session list. Zero From/To leave that side open.
// With All unset and neither bound given, the current week applies.
type Filter struct {
	Project string
	Tag     string
	From    time.Time
	To      time.Time
	All     bool
}

// HasRange reports whether either bound is set.
func (f Filter) HasRange() bool {
	return !f.From.IsZero() || !f.To.IsZero()
}

// Validate rejects a range whose start is after its end.
func (f Filter) Validate() error {
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return errors.NewUserError(
			errors.ErrInvalidDate,
			"--from date must be on or before --to date.",
			"Swap the dates or drop one of the bounds.",
		)
	}
	return nil
}

// Range returns the effective bounds for the filter at time now.
func (f Filter) Range(now time.Time) (from, to time.Time) {
	if !f.All && !f.HasRange() {
		return parser.WeekRange(now)
	}
	return f.From, f.To
}

// FilterSessions returns the sessions matching f, in ledger order.
func FilterSessions(sessions []*model.Session, f Filter, now time.Time) []*model.Session {
	project := naming.Normalize(f.Project)
	tag := naming.Normalize(f.Tag)
	from, to := f.Range(now)

	out := make([]*model.Session, 0, len(sessions))
	for _, s := range sessions {
		if project != "" && naming.Normalize(s.Project) != project {
			continue
		}
		if tag != "" && !hasTag(canonicalTags(s.Tags), tag) {
			continue
		}
		if !from.IsZero() && s.Start.Before(from) {
			continue
		}
		if !to.IsZero() && s.Start.After(to) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// canonicalTags normalizes stored tags, which may predate normalization,
// dropping empty and repeated names.
func canonicalTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = naming.Normalize(t); t != "" {
			out = append(out, t)
		}
	}
	return naming.Dedupe(out)
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// CollectKnownNames gathers every project and tag in use, including the
// running timer's.
func CollectKnownNames(sessions []*model.Session, active *model.ActiveTimer) (projects, tags map[string]struct{}) {
	projects = make(map[string]struct{})
	tags = make(map[string]struct{})

	add := func(project string, sessionTags []string) {
		if p := naming.Normalize(project); p != "" {
			projects[p] = struct{}{}
		}
		for _, t := range sessionTags {
			if t = naming.Normalize(t); t != "" {
				tags[t] = struct{}{}
			}
		}
	}

	for _, s := range sessions {
		add(s.Project, s.Tags)
	}
	if active != nil {
		add(active.Project, active.Tags)
	}
	return projects, tags
}
