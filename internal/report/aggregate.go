package report

import (
	"sort"
	"time"

	"github.com/manav03panchal/track/internal/model"
	"github.com/manav03panchal/track/internal/naming"
	"github.com/manav03panchal/track/internal/parser"
)

// Totals holds the summed durations for one project.
type Totals struct {
	Total     time.Duration
	TagTotals map[string]time.Duration
}

// Aggregate sums session durations per project and per tag. A session with
// several tags counts in full towards each of them; untagged sessions go to
// model.UntaggedBucket. Projects and tags are keyed by their normalized
// names. With round set, each session is rounded to interval minutes before
// it is added.
func Aggregate(sessions []*model.Session, round bool, interval int) map[string]*Totals {
	out := make(map[string]*Totals)
	for _, s := range sessions {
		d := sessionDuration(s, round, interval)

		project := naming.Normalize(s.Project)
		t, ok := out[project]
		if !ok {
			t = &Totals{TagTotals: make(map[string]time.Duration)}
			out[project] = t
		}
		t.Total += d

		tags := canonicalTags(s.Tags)
		if len(tags) == 0 {
			t.TagTotals[model.UntaggedBucket] += d
			continue
		}
		for _, tag := range tags {
			t.TagTotals[tag] += d
		}
	}
	return out
}

func sessionDuration(s *model.Session, round bool, interval int) time.Duration {
	if round {
		return parser.RoundToInterval(s.Duration(), interval)
	}
	return s.Duration()
}

// Options controls Build.
type Options struct {
	Exact    bool // skip per-session rounding
	Interval int  // rounding interval in minutes
	Notes    bool // keep the sessions that carry notes
}

// TagRow is one tag line inside a project.
type TagRow struct {
	Tag   string
	Total time.Duration
}

// ProjectRow is one project block in a report.
type ProjectRow struct {
	Project string
	Total   time.Duration
	Tags    []TagRow
}

// Report is the aggregated view printed by `track report`.
type Report struct {
	Projects   []ProjectRow
	GrandTotal time.Duration
	Earliest   time.Time
	Latest     time.Time
	Exact      bool
	Interval   int
	Notes      []*model.Session
}

// Empty reports whether no session matched.
func (r *Report) Empty() bool {
	return len(r.Projects) == 0
}

// Build aggregates sessions into a report with projects and tags sorted by name.
func Build(sessions []*model.Session, opts Options) *Report {
	r := &Report{Exact: opts.Exact, Interval: opts.Interval}
	if len(sessions) == 0 {
		return r
	}

	totals := Aggregate(sessions, !opts.Exact, opts.Interval)
	projects := make([]string, 0, len(totals))
	for name := range totals {
		projects = append(projects, name)
	}
	sort.Strings(projects)

	for _, name := range projects {
		t := totals[name]
		row := ProjectRow{Project: name, Total: t.Total}
		for tag, total := range t.TagTotals {
			row.Tags = append(row.Tags, TagRow{Tag: tag, Total: total})
		}
		sort.Slice(row.Tags, func(i, j int) bool { return row.Tags[i].Tag < row.Tags[j].Tag })

		r.Projects = append(r.Projects, row)
		r.GrandTotal += t.Total
	}

	r.Earliest, r.Latest = sessions[0].Start, sessions[0].End
	for _, s := range sessions[1:] {
		if s.Start.Before(r.Earliest) {
			r.Earliest = s.Start
		}
		if s.End.After(r.Latest) {
			r.Latest = s.End
		}
	}

	if opts.Notes {
		for _, s := range SortByStart(sessions) {
			if s.Note != "" {
				r.Notes = append(r.Notes, s)
			}
		}
	}
	return r
}

// SortByStart returns a copy of sessions ordered by start, then id.
func SortByStart(sessions []*model.Session) []*model.Session {
	out := make([]*model.Session, len(sessions))
	copy(out, sessions)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
