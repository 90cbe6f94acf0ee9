package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/track/internal/errors"
	"github.com/manav03panchal/track/internal/model"
	"github.com/manav03panchal/track/internal/storage"
)

func at(day, hour, min int) time.Time {
	return time.Date(2026, 2, day, hour, min, 0, 0, time.Local)
}

func session(id, project string, tags []string, start time.Time, d time.Duration) *model.Session {
	return model.NewSession(id, project, tags, "", start, start.Add(d))
}

// 2026-02-23 is a Monday.
func fixture() []*model.Session {
	return []*model.Session{
		session("00000001", "alpha", []string{"dev"}, at(23, 9, 0), 90*time.Minute),
		session("00000002", "beta", nil, at(24, 10, 0), 20*time.Minute),
		session("00000003", "alpha", []string{"dev", "review"}, at(25, 14, 0), 45*time.Minute),
		session("00000004", "alpha", []string{"review"}, at(16, 8, 0), time.Hour),
		session("00000005", "beta", []string{"ops"}, at(22, 23, 0), 30*time.Minute),
	}
}

func ids(sessions []*model.Session) []string {
	out := make([]string, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, s.ID)
	}
	return out
}

// =============================================================================
// Filter Tests
// =============================================================================

func TestFilterSessions(t *testing.T) {
	now := at(25, 18, 0)

	tests := []struct {
		name     string
		filter   Filter
		expected []string
	}{
		{"default_week", Filter{}, []string{"00000001", "00000002", "00000003"}},
		{"all", Filter{All: true}, []string{"00000001", "00000002", "00000003", "00000004", "00000005"}},
		{"project_normalized", Filter{Project: " Alpha ", All: true}, []string{"00000001", "00000003", "00000004"}},
		{"tag", Filter{Tag: "REVIEW", All: true}, []string{"00000003", "00000004"}},
		{"project_and_tag", Filter{Project: "alpha", Tag: "dev"}, []string{"00000001", "00000003"}},
		{"from_only", Filter{From: at(24, 0, 0)}, []string{"00000002", "00000003"}},
		{"to_only", Filter{To: at(22, 23, 59)}, []string{"00000004", "00000005"}},
		{"inclusive_bounds", Filter{From: at(23, 9, 0), To: at(24, 10, 0)}, []string{"00000001", "00000002"}},
		{"no_match", Filter{Project: "gamma", All: true}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(FilterSessions(fixture(), tt.filter, now)))
		})
	}
}

// Ledgers written by older versions or edited by hand may hold names that
// were never normalized.
const unnormalizedBlob = `{"active": null, "sessions": [
  {"id": "0000000a", "project": "My_Project", "tags": ["ABC 123", "abc-123"], "note": null,
   "start": "2026-02-23T09:00:00", "end": "2026-02-23T10:00:00"},
  {"id": "0000000b", "project": "my-project", "tags": ["abc-123"], "note": null,
   "start": "2026-02-24T09:00:00", "end": "2026-02-24T09:30:00"}
]}`

func TestUnnormalizedStoredNames(t *testing.T) {
	l, _, err := storage.Load([]byte(unnormalizedBlob), nil)
	require.NoError(t, err)
	now := at(25, 18, 0)

	t.Run("project_filter", func(t *testing.T) {
		got := FilterSessions(l.Sessions, Filter{Project: "my-project", All: true}, now)
		assert.Equal(t, []string{"0000000a", "0000000b"}, ids(got))
	})

	t.Run("tag_filter", func(t *testing.T) {
		got := FilterSessions(l.Sessions, Filter{Tag: "abc-123", All: true}, now)
		assert.Equal(t, []string{"0000000a", "0000000b"}, ids(got))
	})

	t.Run("aggregate_merges_spellings", func(t *testing.T) {
		totals := Aggregate(l.Sessions, false, 15)
		require.Len(t, totals, 1)
		require.Contains(t, totals, "my-project")
		assert.Equal(t, 90*time.Minute, totals["my-project"].Total)
		assert.Equal(t, map[string]time.Duration{"abc-123": 90 * time.Minute}, totals["my-project"].TagTotals)
	})

	t.Run("report_rows", func(t *testing.T) {
		r := Build(l.Sessions, Options{Exact: true, Interval: 15})
		require.Len(t, r.Projects, 1)
		assert.Equal(t, "my-project", r.Projects[0].Project)
		assert.Equal(t, 90*time.Minute, r.GrandTotal)
	})
}

func TestFilterWeekBoundaries(t *testing.T) {
	sessions := []*model.Session{
		session("00000001", "a", nil, time.Date(2026, 2, 22, 23, 59, 59, 0, time.Local), time.Minute),
		session("00000002", "a", nil, time.Date(2026, 2, 23, 0, 0, 0, 0, time.Local), time.Minute),
		session("00000003", "a", nil, time.Date(2026, 3, 1, 23, 59, 59, 0, time.Local), time.Minute),
		session("00000004", "a", nil, time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local), time.Minute),
	}

	got := FilterSessions(sessions, Filter{}, at(26, 12, 0))
	assert.Equal(t, []string{"00000002", "00000003"}, ids(got))
}

func TestFilterValidate(t *testing.T) {
	assert.NoError(t, Filter{}.Validate())
	assert.NoError(t, Filter{From: at(23, 0, 0), To: at(23, 0, 0)}.Validate())

	err := Filter{From: at(24, 0, 0), To: at(23, 0, 0)}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidDate))
	assert.Equal(t, "--from date must be on or before --to date.", err.Error())
}

func TestCollectKnownNames(t *testing.T) {
	active := model.NewActiveTimer("gamma", []string{"infra"}, "", at(25, 8, 0))

	projects, tags := CollectKnownNames(fixture(), active)

	assert.Len(t, projects, 3)
	assert.Contains(t, projects, "gamma")
	assert.Contains(t, tags, "infra")
	assert.Contains(t, tags, "review")
	assert.NotContains(t, tags, model.UntaggedBucket)

	projects, tags = CollectKnownNames(nil, nil)
	assert.Empty(t, projects)
	assert.Empty(t, tags)
}

// =============================================================================
// Aggregate Tests
// =============================================================================

func TestAggregate(t *testing.T) {
	totals := Aggregate(fixture(), false, 15)

	require.Contains(t, totals, "alpha")
	alpha := totals["alpha"]
	assert.Equal(t, 90*time.Minute+45*time.Minute+time.Hour, alpha.Total)
	assert.Equal(t, 90*time.Minute+45*time.Minute, alpha.TagTotals["dev"])
	assert.Equal(t, 45*time.Minute+time.Hour, alpha.TagTotals["review"])

	beta := totals["beta"]
	assert.Equal(t, 20*time.Minute, beta.TagTotals[model.UntaggedBucket])
	assert.Equal(t, 30*time.Minute, beta.TagTotals["ops"])
}

func TestAggregateRoundsPerSession(t *testing.T) {
	sessions := []*model.Session{
		session("00000001", "alpha", nil, at(23, 9, 0), 7*time.Minute),
		session("00000002", "alpha", nil, at(23, 10, 0), 7*time.Minute),
	}

	assert.Equal(t, time.Duration(0), Aggregate(sessions, true, 15)["alpha"].Total)
	assert.Equal(t, 14*time.Minute, Aggregate(sessions, false, 15)["alpha"].Total)
}

// =============================================================================
// Build Tests
// =============================================================================

func TestBuild(t *testing.T) {
	sessions := FilterSessions(fixture(), Filter{All: true}, at(25, 18, 0))
	sessions[1].Note = "pairing"

	r := Build(sessions, Options{Interval: 15, Notes: true})

	require.Len(t, r.Projects, 2)
	assert.Equal(t, "alpha", r.Projects[0].Project)
	assert.Equal(t, "beta", r.Projects[1].Project)

	alpha := r.Projects[0]
	require.Len(t, alpha.Tags, 2)
	assert.Equal(t, "dev", alpha.Tags[0].Tag)
	assert.Equal(t, "review", alpha.Tags[1].Tag)
	assert.Equal(t, 3*time.Hour+15*time.Minute, alpha.Total)

	beta := r.Projects[1]
	assert.Equal(t, []TagRow{{Tag: model.UntaggedBucket, Total: 15 * time.Minute}, {Tag: "ops", Total: 30 * time.Minute}}, beta.Tags)

	assert.Equal(t, alpha.Total+beta.Total, r.GrandTotal)
	assert.Equal(t, at(16, 8, 0), r.Earliest)
	assert.Equal(t, at(25, 14, 45), r.Latest)
	require.Len(t, r.Notes, 1)
	assert.Equal(t, "00000002", r.Notes[0].ID)
}

func TestBuildExact(t *testing.T) {
	sessions := []*model.Session{session("00000001", "alpha", nil, at(23, 9, 0), 7*time.Minute)}

	assert.Equal(t, 7*time.Minute, Build(sessions, Options{Exact: true, Interval: 15}).GrandTotal)
	assert.Equal(t, time.Duration(0), Build(sessions, Options{Interval: 15}).GrandTotal)
}

func TestBuildEmpty(t *testing.T) {
	r := Build(nil, Options{Interval: 15})
	assert.True(t, r.Empty())
	assert.Zero(t, r.GrandTotal)
}

func TestSortByStart(t *testing.T) {
	start := at(23, 9, 0)
	sessions := []*model.Session{
		session("0000000b", "a", nil, start, time.Minute),
		session("00000009", "a", nil, start.Add(-time.Hour), time.Minute),
		session("0000000a", "a", nil, start, time.Minute),
	}

	assert.Equal(t, []string{"00000009", "0000000a", "0000000b"}, ids(SortByStart(sessions)))
	assert.Equal(t, "0000000b", sessions[0].ID, "input order untouched")
}

// =============================================================================
// Export Tests
// =============================================================================

func TestExportRows(t *testing.T) {
	sessions := []*model.Session{
		session("00000001", "alpha", []string{"dev", "review"}, at(23, 9, 0), 97*time.Minute),
		session("00000002", "beta", nil, at(23, 11, 0), 7*time.Minute+30*time.Second),
	}
	sessions[0].Note = "sprint"

	rows := ExportRows(sessions, 15)
	require.Len(t, rows, 2)

	assert.Equal(t, "00000001", rows[0].ID)
	assert.Equal(t, "dev;review", rows[0].JoinedTags(";"))
	assert.Equal(t, "sprint", rows[0].Note)
	assert.InDelta(t, 1.5, rows[0].SessionTime, 1e-9)

	assert.Equal(t, []string{}, rows[1].Tags)
	assert.Equal(t, "", rows[1].JoinedTags(";"))
	assert.InDelta(t, 0.25, rows[1].SessionTime, 1e-9)
}
