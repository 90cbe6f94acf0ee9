package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Session Tests
// =============================================================================

func TestNewSessionTruncatesToSeconds(t *testing.T) {
	start := time.Date(2024, 3, 4, 9, 0, 0, 750_000_000, time.UTC)
	end := start.Add(90 * time.Minute)

	s := NewSession("0a1b2c3d", "alpha", []string{"dev"}, "", start, end)

	assert.Equal(t, 0, s.Start.Nanosecond())
	assert.Equal(t, 0, s.End.Nanosecond())
	assert.Equal(t, 90*time.Minute, s.Duration())
}

func TestSessionHasTag(t *testing.T) {
	s := &Session{Tags: []string{"dev", "review"}}

	assert.True(t, s.HasTag("dev"))
	assert.True(t, s.HasTag("review"))
	assert.False(t, s.HasTag("Dev"))
	assert.False(t, s.HasTag(""))
	assert.False(t, (&Session{}).HasTag("dev"))
	assert.True(t, (&Session{}).IsUntagged())
}

// =============================================================================
// ActiveTimer Tests
// =============================================================================

func TestActiveTimerClose(t *testing.T) {
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)
	timer := NewActiveTimer("alpha", []string{"dev"}, "standup", start)

	assert.Equal(t, 30*time.Minute, timer.Elapsed(start.Add(30*time.Minute)))

	s := timer.Close("deadbeef", start.Add(time.Hour))
	assert.Equal(t, "deadbeef", s.ID)
	assert.Equal(t, "alpha", s.Project)
	assert.Equal(t, []string{"dev"}, s.Tags)
	assert.Equal(t, "standup", s.Note)
	assert.Equal(t, time.Hour, s.Duration())
}

// =============================================================================
// Ledger Tests
// =============================================================================

func TestNewLedger(t *testing.T) {
	l := NewLedger()
	assert.False(t, l.IsTracking())
	assert.NotNil(t, l.Sessions)
	assert.Empty(t, l.Sessions)
}

func TestLedgerFindByID(t *testing.T) {
	l := &Ledger{Sessions: []*Session{{ID: "00000001"}, {ID: "00000002"}}}

	require.NotNil(t, l.FindByID("00000002"))
	assert.Nil(t, l.FindByID("ffffffff"))
	assert.Len(t, l.IDs(), 2)
}

func TestLedgerRemoveWhere(t *testing.T) {
	l := &Ledger{Sessions: []*Session{
		{ID: "00000001", Project: "a"},
		{ID: "00000002", Project: "b"},
		{ID: "00000003", Project: "a"},
		{ID: "00000004", Project: "c"},
	}}

	removed := l.RemoveWhere(func(s *Session) bool { return s.Project == "a" })

	assert.Equal(t, 2, removed)
	require.Len(t, l.Sessions, 2)
	assert.Equal(t, "00000002", l.Sessions[0].ID)
	assert.Equal(t, "00000004", l.Sessions[1].ID)
}
