package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/track/internal/errors"
)

func TestParseDateTime(t *testing.T) {
	local := func(y int, mo time.Month, d, h, mi, s int) time.Time {
		return time.Date(y, mo, d, h, mi, s, 0, time.Local)
	}

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"exact_format", "2026-02-23 09:00:00", local(2026, 2, 23, 9, 0, 0)},
		{"exact_format_padded", "  2026-02-23 09:00:00 ", local(2026, 2, 23, 9, 0, 0)},
		{"iso_t_separator", "2026-02-23T09:00:00", local(2026, 2, 23, 9, 0, 0)},
		{"iso_minutes", "2026-02-23T09:00", local(2026, 2, 23, 9, 0, 0)},
		{"space_minutes", "2026-02-23 09:30", local(2026, 2, 23, 9, 30, 0)},
		{"bare_date", "2026-02-23", local(2026, 2, 23, 0, 0, 0)},
		{"utc", "2026-02-23T09:00:00Z", time.Date(2026, 2, 23, 9, 0, 0, 0, time.UTC)},
		{"offset", "2026-02-23T09:00:00+02:00", time.Date(2026, 2, 23, 7, 0, 0, 0, time.UTC)},
		{"basic_offset", "2026-02-23T09:00:00+0100", time.Date(2026, 2, 23, 8, 0, 0, 0, time.UTC)},
		{"basic_offset_space", "2026-02-23 09:00:00-0130", time.Date(2026, 2, 23, 10, 30, 0, 0, time.UTC)},
		{"fraction_basic_offset", "2026-02-23T09:00:00.5+0100", time.Date(2026, 2, 23, 8, 0, 0, 500000000, time.UTC)},
		{"minutes_offset", "2026-02-23T09:00+01:00", time.Date(2026, 2, 23, 8, 0, 0, 0, time.UTC)},
		{"iso_hour_only", "2026-02-23T09", local(2026, 2, 23, 9, 0, 0)},
		{"space_hour_only", "2026-02-23 09", local(2026, 2, 23, 9, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateTime(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %v, got %v", tt.expected, got)
		})
	}
}

func TestParseDateTimeInvalid(t *testing.T) {
	for _, input := range []string{"", "yesterday", "2026-13-01 00:00:00", "23/02/2026"} {
		_, err := ParseDateTime(input)
		require.Error(t, err, input)
		assert.ErrorIs(t, err, errors.ErrInvalidDateTime)

		ue, ok := errors.AsUserError(err)
		require.True(t, ok)
		assert.NotNil(t, ue.Cause, "parse failure should be chained for %q", input)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-02-23")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 23, 0, 0, 0, 0, time.Local), got)

	_, err = ParseDate("2026-02-23 10:00:00")
	assert.ErrorIs(t, err, errors.ErrInvalidDate)

	_, err = ParseDate("02/23/2026")
	assert.ErrorIs(t, err, errors.ErrInvalidDate)
}

func TestDayBounds(t *testing.T) {
	ts := time.Date(2026, 2, 23, 15, 4, 5, 0, time.Local)

	assert.Equal(t, time.Date(2026, 2, 23, 0, 0, 0, 0, time.Local), StartOfDay(ts))
	assert.Equal(t, time.Date(2026, 2, 23, 23, 59, 59, 999999999, time.Local), EndOfDay(ts))
}

func TestParseMoment(t *testing.T) {
	now := time.Date(2026, 2, 23, 12, 0, 0, 0, time.Local)

	t.Run("now", func(t *testing.T) {
		got, err := ParseMoment("now", now)
		require.NoError(t, err)
		assert.Equal(t, now, got)

		got, err = ParseMoment("", now)
		require.NoError(t, err)
		assert.Equal(t, now, got)
	})

	t.Run("exact", func(t *testing.T) {
		got, err := ParseMoment("2026-02-23 09:15:00", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 2, 23, 9, 15, 0, 0, time.Local), got)
	})

	t.Run("relative", func(t *testing.T) {
		got, err := ParseMoment("2 hours ago", now)
		require.NoError(t, err)
		assert.WithinDuration(t, now.Add(-2*time.Hour), got, time.Minute)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseMoment("not a time at all xyz", now)
		assert.ErrorIs(t, err, errors.ErrInvalidDateTime)
	})
}

func TestWeekRange(t *testing.T) {
	monday := time.Date(2026, 2, 23, 0, 0, 0, 0, time.Local)
	sundayEnd := time.Date(2026, 3, 1, 23, 59, 59, 999999999, time.Local)

	tests := []struct {
		name string
		now  time.Time
	}{
		{"monday_midnight", monday},
		{"wednesday", time.Date(2026, 2, 25, 14, 30, 0, 0, time.Local)},
		{"sunday_late", time.Date(2026, 3, 1, 23, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekRange(tt.now)
			assert.Equal(t, monday, start)
			assert.Equal(t, sundayEnd, end)
		})
	}
}
