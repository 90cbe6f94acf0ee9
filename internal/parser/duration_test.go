package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/track/internal/errors"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		valid    bool
	}{
		// Hour formats
		{"hours_h", "2h", 2 * time.Hour, true},
		{"hours_hr", "2hr", 2 * time.Hour, true},
		{"hours_hrs", "2hrs", 2 * time.Hour, true},
		{"hours_hour", "2 hour", 2 * time.Hour, true},
		{"hours_hours", "2 hours", 2 * time.Hour, true},
		{"hours_uppercase", "2 HOURS", 2 * time.Hour, true},

		// Minute formats
		{"minutes_m", "30m", 30 * time.Minute, true},
		{"minutes_min", "30min", 30 * time.Minute, true},
		{"minutes_mins", "30 mins", 30 * time.Minute, true},
		{"minutes_minutes", "30 minutes", 1800 * time.Second, true},

		// Second formats
		{"seconds_s", "45s", 45 * time.Second, true},
		{"seconds_sec", "45 sec", 45 * time.Second, true},
		{"seconds_seconds", "45 seconds", 45 * time.Second, true},

		// Decimal values
		{"decimal_hours", "1.5h", 5400 * time.Second, true},
		{"decimal_minutes", "1.5m", 90 * time.Second, true},
		{"decimal_hours_words", "1.5 hours", 90 * time.Minute, true},

		// Bare numbers are hours
		{"number_only", "2", 2 * time.Hour, true},
		{"decimal_number", "1.5", 90 * time.Minute, true},

		// Compound
		{"compound", "1h30m", 90 * time.Minute, true},
		{"compound_spaced", "1h 30m", 90 * time.Minute, true},
		{"compound_words", "1 hour 30 minutes", 90 * time.Minute, true},
		{"compound_seconds", "2h30m15s", 2*time.Hour + 30*time.Minute + 15*time.Second, true},

		// Invalid
		{"empty_string", "", 0, false},
		{"whitespace_only", "   ", 0, false},
		{"invalid_format", "abc", 0, false},
		{"unknown_unit", "3 days", 0, false},
		{"zero", "0", 0, false},
		{"zero_minutes", "0m", 0, false},
		{"negative", "-1h", 0, false},
		{"trailing_garbage", "1h foo", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDuration(tt.input)
			if !tt.valid {
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrInvalidDuration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestParseDurationErrorCarriesCause(t *testing.T) {
	_, err := ParseDuration("abc")
	require.Error(t, err)

	ue, ok := errors.AsUserError(err)
	require.True(t, ok)
	assert.Equal(t, "abc", ue.Value)
	assert.NotNil(t, ue.Cause)
	assert.Contains(t, ue.Suggestion, "30 minutes")
}
