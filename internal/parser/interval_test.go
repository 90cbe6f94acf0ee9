package parser

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoundToInterval(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Duration
		interval int
		expected time.Duration
	}{
		{"midpoint_rounds_up", 7*time.Minute + 30*time.Second, 15, 15 * time.Minute},
		{"just_below_midpoint", 7*time.Minute + 29*time.Second, 15, 0},
		{"on_boundary", 90 * time.Minute, 15, 90 * time.Minute},
		{"above_boundary", 94*time.Minute + 19*time.Second, 15, 90 * time.Minute},
		{"rounds_up_to_next", 108 * time.Minute, 15, 105 * time.Minute},
		{"second_midpoint", 22*time.Minute + 30*time.Second, 15, 30 * time.Minute},
		{"zero", 0, 15, 0},
		{"negative_clamped", -5 * time.Minute, 15, 0},
		{"other_interval", 5 * time.Minute, 10, 10 * time.Minute},
		{"interval_disabled", 7 * time.Minute, 0, 7 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundToInterval(tt.input, tt.interval))
		})
	}
}

func TestFormatHMS(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatHMS(0))
	assert.Equal(t, "01:30:00", FormatHMS(90*time.Minute))
	assert.Equal(t, "01:34:19", FormatHMS(time.Hour+34*time.Minute+19*time.Second+900*time.Millisecond))
	assert.Equal(t, "100:00:01", FormatHMS(100*time.Hour+time.Second))
}

func TestFormatHM(t *testing.T) {
	assert.Equal(t, "00:00", FormatHM(59*time.Second))
	assert.Equal(t, "01:30", FormatHM(90*time.Minute+59*time.Second))
	assert.Equal(t, "25:05", FormatHM(25*time.Hour+5*time.Minute))
}

func TestDecimalHours(t *testing.T) {
	assert.Equal(t, 1.75, DecimalHours(108*time.Minute, 15))
	assert.Equal(t, 1.5, DecimalHours(94*time.Minute+19*time.Second, 15))
	assert.Equal(t, 0.25, DecimalHours(7*time.Minute+30*time.Second, 15))
	assert.Equal(t, 0.0, DecimalHours(7*time.Minute, 15))
}

func TestDecimalHoursRoundTrip(t *testing.T) {
	for secs := 0; secs < 6*3600; secs += 37 {
		d := time.Duration(secs) * time.Second
		rounded := RoundToInterval(d, DefaultIntervalMinutes)
		minutes := math.Round(DecimalHours(d, DefaultIntervalMinutes) * 60)
		assert.Equal(t, rounded, time.Duration(minutes)*time.Minute, "duration %s", d)
	}
}
