package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// DateTimeLayout is the preferred input and display format for timestamps.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateLayout is the format of report range bounds.
const DateLayout = "2006-01-02"

// zonedLayouts carry an explicit offset, extended (+01:00) or basic (+0100).
// time.Parse accepts a fraction after the seconds field without a layout of its own.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
}

// localLayouts are ISO-8601 forms without an offset; they are read in local time.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02T15",
	"2006-01-02 15",
	DateLayout,
}

// ParseDateTime parses "YYYY-MM-DD HH:MM:SS" in local time, falling back to
// ISO-8601 forms. The last underlying parse error is chained on failure.
func ParseDateTime(input string) (time.Time, error) {
	text := strings.TrimSpace(input)

	t, err := time.ParseInLocation(DateTimeLayout, text, time.Local)
	if err == nil {
		return t, nil
	}

	lastErr := err
	for _, layout := range zonedLayouts {
		t, err := time.Parse(layout, text)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	for _, layout := range localLayouts {
		t, err := time.ParseInLocation(layout, text, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}

	return time.Time{}, NewDateTimeError(input, lastErr)
}

// ParseDate parses a bare "YYYY-MM-DD" as local midnight.
func ParseDate(input string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(input), time.Local)
	if err != nil {
		return time.Time{}, NewDateError(input, err)
	}
	return t, nil
}

// ParseMoment parses an explicit datetime or a natural-language expression
// such as "2 hours ago" or "yesterday 9am", relative to now.
func ParseMoment(input string, now time.Time) (time.Time, error) {
	text := strings.TrimSpace(input)
	if text == "" || strings.EqualFold(text, "now") {
		return now, nil
	}

	if t, err := ParseDateTime(text); err == nil {
		return t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, text)
	if err != nil {
		return time.Time{}, NewMomentError(input, err)
	}
	if result.Time.IsZero() {
		return time.Time{}, NewMomentError(input, nil)
	}
	return result.Time, nil
}

// StartOfDay returns local midnight of t's day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// WeekRange returns Monday 00:00 through Sunday 23:59:59.999999999 of the
// week containing now.
func WeekRange(now time.Time) (time.Time, time.Time) {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	start := StartOfDay(now).AddDate(0, 0, 1-weekday)
	end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return start, end
}
