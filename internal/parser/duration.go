// Package parser parses durations and timestamps and performs the duration
// arithmetic used by reports and exports.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const durationUnits = `hours|hour|hrs|hr|h|minutes|minute|mins|min|m|seconds|second|secs|sec|s`

var (
	// bareHoursPattern matches a decimal number of hours such as "1.5".
	bareHoursPattern = regexp.MustCompile(`^\d+(?:\.\d+)?$`)

	// durationPattern matches one or more magnitude+unit terms: "2h", "30 minutes", "1h 30m".
	durationPattern = regexp.MustCompile(`^(?:\d+(?:\.\d+)?\s*(?:` + durationUnits + `)\s*)+$`)

	// durationTerm extracts each magnitude+unit term.
	durationTerm = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(` + durationUnits + `)`)
)

// ParseDuration parses a human-readable duration string.
// Supports formats like:
//   - "1.5" (bare hours)
//   - "2h", "2hr", "2 hours"
//   - "30m", "30 min", "30 minutes"
//   - "45s", "45 seconds"
//   - "1h30m" or "1h 30m"
//
// The result must be positive.
func ParseDuration(input string) (time.Duration, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return 0, NewDurationError(input, fmt.Errorf("empty duration"))
	}

	var total time.Duration
	switch {
	case bareHoursPattern.MatchString(normalized):
		value, err := strconv.ParseFloat(normalized, 64)
		if err != nil {
			return 0, NewDurationError(input, err)
		}
		total = unitToDuration(value, "h")

	case durationPattern.MatchString(normalized):
		for _, m := range durationTerm.FindAllStringSubmatch(normalized, -1) {
			value, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return 0, NewDurationError(input, err)
			}
			total += unitToDuration(value, m[2])
		}

	default:
		return 0, NewDurationError(input, fmt.Errorf("unrecognized duration format"))
	}

	if total <= 0 {
		return 0, NewDurationError(input, fmt.Errorf("duration must be positive"))
	}
	return total, nil
}

// unitToDuration converts a value and unit to a duration.
func unitToDuration(value float64, unit string) time.Duration {
	switch unit {
	case "m", "min", "mins", "minute", "minutes":
		return time.Duration(value * float64(time.Minute))
	case "s", "sec", "secs", "second", "seconds":
		return time.Duration(value * float64(time.Second))
	default:
		return time.Duration(value * float64(time.Hour))
	}
}
