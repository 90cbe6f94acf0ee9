package parser

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/track/internal/errors"
)

// DurationExamples provides example duration formats.
var DurationExamples = []string{
	"30 minutes",
	"1.5 hours",
	"45m",
	"2h",
	"1h30m",
}

// DateTimeExamples provides example datetime formats.
var DateTimeExamples = []string{
	"2026-02-23 09:00:00",
	"2026-02-23T09:00:00",
	"2026-02-23T09:00:00+01:00",
}

// MomentExamples provides example formats accepted by --at.
var MomentExamples = []string{
	"2026-02-23 09:00:00",
	"9am",
	"2 hours ago",
	"yesterday at 3pm",
}

// NewDurationError creates an InvalidDuration error with standard examples.
func NewDurationError(input string, cause error) *errors.UserError {
	return errors.NewUserErrorWithField(
		errors.ErrInvalidDuration,
		"duration",
		input,
		"Invalid duration",
		"Examples: "+quoteAll(DurationExamples),
	).WithCause(cause)
}

// NewDateTimeError creates an InvalidDateTime error chaining the last parse failure.
func NewDateTimeError(input string, cause error) *errors.UserError {
	return errors.NewUserErrorWithField(
		errors.ErrInvalidDateTime,
		"datetime",
		input,
		"Invalid datetime",
		fmt.Sprintf("Use '%s' or ISO-8601 format.", "YYYY-MM-DD HH:MM:SS"),
	).WithCause(cause)
}

// NewMomentError creates an InvalidDateTime error for natural-language input.
func NewMomentError(input string, cause error) *errors.UserError {
	return errors.NewUserErrorWithField(
		errors.ErrInvalidDateTime,
		"time",
		input,
		"Invalid time",
		"Examples: "+quoteAll(MomentExamples),
	).WithCause(cause)
}

// NewDateError creates an InvalidDate error chaining the parse failure.
func NewDateError(input string, cause error) *errors.UserError {
	return errors.NewUserErrorWithField(
		errors.ErrInvalidDate,
		"date",
		input,
		"Invalid date",
		"Use 'YYYY-MM-DD'.",
	).WithCause(cause)
}

func quoteAll(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "'" + item + "'"
	}
	return strings.Join(quoted, ", ")
}
