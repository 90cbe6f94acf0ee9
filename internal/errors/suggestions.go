package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Suggestions maps error kinds to helpful suggestions.
var Suggestions = map[error]string{
	ErrInvalidName:          "Use lowercase letters, numbers, and hyphens only (for example: my-project, abc-123).",
	ErrInvalidDateTime:      "Use 'YYYY-MM-DD HH:MM:SS' or an ISO-8601 timestamp.",
	ErrInvalidDate:          "Use 'YYYY-MM-DD'.",
	ErrInvalidDuration:      "Try formats like '30 minutes', '1.5 hours', '45m', or '2h'.",
	ErrTimeOrderViolation:   "Check your timestamps: the end must not come before the start.",
	ErrNoActiveTimer:        "Use 'track start --project <name>' to begin tracking.",
	ErrDuplicateActiveTimer: "Stop the running timer with 'track stop' before starting a new one.",
	ErrSessionNotFound:      "Use 'track sessions' to see session ids, projects, and tags.",
	ErrCorruptLedger:        "Inspect the data file manually (see TRACK_DATA_FILE) or restore it from a backup.",
	ErrDiskFull:             "Free up disk space and try again.",
	ErrLockHeld:             "Another track command is running. Wait for it to finish or remove a stale lock file.",
	ErrPermissionDenied:     "Check file permissions of the data file and its directory.",
	ErrInvalidConfig:        "Check your config file and TRACK_* environment variables.",
	ErrInvalidArgs:          "Run the command with --help to see its flags.",
}

// suggestionOrder fixes the lookup order for errors matching several kinds.
var suggestionOrder = []error{
	ErrCorruptLedger,
	ErrDiskFull,
	ErrPermissionDenied,
	ErrLockHeld,
	ErrInvalidName,
	ErrNameTooClose,
	ErrInvalidDateTime,
	ErrInvalidDate,
	ErrInvalidDuration,
	ErrTimeOrderViolation,
	ErrNoActiveTimer,
	ErrDuplicateActiveTimer,
	ErrSessionNotFound,
	ErrInvalidConfig,
	ErrInvalidArgs,
}

// GetSuggestion returns a suggestion for an error, if available.
// A UserError's own suggestion wins over the generic one for its kind.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	if ue, ok := AsUserError(err); ok {
		if ue.Suggestion != "" {
			return ue.Suggestion
		}
		return Suggestions[ue.Kind]
	}
	if se, ok := AsSystemError(err); ok && se.Kind != nil {
		return Suggestions[se.Kind]
	}

	for _, knownErr := range suggestionOrder {
		if errors.Is(err, knownErr) {
			return Suggestions[knownErr]
		}
	}

	return ""
}

// FormatUserError formats an error for display to the user.
func FormatUserError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}

// FormatDebugError formats an error with the chain, category, and root cause.
func FormatDebugError(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(FormatUserError(err))
	sb.WriteString("\n")

	if chain := Chain(err); len(chain) > 1 {
		sb.WriteString("\nError chain:\n")
		for i, msg := range chain {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, msg))
		}
	}

	sb.WriteString(fmt.Sprintf("\nCategory: %s\n", Classify(err)))

	if root := RootCause(err); root != err {
		sb.WriteString(fmt.Sprintf("Root cause: %v\n", root))
	}

	return sb.String()
}
