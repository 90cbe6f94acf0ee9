// Package errors provides consistent error types for the track CLI.
// Every failure the ledger can raise has a sentinel kind; user-facing errors
// carry a message, a suggestion, and optionally the low-level cause that
// triggered them so it can be shown with --debug.
package errors

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the ledger.
var (
	ErrInvalidName          = errors.New("invalid name")
	ErrNameTooClose         = errors.New("name too close to an existing name")
	ErrInvalidDateTime      = errors.New("invalid datetime")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidDuration      = errors.New("invalid duration")
	ErrTimeOrderViolation   = errors.New("end time is before start time")
	ErrNoActiveTimer        = errors.New("no active timer")
	ErrDuplicateActiveTimer = errors.New("a timer is already running")
	ErrCorruptLedger        = errors.New("ledger data is corrupt")
	ErrSessionNotFound      = errors.New("session not found")
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrInvalidArgs          = errors.New("invalid arguments")

	// Storage-level conditions.
	ErrDiskFull         = errors.New("disk full")
	ErrLockHeld         = errors.New("ledger locked by another process")
	ErrPermissionDenied = errors.New("permission denied")
)

// UserError represents an error that the user can fix.
type UserError struct {
	Kind       error  // One of the Err* sentinels
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The input that caused the error (optional)
	Value      string // The invalid value (optional)
	Cause      error  // Low-level failure, kept for diagnostics
}

func (e *UserError) Error() string {
	msg := e.Message
	if e.Field != "" && e.Value != "" {
		msg = fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return msg
}

// Is reports whether target is the kind of this error.
func (e *UserError) Is(target error) bool {
	return e.Kind != nil && e.Kind == target
}

func (e *UserError) Unwrap() error {
	return e.Cause
}

// NewUserError creates a new UserError of the given kind.
func NewUserError(kind error, message, suggestion string) *UserError {
	return &UserError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewUserErrorWithField creates a new UserError with field context.
func NewUserErrorWithField(kind error, field, value, message, suggestion string) *UserError {
	return &UserError{
		Kind:       kind,
		Message:    message,
		Field:      field,
		Value:      value,
		Suggestion: suggestion,
	}
}

// WithCause attaches the low-level failure and returns the same error.
func (e *UserError) WithCause(cause error) *UserError {
	e.Cause = cause
	return e
}

// SystemError represents a system-level error that the user cannot directly fix.
type SystemError struct {
	Kind    error  // Optional sentinel kind
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed (optional)
}

func (e *SystemError) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = fmt.Sprintf("%s during %s", e.Message, e.Op)
	}
	if e.Cause != nil && e.Cause != e.Kind {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Is reports whether target is the kind of this error.
func (e *SystemError) Is(target error) bool {
	return e.Kind != nil && e.Kind == target
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// NewSystemError creates a new SystemError.
func NewSystemError(message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
	}
}

// NewSystemErrorWithOp creates a new SystemError with operation context.
func NewSystemErrorWithOp(op, message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
		Op:      op,
	}
}

// CorruptLedger reports structurally invalid ledger content.
func CorruptLedger(detail string, cause error) *SystemError {
	return &SystemError{
		Kind:    ErrCorruptLedger,
		Message: "ledger data is corrupt: " + detail,
		Cause:   cause,
	}
}

// IsUserError checks if an error is a UserError.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

// IsSystemError checks if an error is a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// AsUserError extracts a UserError from an error chain.
func AsUserError(err error) (*UserError, bool) {
	var ue *UserError
	ok := errors.As(err, &ue)
	return ue, ok
}

// AsSystemError extracts a SystemError from an error chain.
func AsSystemError(err error) (*SystemError, bool) {
	var se *SystemError
	ok := errors.As(err, &se)
	return se, ok
}

// Is is re-exported from the standard errors package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is re-exported from the standard errors package.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
