package errors

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// UserError Tests
// =============================================================================

func TestNewUserError(t *testing.T) {
	err := NewUserError(ErrNoActiveTimer, "no active timer", "start one")
	require.NotNil(t, err)
	assert.Equal(t, ErrNoActiveTimer, err.Kind)
	assert.Equal(t, "no active timer", err.Message)
	assert.Equal(t, "start one", err.Suggestion)
}

func TestNewUserErrorWithField(t *testing.T) {
	err := NewUserErrorWithField(ErrInvalidDuration, "time", "abc", "invalid duration", "")
	assert.Equal(t, "time", err.Field)
	assert.Equal(t, "abc", err.Value)
	assert.Equal(t, "invalid duration: 'abc'", err.Error())
}

func TestUserErrorError(t *testing.T) {
	t.Run("without_field", func(t *testing.T) {
		err := NewUserError(ErrInvalidName, "invalid project", "")
		assert.Equal(t, "invalid project", err.Error())
	})

	t.Run("field_without_value", func(t *testing.T) {
		err := NewUserErrorWithField(ErrInvalidName, "project", "", "invalid project", "")
		assert.Equal(t, "invalid project", err.Error())
	})
}

func TestUserErrorKindMatching(t *testing.T) {
	err := NewUserError(ErrSessionNotFound, "no sessions matched", "")

	assert.True(t, errors.Is(err, ErrSessionNotFound))
	assert.False(t, errors.Is(err, ErrInvalidName))

	wrapped := fmt.Errorf("delete: %w", err)
	assert.True(t, errors.Is(wrapped, ErrSessionNotFound))
}

func TestUserErrorWithCause(t *testing.T) {
	cause := errors.New("parsing time \"x\"")
	err := NewUserError(ErrInvalidDateTime, "invalid datetime", "").WithCause(cause)

	assert.True(t, errors.Is(err, ErrInvalidDateTime))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestIsUserError(t *testing.T) {
	t.Run("user_error", func(t *testing.T) {
		assert.True(t, IsUserError(NewUserError(ErrInvalidName, "x", "")))
	})

	t.Run("wrapped_user_error", func(t *testing.T) {
		wrapped := fmt.Errorf("context: %w", NewUserError(ErrInvalidName, "x", ""))
		assert.True(t, IsUserError(wrapped))
	})

	t.Run("not_user_error", func(t *testing.T) {
		assert.False(t, IsUserError(errors.New("plain error")))
	})

	t.Run("nil_error", func(t *testing.T) {
		assert.False(t, IsUserError(nil))
	})
}

func TestAsUserError(t *testing.T) {
	ue, ok := AsUserError(fmt.Errorf("ctx: %w", NewUserError(ErrNameTooClose, "close", "use --force-new-project")))
	require.True(t, ok)
	assert.Equal(t, "use --force-new-project", ue.Suggestion)

	_, ok = AsUserError(errors.New("plain"))
	assert.False(t, ok)
}

// =============================================================================
// SystemError Tests
// =============================================================================

func TestSystemErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *SystemError
		expected string
	}{
		{
			name:     "message_only",
			err:      NewSystemError("failed to read ledger", nil),
			expected: "failed to read ledger",
		},
		{
			name:     "with_cause",
			err:      NewSystemError("failed to read ledger", errors.New("EOF")),
			expected: "failed to read ledger: EOF",
		},
		{
			name:     "with_op",
			err:      NewSystemErrorWithOp("save", "write failed", errors.New("no space")),
			expected: "write failed during save: no space",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestCorruptLedger(t *testing.T) {
	cause := errors.New("unexpected token")
	err := CorruptLedger("sessions must be an array", cause)

	assert.True(t, errors.Is(err, ErrCorruptLedger))
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsSystemError(err))
	assert.Contains(t, err.Error(), "sessions must be an array")
}

// =============================================================================
// Classification Tests
// =============================================================================

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Category
	}{
		{"nil", nil, CategoryUnknown},
		{"user", NewUserError(ErrInvalidDuration, "bad", ""), CategoryUser},
		{"system", NewSystemError("io", errors.New("x")), CategorySystem},
		{"corrupt", CorruptLedger("bad", nil), CategorySystem},
		{"disk_full_sentinel", fmt.Errorf("write: %w", ErrDiskFull), CategorySystem},
		{"errno", fmt.Errorf("open: %w", syscall.EACCES), CategorySystem},
		{"plain", errors.New("something"), CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.err))
		})
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "user", CategoryUser.String())
	assert.Equal(t, "system", CategorySystem.String())
	assert.Equal(t, "unknown", CategoryUnknown.String())
}

func TestChainAndRootCause(t *testing.T) {
	root := errors.New("root")
	err := Wrap(Wrapf(root, "level %d", 1), "level 2")

	chain := Chain(err)
	require.Len(t, chain, 3)
	assert.Equal(t, "level 2: level 1: root", chain[0])
	assert.Equal(t, root, RootCause(err))
	assert.Nil(t, Wrap(nil, "ignored"))
}

// =============================================================================
// Formatting Tests
// =============================================================================

func TestGetSuggestion(t *testing.T) {
	t.Run("own_suggestion_wins", func(t *testing.T) {
		err := NewUserError(ErrNameTooClose, "close", "custom hint")
		assert.Equal(t, "custom hint", GetSuggestion(err))
	})

	t.Run("falls_back_to_kind", func(t *testing.T) {
		err := NewUserError(ErrNoActiveTimer, "no active timer", "")
		assert.Equal(t, Suggestions[ErrNoActiveTimer], GetSuggestion(err))
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Empty(t, GetSuggestion(errors.New("plain")))
		assert.Empty(t, GetSuggestion(nil))
	})
}

func TestFormatUserError(t *testing.T) {
	err := NewUserError(ErrDuplicateActiveTimer, "a timer is already running", "")
	out := FormatUserError(err)
	assert.Contains(t, out, "a timer is already running")
	assert.Contains(t, out, "track stop")
	assert.Empty(t, FormatUserError(nil))
}

func TestFormatDebugError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewSystemErrorWithOp("save", "could not write ledger", cause)
	out := FormatDebugError(err)

	assert.Contains(t, out, "Error chain:")
	assert.Contains(t, out, "Category: system")
	assert.Contains(t, out, "Root cause: permission denied")
}
