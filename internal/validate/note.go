// Package validate cleans and checks free-text input before it reaches the
// ledger.
package validate

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/manav03panchal/track/internal/errors"
)

// MaxNoteLength is the maximum length of a session note, in runes.
const MaxNoteLength = 4096

// SanitizeNote trims a note, normalizes line endings to \n and removes
// control characters other than newline and tab.
func SanitizeNote(note string) string {
	note = strings.ReplaceAll(note, "\r\n", "\n")
	note = strings.ReplaceAll(note, "\r", "\n")

	var sb strings.Builder
	sb.Grow(len(note))
	for _, r := range note {
		if !unicode.IsControl(r) || r == '\n' || r == '\t' {
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}

// Note sanitizes a note and rejects it when it is too long.
func Note(note string) (string, error) {
	clean := SanitizeNote(note)
	if utf8.RuneCountInString(clean) > MaxNoteLength {
		return "", errors.NewUserError(
			errors.ErrInvalidArgs,
			"Note too long.",
			fmt.Sprintf("Notes must be %d characters or fewer.", MaxNoteLength),
		)
	}
	return clean, nil
}
