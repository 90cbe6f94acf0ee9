// Package naming canonicalizes and validates project and tag names and
// guards against near-duplicate names that are probably typos.
package naming

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/manav03panchal/track/internal/errors"
)

// Kinds of names accepted by Validate.
const (
	KindProject = "project"
	KindTag     = "tag"
)

var (
	// namePattern is the canonical name format: lowercase alphanumerics and hyphens.
	namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

	separatorRun = regexp.MustCompile(`[\s_]+`)
	hyphenRun    = regexp.MustCompile(`-+`)
)

// Normalize converts free text into a canonical kebab-case name.
// Example: "  My_Client  Project " -> "my-client-project"
func Normalize(raw string) string {
	result := strings.ToLower(strings.TrimSpace(raw))
	result = separatorRun.ReplaceAllString(result, "-")
	result = hyphenRun.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Validate checks that a canonical name matches the name pattern.
func Validate(kind, name string) error {
	if name != "" && namePattern.MatchString(name) {
		return nil
	}
	return errors.NewUserErrorWithField(
		errors.ErrInvalidName,
		kind,
		name,
		fmt.Sprintf("Invalid %s", kind),
		"Use lowercase letters, numbers, and hyphens only (for example: my-project, abc-123).",
	)
}

// NormalizeAll normalizes and validates names, dropping duplicates while
// keeping first-seen order.
func NormalizeAll(kind string, raw []string) ([]string, error) {
	seen := make(map[string]struct{}, len(raw))
	result := make([]string, 0, len(raw))
	for _, r := range raw {
		name := Normalize(r)
		if err := Validate(kind, name); err != nil {
			return nil, err
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	return result, nil
}

// Dedupe removes repeated names, keeping first-seen order.
func Dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		result = append(result, n)
	}
	return result
}
