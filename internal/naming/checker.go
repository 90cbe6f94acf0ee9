package naming

import (
	"fmt"

	"github.com/manav03panchal/track/internal/errors"
)

// Checker normalizes user-supplied names and rejects near-duplicates of
// names already present in the ledger.
type Checker struct {
	Suggester *Suggester
	// SuggestTags enables the typo check for tags. Projects are always checked.
	SuggestTags bool
}

// NewChecker creates a checker with the default matcher.
func NewChecker(cutoff float64, suggestTags bool) *Checker {
	return &Checker{Suggester: NewSuggester(cutoff), SuggestTags: suggestTags}
}

// Project returns the canonical project name for raw. Unless force is set, a
// new name that is close to a known project fails with ErrNameTooClose.
func (c *Checker) Project(raw string, known map[string]struct{}, force bool) (string, error) {
	project := Normalize(raw)
	if err := Validate(KindProject, project); err != nil {
		return "", err
	}
	if force {
		return project, nil
	}
	if err := c.checkClose(KindProject, project, known, "--force-new-project"); err != nil {
		return "", err
	}
	return project, nil
}

// Tags returns the canonical, de-duplicated tags for raw in input order.
func (c *Checker) Tags(raw []string, known map[string]struct{}, force bool) ([]string, error) {
	tags, err := NormalizeAll(KindTag, raw)
	if err != nil {
		return nil, err
	}
	if !c.SuggestTags || force {
		return tags, nil
	}
	for _, tag := range tags {
		if err := c.checkClose(KindTag, tag, known, "--force-new-tag"); err != nil {
			return nil, err
		}
	}
	return tags, nil
}

func (c *Checker) checkClose(kind, name string, known map[string]struct{}, flag string) error {
	suggestion, ok := c.Suggester.SuggestClosest(name, known)
	if !ok {
		return nil
	}
	return errors.NewUserError(
		errors.ErrNameTooClose,
		fmt.Sprintf("%s '%s' is close to existing %s '%s'.", capitalize(kind), name, kind, suggestion),
		fmt.Sprintf("Use %s to create it anyway.", flag),
	)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
