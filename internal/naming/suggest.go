package naming

import (
	"sort"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultCutoff is the minimum similarity for a known name to be considered
// the likely target of a typo.
const DefaultCutoff = 0.84

// Matcher scores the similarity of two names in [0, 1].
type Matcher interface {
	Ratio(a, b string) float64
}

// DifflibMatcher scores names with a SequenceMatcher ratio over runes.
type DifflibMatcher struct{}

// Ratio returns 2*M/T where M is the number of matched runes and T the total
// rune count of both names.
func (DifflibMatcher) Ratio(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	return difflib.NewMatcher(splitRunes(a), splitRunes(b)).Ratio()
}

func splitRunes(s string) []string {
	parts := make([]string, 0, len(s))
	for _, r := range s {
		parts = append(parts, string(r))
	}
	return parts
}

// Suggester finds the known name closest to a candidate.
type Suggester struct {
	Matcher Matcher
	Cutoff  float64
}

// NewSuggester returns a Suggester using DifflibMatcher and the given cutoff.
// A non-positive cutoff selects DefaultCutoff.
func NewSuggester(cutoff float64) *Suggester {
	if cutoff <= 0 {
		cutoff = DefaultCutoff
	}
	return &Suggester{Matcher: DifflibMatcher{}, Cutoff: cutoff}
}

// SuggestClosest returns the known name most similar to candidate when its
// ratio reaches the cutoff. Nothing is returned when candidate is already
// known. Known names are scanned in lexicographic order and only a strictly
// higher ratio replaces the current best, so ties go to the smallest name.
func (s *Suggester) SuggestClosest(candidate string, known map[string]struct{}) (string, bool) {
	if len(known) == 0 {
		return "", false
	}
	if _, ok := known[candidate]; ok {
		return "", false
	}

	names := make([]string, 0, len(known))
	for name := range known {
		names = append(names, name)
	}
	sort.Strings(names)

	matcher := s.Matcher
	if matcher == nil {
		matcher = DifflibMatcher{}
	}

	best, bestRatio := "", -1.0
	for _, name := range names {
		ratio := matcher.Ratio(candidate, name)
		if ratio < s.Cutoff {
			continue
		}
		if ratio > bestRatio {
			best, bestRatio = name, ratio
		}
	}
	return best, best != ""
}
