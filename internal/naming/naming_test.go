package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/track/internal/errors"
)

func set(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

// =============================================================================
// Normalize / Validate Tests
// =============================================================================

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already_canonical", "my-project", "my-project"},
		{"uppercase", "My Project", "my-project"},
		{"underscore", "ABC_123", "abc-123"},
		{"whitespace_run", "a \t  b", "a-b"},
		{"mixed_separators", "a _ - b", "a-b"},
		{"hyphen_run", "a---b", "a-b"},
		{"leading_trailing", "  -alpha- ", "alpha"},
		{"only_separators", " _- ", ""},
		{"empty", "", ""},
		{"keeps_other_chars", "a@b", "a@b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"My Project", "__x__", "A  -  B", "--", "tag_1 2", "Ünïcode Name", "a b"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestValidate(t *testing.T) {
	valid := []string{"a", "0", "my-project", "abc-123", "a-"}
	for _, name := range valid {
		assert.NoError(t, Validate(KindProject, name), name)
	}

	invalid := []string{"", "-a", "My", "a_b", "a b", "a@b"}
	for _, name := range invalid {
		err := Validate(KindTag, name)
		require.Error(t, err, name)
		assert.ErrorIs(t, err, errors.ErrInvalidName)
		assert.Contains(t, err.Error(), "Invalid tag")
	}
}

func TestValidateAfterNormalize(t *testing.T) {
	// Names built from letters, digits, and separators validate iff they
	// contain at least one alphanumeric character.
	tests := []struct {
		input string
		valid bool
	}{
		{"Project One", true},
		{"_x_", true},
		{"  9 ", true},
		{"__", false},
		{" - ", false},
		{"", false},
	}

	for _, tt := range tests {
		err := Validate(KindProject, Normalize(tt.input))
		assert.Equal(t, tt.valid, err == nil, "input %q", tt.input)
	}
}

func TestNormalizeAll(t *testing.T) {
	tags, err := NormalizeAll(KindTag, []string{"Dev", "review", "DEV", "code_review"})
	require.NoError(t, err)
	assert.Equal(t, []string{"dev", "review", "code-review"}, tags)

	_, err = NormalizeAll(KindTag, []string{"ok", "__"})
	assert.ErrorIs(t, err, errors.ErrInvalidName)
}

// =============================================================================
// Suggester Tests
// =============================================================================

type fixedMatcher map[string]float64

func (m fixedMatcher) Ratio(_, b string) float64 { return m[b] }

func TestSuggestClosest(t *testing.T) {
	s := NewSuggester(0)
	assert.Equal(t, DefaultCutoff, s.Cutoff)

	t.Run("typo", func(t *testing.T) {
		got, ok := s.SuggestClosest("myproject2", set("myproject", "other"))
		require.True(t, ok)
		assert.Equal(t, "myproject", got)
	})

	t.Run("exact_match_suggests_nothing", func(t *testing.T) {
		_, ok := s.SuggestClosest("myproject", set("myproject", "myproject2"))
		assert.False(t, ok)
	})

	t.Run("below_cutoff", func(t *testing.T) {
		_, ok := s.SuggestClosest("website", set("backend", "mobile"))
		assert.False(t, ok)
	})

	t.Run("empty_known", func(t *testing.T) {
		_, ok := s.SuggestClosest("anything", nil)
		assert.False(t, ok)
	})
}

func TestSuggestClosestTieBreak(t *testing.T) {
	s := &Suggester{
		Matcher: fixedMatcher{"zeta": 0.9, "alpha": 0.9, "beta": 0.85},
		Cutoff:  0.84,
	}
	got, ok := s.SuggestClosest("x", set("zeta", "beta", "alpha"))
	require.True(t, ok)
	assert.Equal(t, "alpha", got)
}

func TestSuggestClosestPrefersHigherRatio(t *testing.T) {
	s := &Suggester{
		Matcher: fixedMatcher{"alpha": 0.85, "beta": 0.95},
		Cutoff:  0.84,
	}
	got, ok := s.SuggestClosest("x", set("alpha", "beta"))
	require.True(t, ok)
	assert.Equal(t, "beta", got)
}

func TestDifflibMatcherRatio(t *testing.T) {
	m := DifflibMatcher{}
	assert.InDelta(t, 1.0, m.Ratio("abc", "abc"), 1e-9)
	assert.InDelta(t, 0.0, m.Ratio("abc", "xyz"), 1e-9)
	assert.InDelta(t, 18.0/19.0, m.Ratio("myproject2", "myproject"), 1e-9)
}

// =============================================================================
// Checker Tests
// =============================================================================

func TestCheckerProject(t *testing.T) {
	c := NewChecker(DefaultCutoff, false)
	known := set("myproject")

	t.Run("near_duplicate_rejected", func(t *testing.T) {
		_, err := c.Project("myproject2", known, false)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrNameTooClose)
		assert.Contains(t, err.Error(), "'myproject'")
		assert.Contains(t, errors.GetSuggestion(err), "--force-new-project")
	})

	t.Run("force_accepts", func(t *testing.T) {
		got, err := c.Project("myproject2", known, true)
		require.NoError(t, err)
		assert.Equal(t, "myproject2", got)
	})

	t.Run("existing_name_normalized", func(t *testing.T) {
		got, err := c.Project("MyProject", known, false)
		require.NoError(t, err)
		assert.Equal(t, "myproject", got)
	})

	t.Run("invalid_even_with_force", func(t *testing.T) {
		_, err := c.Project("___", known, true)
		assert.ErrorIs(t, err, errors.ErrInvalidName)
	})
}

func TestCheckerTags(t *testing.T) {
	known := set("backend")

	t.Run("no_typo_check_by_default", func(t *testing.T) {
		c := NewChecker(DefaultCutoff, false)
		tags, err := c.Tags([]string{"Backends", "backends"}, known, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"backends"}, tags)
	})

	t.Run("typo_check_enabled", func(t *testing.T) {
		c := NewChecker(DefaultCutoff, true)
		_, err := c.Tags([]string{"backends"}, known, false)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrNameTooClose)
		assert.Contains(t, errors.GetSuggestion(err), "--force-new-tag")

		tags, err := c.Tags([]string{"backends"}, known, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"backends"}, tags)
	})

	t.Run("empty", func(t *testing.T) {
		c := NewChecker(DefaultCutoff, true)
		tags, err := c.Tags(nil, known, false)
		require.NoError(t, err)
		assert.Empty(t, tags)
	})
}
