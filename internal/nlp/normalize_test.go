package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "GREAT App", "great app"},
		{"trims and collapses whitespace", "  a \t\n  b  ", "a b"},
		{"strips zero-width runes", "a\u200bb\u200cc\u200d\ufeff", "abc"},
		{"strips interior byte order mark", "great\ufeffapp", "greatapp"},
		{"nfkc folds fullwidth forms", "ＡＢＣ１２３", "abc123"},
		{"empty input", "", ""},
		{"whitespace only", " \t\n ", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	in := "  Lögin\u200b FAILED twice  "
	once := Normalize(in)
	assert.Equal(t, once, Normalize(once))
}

func TestCleanForMatching(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"strips punctuation", "can't login!!!", "can t login"},
		{"keeps digits and underscore", "error_42 happened", "error_42 happened"},
		{"collapses punctuation runs", "slow...transfer", "slow transfer"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CleanForMatching(tc.input))
		})
	}
}
