package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseThemeList(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{"bracket list", `['ACCESS_AUTH', 'UX_UI']`, []string{"ACCESS_AUTH", "UX_UI"}},
		{"bracket list double quotes", `["ACCESS_AUTH", "UX_UI"]`, []string{"ACCESS_AUTH", "UX_UI"}},
		{"empty bracket list", "[]", nil},
		{"pipe separated", "ACCESS_AUTH|UX_UI", []string{"ACCESS_AUTH", "UX_UI"}},
		{"comma separated", "ACCESS_AUTH, UX_UI", []string{"ACCESS_AUTH", "UX_UI"}},
		{"single value", "ACCESS_AUTH", []string{"ACCESS_AUTH"}},
		{"pipe beats comma", "A,B|C", []string{"A,B", "C"}},
		{"empty string", "", nil},
		{"whitespace only", "   ", nil},
		{"blank items dropped", "A,,B", []string{"A", "B"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseThemeList(tc.input))
		})
	}
}
