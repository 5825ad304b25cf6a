package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentimentLabel(t *testing.T) {
	testCases := []struct {
		name     string
		pPos     float64
		pNeg     float64
		margin   float64
		expected string
	}{
		{"clear positive", 0.9, 0.05, DefaultNeutralMargin, SentimentPositive},
		{"clear negative", 0.1, 0.85, DefaultNeutralMargin, SentimentNegative},
		{"inside margin is neutral", 0.55, 0.45, DefaultNeutralMargin, SentimentNeutral},
		{"equal probabilities are neutral", 0.5, 0.5, DefaultNeutralMargin, SentimentNeutral},
		{"zero margin tie falls to negative", 0.5, 0.5, 0, SentimentNegative},
		{"zero margin slight positive", 0.51, 0.49, 0, SentimentPositive},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SentimentLabel(tc.pPos, tc.pNeg, tc.margin))
		})
	}
}

func TestSentimentScore(t *testing.T) {
	assert.InDelta(t, 0.7, SentimentScore(0.8, 0.1), 1e-9)
	assert.InDelta(t, -0.6, SentimentScore(0.2, 0.8), 1e-9)
	assert.InDelta(t, 0.0, SentimentScore(0.5, 0.5), 1e-9)
}
