package analytics

import (
	"testing"

	"bank-reviews-insights/internal/nlp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeStats(bank, theme, sentiment string, rating, n int) []ReviewStat {
	stats := make([]ReviewStat, n)
	for i := range stats {
		stats[i] = ReviewStat{Bank: bank, Theme: theme, Sentiment: sentiment, Rating: rating}
	}
	return stats
}

func TestSummarizeThemesEmptyInput(t *testing.T) {
	out := SummarizeThemes(nil, DefaultSummaryConfig())

	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestSummarizeThemesDropsSmallGroups(t *testing.T) {
	stats := append(
		makeStats("KOKO", "UX_UI", nlp.SentimentPositive, 5, 20),
		makeStats("KOKO", "SUPPORT_SERVICE", nlp.SentimentNegative, 1, 5)...,
	)

	out := SummarizeThemes(stats, SummaryConfig{MinSample: 15})

	require.Len(t, out, 1)
	assert.Equal(t, "UX_UI", out[0].Theme)
}

func TestSummarizeThemesShareUsesUnfilteredBankTotal(t *testing.T) {
	// 20 of 25 reviews land on UX_UI; the 5-review group is dropped but
	// still counts toward the bank population.
	stats := append(
		makeStats("KOKO", "UX_UI", nlp.SentimentPositive, 5, 20),
		makeStats("KOKO", "SUPPORT_SERVICE", nlp.SentimentNegative, 1, 5)...,
	)

	out := SummarizeThemes(stats, SummaryConfig{MinSample: 15})

	require.Len(t, out, 1)
	assert.InDelta(t, 20.0/25.0, out[0].ShareWithinBank, 1e-9)
}

func TestSummarizeThemesMetrics(t *testing.T) {
	stats := append(
		makeStats("KOKO", "UX_UI", nlp.SentimentPositive, 5, 12),
		makeStats("KOKO", "UX_UI", nlp.SentimentNegative, 1, 4)...,
	)
	stats = append(stats, makeStats("KOKO", "UX_UI", nlp.SentimentNeutral, 3, 4)...)

	out := SummarizeThemes(stats, SummaryConfig{MinSample: 15})

	require.Len(t, out, 1)
	s := out[0]
	assert.Equal(t, 20, s.N)
	assert.InDelta(t, 1.0, s.ShareWithinBank, 1e-9)
	assert.InDelta(t, (12.0*5+4.0*1+4.0*3)/20.0, s.AvgRating, 1e-9)
	assert.InDelta(t, 0.6, s.PctPositive, 1e-9)
	assert.InDelta(t, 0.2, s.PctNegative, 1e-9)
	assert.InDelta(t, s.PctPositive*s.AvgRating*s.ShareWithinBank, s.DriverScore, 1e-9)
	assert.InDelta(t, s.PctNegative*(6.0-s.AvgRating)*s.ShareWithinBank, s.PainScore, 1e-9)
}

func TestSummarizeThemesBanksAreIndependent(t *testing.T) {
	stats := append(
		makeStats("KOKO", "UX_UI", nlp.SentimentPositive, 5, 20),
		makeStats("MOMO", "UX_UI", nlp.SentimentNegative, 1, 20)...,
	)

	out := SummarizeThemes(stats, SummaryConfig{MinSample: 15})

	require.Len(t, out, 2)
	assert.Equal(t, "KOKO", out[0].Bank)
	assert.InDelta(t, 1.0, out[0].ShareWithinBank, 1e-9)
	assert.Equal(t, "MOMO", out[1].Bank)
	assert.InDelta(t, 1.0, out[1].ShareWithinBank, 1e-9)
}
