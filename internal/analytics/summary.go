package analytics

import (
	"sort"

	"bank-reviews-insights/internal/nlp"
)

// ReviewStat is the row-level input to theme summarization: one enriched
// review restricted to the reporting window by the caller.
type ReviewStat struct {
	Bank      string
	Theme     string
	Sentiment string
	Rating    int
}

// ThemeSummary is the per-(bank, theme) aggregate. It is derived state,
// rebuilt from scratch on every call, never mutated in place.
type ThemeSummary struct {
	Bank            string  `json:"bank_name"`
	Theme           string  `json:"theme"`
	N               int     `json:"n"`
	ShareWithinBank float64 `json:"share_within_bank"`
	AvgRating       float64 `json:"avg_rating"`
	PctPositive     float64 `json:"pct_positive"`
	PctNegative     float64 `json:"pct_negative"`
	DriverScore     float64 `json:"driver_score"`
	PainScore       float64 `json:"pain_score"`
}

// SummaryConfig holds the aggregation knobs.
type SummaryConfig struct {
	// MinSample drops (bank, theme) groups smaller than this so tiny samples
	// cannot dominate the rankings.
	MinSample int
}

// DefaultSummaryConfig returns the production aggregation knobs.
func DefaultSummaryConfig() SummaryConfig {
	return SummaryConfig{MinSample: 15}
}

type groupKey struct {
	bank  string
	theme string
}

type groupAcc struct {
	n         int
	ratingSum int
	nPos      int
	nNeg      int
}

// SummarizeThemes rolls enriched reviews up per (bank, theme). Bank totals
// for the volume share come from the unfiltered per-bank population, so a
// group surviving the minimum-sample filter still reports its true share.
// Empty input yields an empty, non-nil result.
func SummarizeThemes(stats []ReviewStat, cfg SummaryConfig) []ThemeSummary {
	groups := make(map[groupKey]*groupAcc)
	bankTotals := make(map[string]int)

	for _, s := range stats {
		bankTotals[s.Bank]++
		k := groupKey{bank: s.Bank, theme: s.Theme}
		g := groups[k]
		if g == nil {
			g = &groupAcc{}
			groups[k] = g
		}
		g.n++
		g.ratingSum += s.Rating
		switch s.Sentiment {
		case nlp.SentimentPositive:
			g.nPos++
		case nlp.SentimentNegative:
			g.nNeg++
		}
	}

	out := make([]ThemeSummary, 0, len(groups))
	for k, g := range groups {
		if g.n < cfg.MinSample {
			continue
		}
		n := float64(g.n)
		sum := ThemeSummary{
			Bank:            k.bank,
			Theme:           k.theme,
			N:               g.n,
			ShareWithinBank: n / float64(bankTotals[k.bank]),
			AvgRating:       float64(g.ratingSum) / n,
			PctPositive:     float64(g.nPos) / n,
			PctNegative:     float64(g.nNeg) / n,
		}
		sum.DriverScore = sum.PctPositive * sum.AvgRating * sum.ShareWithinBank
		sum.PainScore = sum.PctNegative * (maxRatingPlusOne - sum.AvgRating) * sum.ShareWithinBank
		out = append(out, sum)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Bank != out[j].Bank {
			return out[i].Bank < out[j].Bank
		}
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Theme < out[j].Theme
	})
	return out
}
