package analytics

import (
	"sort"
	"strings"

	"bank-reviews-insights/internal/nlp"
)

// SentimentCountRow is the coarse input used by the exploration surface:
// counts already aggregated per (bank, theme, sentiment) by a query layer,
// not row-level data.
type SentimentCountRow struct {
	Bank      string
	Theme     string
	Sentiment string
	NReviews  int
	AvgRating float64
}

// PriorityTableRow is one (bank, theme) line of the coarse priority table.
// Share and score fields are nil when a zero denominator makes them
// undefined; missing beats NaN.
type PriorityTableRow struct {
	Bank        string   `json:"bank_name"`
	Theme       string   `json:"theme"`
	N           int      `json:"n"`
	VolumeShare *float64 `json:"volume_share"`
	AvgRating   *float64 `json:"avg_rating"`
	PosShare    *float64 `json:"pos_share"`
	NegShare    *float64 `json:"neg_share"`
	DriverScore *float64 `json:"driver_score"`
	PainScore   *float64 `json:"pain_score"`
}

type countAcc struct {
	n         int
	ratingXn  float64
	nPos      int
	nNeg      int
}

// ComputePriorityTable derives volume_share, pos/neg share and the
// driver/pain scores from pre-aggregated sentiment counts. Sentiment values
// are compared case-insensitively and the input needs no particular label
// casing. Empty input yields an empty table; zero bank or theme totals yield
// missing scores on the affected rows rather than an error.
func ComputePriorityTable(rows []SentimentCountRow) []PriorityTableRow {
	if len(rows) == 0 {
		return []PriorityTableRow{}
	}

	groups := make(map[groupKey]*countAcc)
	bankTotals := make(map[string]int)
	for _, r := range rows {
		k := groupKey{bank: r.Bank, theme: strings.TrimSpace(r.Theme)}
		g := groups[k]
		if g == nil {
			g = &countAcc{}
			groups[k] = g
		}
		g.n += r.NReviews
		g.ratingXn += r.AvgRating * float64(r.NReviews)
		switch strings.ToUpper(strings.TrimSpace(r.Sentiment)) {
		case nlp.SentimentPositive:
			g.nPos += r.NReviews
		case nlp.SentimentNegative:
			g.nNeg += r.NReviews
		}
		bankTotals[k.bank] += r.NReviews
	}

	out := make([]PriorityTableRow, 0, len(groups))
	for k, g := range groups {
		row := PriorityTableRow{Bank: k.bank, Theme: k.theme, N: g.n}

		if total := bankTotals[k.bank]; total > 0 {
			row.VolumeShare = ptr(float64(g.n) / float64(total))
		}
		if g.n > 0 {
			row.AvgRating = ptr(g.ratingXn / float64(g.n))
			row.PosShare = ptr(float64(g.nPos) / float64(g.n))
			row.NegShare = ptr(float64(g.nNeg) / float64(g.n))
		}
		if row.VolumeShare != nil && row.AvgRating != nil {
			row.DriverScore = ptr(*row.PosShare * *row.AvgRating * *row.VolumeShare)
			row.PainScore = ptr(*row.NegShare * (maxRatingPlusOne - *row.AvgRating) * *row.VolumeShare)
		}
		out = append(out, row)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Bank != out[j].Bank {
			return out[i].Bank < out[j].Bank
		}
		// Pain-heavy themes first inside a bank, missing scores last.
		pi, pj := out[i].PainScore, out[j].PainScore
		switch {
		case pi != nil && pj != nil && *pi != *pj:
			return *pi > *pj
		case pi != nil && pj == nil:
			return true
		case pi == nil && pj != nil:
			return false
		}
		return out[i].Theme < out[j].Theme
	})
	return out
}

func ptr(f float64) *float64 { return &f }
