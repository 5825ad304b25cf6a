package analytics

import "sort"

// maxRatingPlusOne is the pain-score pivot: one above the 5-star maximum, so
// a 5.0 average contributes (6-5)=1 and a 1.0 average contributes 5,
// symmetric to how the driver score rewards high ratings.
const maxRatingPlusOne = 6.0

// Insight kinds for ranked priority rows.
const (
	KindDriver    = "DRIVER"
	KindPainPoint = "PAIN_POINT"
)

// PriorityRow is a ranking artifact: one theme selected as a top driver or
// pain point for a bank.
type PriorityRow struct {
	Bank            string  `json:"bank_name"`
	Theme           string  `json:"theme"`
	Kind            string  `json:"kind"`
	N               int     `json:"n"`
	ShareWithinBank float64 `json:"share_within_bank"`
	AvgRating       float64 `json:"avg_rating"`
	PctPositive     float64 `json:"pct_positive"`
	PctNegative     float64 `json:"pct_negative"`
	Score           float64 `json:"score"`
}

// TopDriversAndPainPoints selects, independently per bank, the top-k themes
// by driver score and the top-k by pain score. The selections are independent
// axes: the same theme may appear in both lists for one bank.
func TopDriversAndPainPoints(summary []ThemeSummary, k int) (drivers, pains []PriorityRow) {
	byBank := make(map[string][]ThemeSummary)
	banks := make([]string, 0)
	for _, s := range summary {
		if _, ok := byBank[s.Bank]; !ok {
			banks = append(banks, s.Bank)
		}
		byBank[s.Bank] = append(byBank[s.Bank], s)
	}
	sort.Strings(banks)

	drivers = make([]PriorityRow, 0, len(banks)*k)
	pains = make([]PriorityRow, 0, len(banks)*k)
	for _, bank := range banks {
		rows := byBank[bank]

		sort.SliceStable(rows, func(i, j int) bool { return rows[i].DriverScore > rows[j].DriverScore })
		for i := 0; i < len(rows) && i < k; i++ {
			drivers = append(drivers, toPriorityRow(rows[i], KindDriver, rows[i].DriverScore))
		}

		sort.SliceStable(rows, func(i, j int) bool { return rows[i].PainScore > rows[j].PainScore })
		for i := 0; i < len(rows) && i < k; i++ {
			pains = append(pains, toPriorityRow(rows[i], KindPainPoint, rows[i].PainScore))
		}
	}
	return drivers, pains
}

func toPriorityRow(s ThemeSummary, kind string, score float64) PriorityRow {
	return PriorityRow{
		Bank:            s.Bank,
		Theme:           s.Theme,
		Kind:            kind,
		N:               s.N,
		ShareWithinBank: s.ShareWithinBank,
		AvgRating:       s.AvgRating,
		PctPositive:     s.PctPositive,
		PctNegative:     s.PctNegative,
		Score:           score,
	}
}
