package dto

import "time"

// FilterOptions lists the distinct values the exploration UI can filter on.
type FilterOptions struct {
	Banks      []string `json:"banks"`
	Sources    []string `json:"sources"`
	Themes     []string `json:"themes"`
	Sentiments []string `json:"sentiments"`
}

// Filter carries the optional exploration filters. Empty string means "all".
// Dates are inclusive YYYY-MM-DD bounds.
type Filter struct {
	Bank      string `query:"bank"`
	Source    string `query:"source"`
	Theme     string `query:"theme"`
	Sentiment string `query:"sentiment"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

// MonthlySummaryRow is one month x bank aggregate for exploration charts.
type MonthlySummaryRow struct {
	Month             time.Time `json:"month"`
	BankName          string    `json:"bank_name"`
	NReviews          int       `json:"n_reviews"`
	AvgRating         float64   `json:"avg_rating"`
	PosShare          float64   `json:"pos_share"`
	NegShare          float64   `json:"neg_share"`
	AvgSentimentScore float64   `json:"avg_sentiment_score"`
}

// ThemeBreakdownRow is one (bank, theme, sentiment) rollup produced by the
// query layer; the coarse priority scoring consumes these.
type ThemeBreakdownRow struct {
	BankName          string  `json:"bank_name"`
	ThemePrimary      string  `json:"theme_primary"`
	SentimentLabel    string  `json:"sentiment_label"`
	NReviews          int     `json:"n_reviews"`
	AvgRating         float64 `json:"avg_rating"`
	AvgSentimentScore float64 `json:"avg_sentiment_score"`
}

// SampleReview is one evidence snippet row.
type SampleReview struct {
	ReviewDate     time.Time `json:"review_date"`
	BankName       string    `json:"bank_name"`
	Source         string    `json:"source"`
	Rating         int       `json:"rating"`
	SentimentLabel string    `json:"sentiment_label"`
	SentimentScore float64   `json:"sentiment_score"`
	ThemePrimary   string    `json:"theme_primary"`
	ReviewText     string    `json:"review_text"`
}

// PredictRequest is the input of the interactive prediction bridge.
type PredictRequest struct {
	Text string `json:"text"`
}

// PredictResponse is the bridge output. Theme fields are present only when
// the theme capability was enabled at service construction.
type PredictResponse struct {
	SentimentLabel string   `json:"sentiment_label"`
	SentimentScore float64  `json:"sentiment_score"`
	ThemePrimary   *string  `json:"theme_primary,omitempty"`
	Themes         []string `json:"themes,omitempty"`
}
