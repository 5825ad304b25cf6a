package nlp

import "math"

// Sentiment labels as stored and aggregated. Uppercase everywhere; API-level
// filters normalize user input up to these values.
const (
	SentimentPositive = "POSITIVE"
	SentimentNegative = "NEGATIVE"
	SentimentNeutral  = "NEUTRAL"
)

// DefaultNeutralMargin is the probability-difference band inside which a
// review is labeled NEUTRAL rather than positive or negative.
const DefaultNeutralMargin = 0.15

// SentimentLabel turns two independent classifier probabilities into a
// three-way label. With a margin of 0 and exactly equal probabilities the
// result is NEGATIVE: the positive branch requires strict inequality.
func SentimentLabel(pPos, pNeg, neutralMargin float64) string {
	if math.Abs(pPos-pNeg) < neutralMargin {
		return SentimentNeutral
	}
	if pPos > pNeg {
		return SentimentPositive
	}
	return SentimentNegative
}

// SentimentScore is the signed, unclamped numeric score carried next to the
// label. Downstream means and heatmaps consume this, not the label.
func SentimentScore(pPos, pNeg float64) float64 {
	return pPos - pNeg
}
