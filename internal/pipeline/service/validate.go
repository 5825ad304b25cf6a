package service

import (
	"fmt"
	"strings"

	"bank-reviews-insights/internal/nlp"
	"bank-reviews-insights/internal/pipeline/dto"
	"bank-reviews-insights/pkg/utils"
)

// validateRow checks one base row against the schema requirements and
// returns it with the date canonicalized to YYYY-MM-DD, so that identical
// content always hashes identically. A row whose text normalizes to empty,
// whose date does not parse, whose rating is outside 1..5, or that misses a
// required field is invalid and gets dropped by the caller. Text made of
// nothing but whitespace and punctuation counts as empty.
func validateRow(row dto.ReviewRow) (dto.ReviewRow, error) {
	if strings.TrimSpace(row.Bank) == "" {
		return row, fmt.Errorf("missing bank")
	}
	if strings.TrimSpace(row.Source) == "" {
		return row, fmt.Errorf("missing source")
	}
	if nlp.Normalize(row.Review) == "" {
		return row, fmt.Errorf("empty review text after normalization")
	}
	if nlp.CleanForMatching(row.Review) == "" {
		return row, fmt.Errorf("review text contains no word characters")
	}
	if row.Rating < 1 || row.Rating > 5 {
		return row, fmt.Errorf("rating %d outside 1..5", row.Rating)
	}
	date, err := utils.ParseDate(row.Date)
	if err != nil {
		return row, err
	}
	row.Date = utils.FormatDate(date)
	return row, nil
}
