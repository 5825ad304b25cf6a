// Package source reads exported review rows from CSV files produced by the
// scraping/cleaning collaborator. It maps columns by header name so column
// order in the export does not matter.
package source

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"bank-reviews-insights/internal/pipeline/dto"
)

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.ToLower(h))] = i
	}
	return idx
}

func field(record []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func requireColumns(idx map[string]int, names ...string) error {
	var missing []string
	for _, n := range names {
		if _, ok := idx[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("CSV missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ReadBaseRows loads base review rows: review, rating, date, bank, source.
// Rows whose rating does not parse keep a zero rating and are dropped later
// by validation; structural CSV errors abort the read.
func ReadBaseRows(path string) ([]dto.ReviewRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV is empty")
	}

	idx := headerIndex(records[0])
	if err := requireColumns(idx, "review", "rating", "date", "bank", "source"); err != nil {
		return nil, err
	}

	rows := make([]dto.ReviewRow, 0, len(records)-1)
	for _, record := range records[1:] {
		rating, _ := strconv.Atoi(field(record, idx, "rating"))
		rows = append(rows, dto.ReviewRow{
			Bank:   field(record, idx, "bank"),
			Review: field(record, idx, "review"),
			Rating: rating,
			Date:   field(record, idx, "date"),
			Source: field(record, idx, "source"),
		})
	}
	return rows, nil
}

// ReadScoredRows loads enriched rows: the base columns plus sentiment_label,
// sentiment_score, theme_primary and the string-encoded themes list, which
// is parsed here at the boundary into an ordered list.
func ReadScoredRows(path string) ([]dto.EnrichedRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV is empty")
	}

	idx := headerIndex(records[0])
	if err := requireColumns(idx, "review", "rating", "date", "bank", "source",
		"sentiment_label", "sentiment_score", "theme_primary", "themes"); err != nil {
		return nil, err
	}

	rows := make([]dto.EnrichedRow, 0, len(records)-1)
	for _, record := range records[1:] {
		rating, _ := strconv.Atoi(field(record, idx, "rating"))
		score, _ := strconv.ParseFloat(field(record, idx, "sentiment_score"), 64)
		rows = append(rows, dto.EnrichedRow{
			ReviewRow: dto.ReviewRow{
				Bank:   field(record, idx, "bank"),
				Review: field(record, idx, "review"),
				Rating: rating,
				Date:   field(record, idx, "date"),
				Source: field(record, idx, "source"),
			},
			SentimentLabel: field(record, idx, "sentiment_label"),
			SentimentScore: score,
			ThemePrimary:   field(record, idx, "theme_primary"),
			Themes:         dto.ParseThemeList(field(record, idx, "themes")),
		})
	}
	return rows, nil
}
