package telegram

import (
	"fmt"
	"strings"

	"bank-reviews-insights/internal/pipeline/dto"
)

// FormatLoadSummary renders a base-load summary as a Telegram Markdown message.
func FormatLoadSummary(s dto.LoadSummary) string {
	var b strings.Builder
	b.WriteString("*Review base load finished*\n\n")
	fmt.Fprintf(&b, "Rows seen: %d\n", s.RowsSeen)
	fmt.Fprintf(&b, "Rows valid: %d (dropped %d)\n", s.RowsValid, s.RowsDropped)
	fmt.Fprintf(&b, "Insert attempted: %d, inserted: %d\n", s.InsertAttempted, s.Inserted)
	fmt.Fprintf(&b, "Total reviews in store: %d", s.TotalReviews)
	return b.String()
}

// FormatEnrichmentSummary renders an enrichment summary as a Telegram
// Markdown message.
func FormatEnrichmentSummary(s dto.EnrichmentSummary) string {
	var b strings.Builder
	b.WriteString("*Review enrichment finished*\n\n")
	fmt.Fprintf(&b, "Rows seen: %d\n", s.RowsSeen)
	fmt.Fprintf(&b, "Updated: %d, unmatched: %d\n", s.Updated, s.Unmatched)
	fmt.Fprintf(&b, "Themes seen: %d, links inserted: %d\n", s.ThemesSeen, s.LinksInserted)
	fmt.Fprintf(&b, "Enriched reviews in store: %d / %d", s.EnrichedReviews, s.TotalReviews)
	return b.String()
}
