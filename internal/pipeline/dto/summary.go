package dto

// LoadSummary reports the outcome of one base-load batch so callers can
// detect partial application (dropped rows) and verify idempotency (total
// store size after the call).
type LoadSummary struct {
	RowsSeen        int `json:"rows_seen"`
	RowsValid       int `json:"rows_valid"`
	RowsDropped     int `json:"rows_dropped"`
	InsertAttempted int `json:"insert_attempted"`
	Inserted        int `json:"inserted"`
	TotalReviews    int `json:"total_reviews_in_db"`
}

// EnrichmentSummary reports the outcome of one enrichment-update batch.
// Unmatched rows found no stored identity and were ignored; enrichment never
// creates review rows.
type EnrichmentSummary struct {
	RowsSeen        int `json:"rows_seen"`
	Updated         int `json:"updated"`
	Unmatched       int `json:"unmatched"`
	ThemesSeen      int `json:"themes_seen"`
	LinksAttempted  int `json:"theme_links_attempted"`
	LinksInserted   int `json:"theme_links_inserted"`
	TotalReviews    int `json:"total_reviews_in_db"`
	EnrichedReviews int `json:"reviews_with_enrichment"`
}
