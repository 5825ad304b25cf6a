package repository

import (
	"context"
	"fmt"
	"strings"

	"bank-reviews-insights/internal/insights/dto"
	"bank-reviews-insights/internal/nlp"

	"gorm.io/gorm"
)

// InsightsRepository runs the read-only rollup queries behind the
// exploration API. All filtering happens here in SQL; the scoring functions
// downstream receive already-filtered input and filter nothing themselves.
type InsightsRepository interface {
	FilterOptions(ctx context.Context) (*dto.FilterOptions, error)
	MonthlySummary(ctx context.Context, f dto.Filter) ([]dto.MonthlySummaryRow, error)
	ThemeBreakdown(ctx context.Context, f dto.Filter) ([]dto.ThemeBreakdownRow, error)
	SampleReviews(ctx context.Context, f dto.Filter, limit int) ([]dto.SampleReview, error)
}

// NewInsightsRepository creates a new instance of InsightsRepository.
func NewInsightsRepository(db *gorm.DB) InsightsRepository {
	return &insightsRepository{db: db}
}

type insightsRepository struct {
	db *gorm.DB
}

func (r *insightsRepository) FilterOptions(ctx context.Context) (*dto.FilterOptions, error) {
	out := &dto.FilterOptions{
		Sentiments: []string{nlp.SentimentPositive, nlp.SentimentNegative, nlp.SentimentNeutral},
	}

	if err := r.db.WithContext(ctx).
		Raw("SELECT bank_name FROM banks ORDER BY bank_name").
		Scan(&out.Banks).Error; err != nil {
		return nil, fmt.Errorf("filter banks query error: %w", err)
	}
	if err := r.db.WithContext(ctx).
		Raw("SELECT DISTINCT source FROM reviews WHERE source IS NOT NULL ORDER BY source").
		Scan(&out.Sources).Error; err != nil {
		return nil, fmt.Errorf("filter sources query error: %w", err)
	}
	if err := r.db.WithContext(ctx).
		Raw("SELECT DISTINCT theme_primary FROM reviews WHERE theme_primary IS NOT NULL ORDER BY theme_primary").
		Scan(&out.Themes).Error; err != nil {
		return nil, fmt.Errorf("filter themes query error: %w", err)
	}
	return out, nil
}

// appendFilters writes the shared optional WHERE conditions.
func appendFilters(q *strings.Builder, params *[]interface{}, f dto.Filter, withTheme, withSentiment bool) {
	if f.Bank != "" {
		q.WriteString(" AND b.bank_name = ?")
		*params = append(*params, f.Bank)
	}
	if f.Source != "" {
		q.WriteString(" AND r.source = ?")
		*params = append(*params, f.Source)
	}
	if withTheme && f.Theme != "" {
		q.WriteString(" AND r.theme_primary = ?")
		*params = append(*params, f.Theme)
	}
	if withSentiment && f.Sentiment != "" {
		q.WriteString(" AND UPPER(TRIM(r.sentiment_label)) = ?")
		*params = append(*params, strings.ToUpper(strings.TrimSpace(f.Sentiment)))
	}
	if f.StartDate != "" {
		q.WriteString(" AND r.review_date >= ?::date")
		*params = append(*params, f.StartDate)
	}
	if f.EndDate != "" {
		q.WriteString(" AND r.review_date < (?::date + interval '1 day')")
		*params = append(*params, f.EndDate)
	}
}

func (r *insightsRepository) MonthlySummary(ctx context.Context, f dto.Filter) ([]dto.MonthlySummaryRow, error) {
	var (
		q      strings.Builder
		params []interface{}
		rows   []dto.MonthlySummaryRow
	)

	q.WriteString(`
	SELECT
		date_trunc('month', r.review_date)::date AS month,
		b.bank_name,
		COUNT(*) AS n_reviews,
		AVG(r.rating)::float8 AS avg_rating,
		AVG(CASE WHEN UPPER(TRIM(r.sentiment_label)) = 'POSITIVE' THEN 1 ELSE 0 END)::float8 AS pos_share,
		AVG(CASE WHEN UPPER(TRIM(r.sentiment_label)) = 'NEGATIVE' THEN 1 ELSE 0 END)::float8 AS neg_share,
		COALESCE(AVG(r.sentiment_score), 0)::float8 AS avg_sentiment_score
	FROM reviews r
	JOIN banks b ON b.bank_id = r.bank_id
	WHERE 1=1`)
	appendFilters(&q, &params, f, true, true)
	q.WriteString(" GROUP BY 1, 2 ORDER BY 1, 2")

	if err := r.db.WithContext(ctx).Raw(q.String(), params...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("monthly summary query error: %w", err)
	}
	return rows, nil
}

func (r *insightsRepository) ThemeBreakdown(ctx context.Context, f dto.Filter) ([]dto.ThemeBreakdownRow, error) {
	var (
		q      strings.Builder
		params []interface{}
		rows   []dto.ThemeBreakdownRow
	)

	q.WriteString(`
	SELECT
		b.bank_name,
		r.theme_primary,
		UPPER(TRIM(r.sentiment_label)) AS sentiment_label,
		COUNT(*) AS n_reviews,
		AVG(r.rating)::float8 AS avg_rating,
		COALESCE(AVG(r.sentiment_score), 0)::float8 AS avg_sentiment_score
	FROM reviews r
	JOIN banks b ON b.bank_id = r.bank_id
	WHERE r.theme_primary IS NOT NULL
	AND r.sentiment_label IS NOT NULL`)
	appendFilters(&q, &params, f, false, false)
	q.WriteString(" GROUP BY 1, 2, 3 ORDER BY 1, 2, 3")

	if err := r.db.WithContext(ctx).Raw(q.String(), params...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("theme breakdown query error: %w", err)
	}
	return rows, nil
}

func (r *insightsRepository) SampleReviews(ctx context.Context, f dto.Filter, limit int) ([]dto.SampleReview, error) {
	var (
		q      strings.Builder
		params []interface{}
		rows   []dto.SampleReview
	)

	q.WriteString(`
	SELECT
		r.review_date,
		b.bank_name,
		r.source,
		r.rating,
		UPPER(TRIM(r.sentiment_label)) AS sentiment_label,
		COALESCE(r.sentiment_score, 0) AS sentiment_score,
		COALESCE(r.theme_primary, '') AS theme_primary,
		r.review_text
	FROM reviews r
	JOIN banks b ON b.bank_id = r.bank_id
	WHERE 1=1`)
	appendFilters(&q, &params, f, true, true)
	q.WriteString(" ORDER BY r.review_date DESC LIMIT ?")
	params = append(params, limit)

	if err := r.db.WithContext(ctx).Raw(q.String(), params...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("sample reviews query error: %w", err)
	}
	return rows, nil
}
