package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"bank-reviews-insights/internal/analytics"
	"bank-reviews-insights/internal/insights/cache"
	"bank-reviews-insights/internal/insights/dto"
	"bank-reviews-insights/internal/insights/repository"
	"bank-reviews-insights/pkg/logger"
)

const (
	filterOptionsCacheKey = "insights:filter_options"
	priorityCachePrefix   = "insights:priority"

	defaultSampleLimit = 20
	maxSampleLimit     = 200
)

// InsightsService exposes the exploration operations of the API. Filter
// option lists go through the in-process cache, the priority table through
// the Redis query cache; both fall back to the database on a miss or a cache
// error.
type InsightsService interface {
	Filters(ctx context.Context) (*dto.FilterOptions, error)
	MonthlySummary(ctx context.Context, f dto.Filter) ([]dto.MonthlySummaryRow, error)
	ThemeBreakdown(ctx context.Context, f dto.Filter) ([]dto.ThemeBreakdownRow, error)
	PriorityTable(ctx context.Context, f dto.Filter) ([]analytics.PriorityTableRow, error)
	SampleReviews(ctx context.Context, f dto.Filter, limit int) ([]dto.SampleReview, error)
	WarmFilters(ctx context.Context)
}

// NewInsightsService creates a new instance of InsightsService. queryCache
// may be nil, in which case priority tables are always recomputed.
func NewInsightsService(
	log *logger.Logger,
	repo repository.InsightsRepository,
	filterCache cache.FilterCache,
	queryCache cache.QueryCache,
) InsightsService {
	return &insightsService{
		log:         log,
		repo:        repo,
		filterCache: filterCache,
		queryCache:  queryCache,
	}
}

type insightsService struct {
	log         *logger.Logger
	repo        repository.InsightsRepository
	filterCache cache.FilterCache
	queryCache  cache.QueryCache
}

func (s *insightsService) Filters(ctx context.Context) (*dto.FilterOptions, error) {
	if cached, ok := s.filterCache.Get(filterOptionsCacheKey); ok {
		if opts, ok := cached.(*dto.FilterOptions); ok {
			return opts, nil
		}
	}

	opts, err := s.repo.FilterOptions(ctx)
	if err != nil {
		return nil, err
	}
	s.filterCache.Set(filterOptionsCacheKey, opts)
	return opts, nil
}

func (s *insightsService) MonthlySummary(ctx context.Context, f dto.Filter) ([]dto.MonthlySummaryRow, error) {
	return s.repo.MonthlySummary(ctx, normalizeFilter(f))
}

func (s *insightsService) ThemeBreakdown(ctx context.Context, f dto.Filter) ([]dto.ThemeBreakdownRow, error) {
	return s.repo.ThemeBreakdown(ctx, normalizeFilter(f))
}

func (s *insightsService) PriorityTable(ctx context.Context, f dto.Filter) ([]analytics.PriorityTableRow, error) {
	f = normalizeFilter(f)
	key := priorityCacheKey(f)

	if s.queryCache != nil {
		raw, ok, err := s.queryCache.Get(ctx, key)
		if err != nil {
			s.log.Warn("priority cache read failed", logger.ErrorField(err))
		} else if ok {
			var rows []analytics.PriorityTableRow
			if err := json.Unmarshal(raw, &rows); err == nil {
				return rows, nil
			}
			s.log.Warn("priority cache entry invalid", logger.StringField("key", key))
		}
	}

	breakdown, err := s.repo.ThemeBreakdown(ctx, f)
	if err != nil {
		return nil, err
	}
	counts := make([]analytics.SentimentCountRow, 0, len(breakdown))
	for _, b := range breakdown {
		counts = append(counts, analytics.SentimentCountRow{
			Bank:      b.BankName,
			Theme:     b.ThemePrimary,
			Sentiment: b.SentimentLabel,
			NReviews:  b.NReviews,
			AvgRating: b.AvgRating,
		})
	}
	rows := analytics.ComputePriorityTable(counts)

	if s.queryCache != nil {
		if raw, err := json.Marshal(rows); err == nil {
			if err := s.queryCache.Set(ctx, key, raw); err != nil {
				s.log.Warn("priority cache write failed", logger.ErrorField(err))
			}
		}
	}
	return rows, nil
}

func (s *insightsService) SampleReviews(ctx context.Context, f dto.Filter, limit int) ([]dto.SampleReview, error) {
	if limit <= 0 {
		limit = defaultSampleLimit
	}
	if limit > maxSampleLimit {
		limit = maxSampleLimit
	}
	return s.repo.SampleReviews(ctx, normalizeFilter(f), limit)
}

// WarmFilters refreshes the filter option cache. Errors are logged, not
// returned; the next request recomputes on demand.
func (s *insightsService) WarmFilters(ctx context.Context) {
	opts, err := s.repo.FilterOptions(ctx)
	if err != nil {
		s.log.Error("filter cache warm-up failed", logger.ErrorField(err))
		return
	}
	s.filterCache.Set(filterOptionsCacheKey, opts)
	s.log.Debug("filter cache warmed")
}

// normalizeFilter canonicalizes filter input. Sentiment labels are stored
// uppercase, so the filter value is uppercased too.
func normalizeFilter(f dto.Filter) dto.Filter {
	f.Bank = strings.TrimSpace(f.Bank)
	f.Source = strings.TrimSpace(f.Source)
	f.Theme = strings.TrimSpace(f.Theme)
	f.Sentiment = strings.ToUpper(strings.TrimSpace(f.Sentiment))
	f.StartDate = strings.TrimSpace(f.StartDate)
	f.EndDate = strings.TrimSpace(f.EndDate)
	return f
}

func priorityCacheKey(f dto.Filter) string {
	return fmt.Sprintf("%s:%s|%s|%s|%s", priorityCachePrefix, f.Bank, f.Source, f.StartDate, f.EndDate)
}
