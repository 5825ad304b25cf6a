package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"bank-reviews-insights/internal/analytics"
	"bank-reviews-insights/internal/insights/dto"
	"bank-reviews-insights/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInsightsRepo struct {
	filterCalls    int
	filterOptions  *dto.FilterOptions
	filterErr      error
	monthlyFilter  dto.Filter
	monthlyRows    []dto.MonthlySummaryRow
	breakdownCalls int
	breakdownRows  []dto.ThemeBreakdownRow
	sampleLimit    int
}

func (f *fakeInsightsRepo) FilterOptions(ctx context.Context) (*dto.FilterOptions, error) {
	f.filterCalls++
	if f.filterErr != nil {
		return nil, f.filterErr
	}
	return f.filterOptions, nil
}

func (f *fakeInsightsRepo) MonthlySummary(ctx context.Context, filter dto.Filter) ([]dto.MonthlySummaryRow, error) {
	f.monthlyFilter = filter
	return f.monthlyRows, nil
}

func (f *fakeInsightsRepo) ThemeBreakdown(ctx context.Context, filter dto.Filter) ([]dto.ThemeBreakdownRow, error) {
	f.breakdownCalls++
	return f.breakdownRows, nil
}

func (f *fakeInsightsRepo) SampleReviews(ctx context.Context, filter dto.Filter, limit int) ([]dto.SampleReview, error) {
	f.sampleLimit = limit
	return nil, nil
}

type fakeFilterCache struct {
	store map[string]interface{}
}

func newFakeFilterCache() *fakeFilterCache {
	return &fakeFilterCache{store: map[string]interface{}{}}
}

func (c *fakeFilterCache) Get(key string) (interface{}, bool) {
	v, ok := c.store[key]
	return v, ok
}

func (c *fakeFilterCache) Set(key string, value interface{}) { c.store[key] = value }
func (c *fakeFilterCache) Delete(key string)                 { delete(c.store, key) }

type fakeQueryCache struct {
	store  map[string][]byte
	getErr error
	setErr error
}

func newFakeQueryCache() *fakeQueryCache {
	return &fakeQueryCache{store: map[string][]byte{}}
}

func (c *fakeQueryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.store[key]
	return v, ok, nil
}

func (c *fakeQueryCache) Set(ctx context.Context, key string, value []byte) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.store[key] = value
	return nil
}

func TestFiltersCachesResult(t *testing.T) {
	repo := &fakeInsightsRepo{filterOptions: &dto.FilterOptions{Banks: []string{"KOKO"}}}
	svc := NewInsightsService(logger.NewNop(), repo, newFakeFilterCache(), nil)

	first, err := svc.Filters(context.Background())
	require.NoError(t, err)
	second, err := svc.Filters(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.filterCalls, "second call must hit the cache")
}

func TestFiltersErrorIsNotCached(t *testing.T) {
	repo := &fakeInsightsRepo{filterErr: errors.New("db down")}
	svc := NewInsightsService(logger.NewNop(), repo, newFakeFilterCache(), nil)

	_, err := svc.Filters(context.Background())
	require.Error(t, err)

	repo.filterErr = nil
	repo.filterOptions = &dto.FilterOptions{}
	_, err = svc.Filters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.filterCalls)
}

func TestMonthlySummaryNormalizesSentimentFilter(t *testing.T) {
	repo := &fakeInsightsRepo{}
	svc := NewInsightsService(logger.NewNop(), repo, newFakeFilterCache(), nil)

	_, err := svc.MonthlySummary(context.Background(), dto.Filter{Sentiment: " positive "})

	require.NoError(t, err)
	assert.Equal(t, "POSITIVE", repo.monthlyFilter.Sentiment)
}

func TestPriorityTableComputesFromBreakdown(t *testing.T) {
	repo := &fakeInsightsRepo{breakdownRows: []dto.ThemeBreakdownRow{
		{BankName: "KOKO", ThemePrimary: "UX_UI", SentimentLabel: "POSITIVE", NReviews: 30, AvgRating: 4.5},
		{BankName: "KOKO", ThemePrimary: "UX_UI", SentimentLabel: "NEGATIVE", NReviews: 10, AvgRating: 1.5},
	}}
	svc := NewInsightsService(logger.NewNop(), repo, newFakeFilterCache(), nil)

	rows, err := svc.PriorityTable(context.Background(), dto.Filter{})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "UX_UI", rows[0].Theme)
	assert.Equal(t, 40, rows[0].N)
}

func TestPriorityTableUsesQueryCache(t *testing.T) {
	repo := &fakeInsightsRepo{breakdownRows: []dto.ThemeBreakdownRow{
		{BankName: "KOKO", ThemePrimary: "UX_UI", SentimentLabel: "POSITIVE", NReviews: 20, AvgRating: 4.0},
	}}
	qc := newFakeQueryCache()
	svc := NewInsightsService(logger.NewNop(), repo, newFakeFilterCache(), qc)

	first, err := svc.PriorityTable(context.Background(), dto.Filter{Bank: "KOKO"})
	require.NoError(t, err)
	second, err := svc.PriorityTable(context.Background(), dto.Filter{Bank: "KOKO"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.breakdownCalls, "second call must hit the cache")
}

func TestPriorityTableCacheErrorFallsBackToQuery(t *testing.T) {
	repo := &fakeInsightsRepo{breakdownRows: []dto.ThemeBreakdownRow{
		{BankName: "KOKO", ThemePrimary: "UX_UI", SentimentLabel: "NEGATIVE", NReviews: 20, AvgRating: 2.0},
	}}
	qc := newFakeQueryCache()
	qc.getErr = errors.New("redis down")
	qc.setErr = errors.New("redis down")
	svc := NewInsightsService(logger.NewNop(), repo, newFakeFilterCache(), qc)

	rows, err := svc.PriorityTable(context.Background(), dto.Filter{})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, repo.breakdownCalls)
}

func TestPriorityTableInvalidCacheEntryIsRecomputed(t *testing.T) {
	repo := &fakeInsightsRepo{breakdownRows: []dto.ThemeBreakdownRow{
		{BankName: "KOKO", ThemePrimary: "UX_UI", SentimentLabel: "POSITIVE", NReviews: 20, AvgRating: 4.0},
	}}
	qc := newFakeQueryCache()
	qc.store[priorityCacheKey(dto.Filter{})] = []byte("not json")
	svc := NewInsightsService(logger.NewNop(), repo, newFakeFilterCache(), qc)

	rows, err := svc.PriorityTable(context.Background(), dto.Filter{})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, repo.breakdownCalls)

	// The recomputed value replaces the bad entry.
	var cached []analytics.PriorityTableRow
	require.NoError(t, json.Unmarshal(qc.store[priorityCacheKey(dto.Filter{})], &cached))
	assert.Len(t, cached, 1)
}

func TestSampleReviewsClampsLimit(t *testing.T) {
	repo := &fakeInsightsRepo{}
	svc := NewInsightsService(logger.NewNop(), repo, newFakeFilterCache(), nil)

	_, err := svc.SampleReviews(context.Background(), dto.Filter{}, 0)
	require.NoError(t, err)
	assert.Equal(t, defaultSampleLimit, repo.sampleLimit)

	_, err = svc.SampleReviews(context.Background(), dto.Filter{}, 10_000)
	require.NoError(t, err)
	assert.Equal(t, maxSampleLimit, repo.sampleLimit)
}

func TestWarmFiltersPopulatesCache(t *testing.T) {
	repo := &fakeInsightsRepo{filterOptions: &dto.FilterOptions{Banks: []string{"KOKO"}}}
	fc := newFakeFilterCache()
	svc := NewInsightsService(logger.NewNop(), repo, fc, nil)

	svc.WarmFilters(context.Background())

	opts, err := svc.Filters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"KOKO"}, opts.Banks)
	assert.Equal(t, 1, repo.filterCalls, "warm-up already filled the cache")
}
