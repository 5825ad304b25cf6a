package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"bank-reviews-insights/internal/entity"
	"bank-reviews-insights/internal/pipeline/config"
	"bank-reviews-insights/internal/pipeline/dto"
	"bank-reviews-insights/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepo struct {
	loadBaseCalls int
	loadBaseRows  []dto.ReviewRow
	loadBaseErr   error
	inserted      int
	total         int64
	applyCalls    int
	applyRows     []dto.EnrichedRow
	applyErr      error
	applySummary  *dto.EnrichmentSummary
}

func (f *fakeReviewRepo) LoadBase(ctx context.Context, rows []dto.ReviewRow) (int, int, int64, error) {
	f.loadBaseCalls++
	f.loadBaseRows = rows
	if f.loadBaseErr != nil {
		return 0, 0, 0, f.loadBaseErr
	}
	return len(rows), f.inserted, f.total, nil
}

func (f *fakeReviewRepo) ApplyEnrichment(ctx context.Context, rows []dto.EnrichedRow) (*dto.EnrichmentSummary, error) {
	f.applyCalls++
	f.applyRows = rows
	if f.applyErr != nil {
		return nil, f.applyErr
	}
	if f.applySummary != nil {
		return f.applySummary, nil
	}
	return &dto.EnrichmentSummary{RowsSeen: len(rows), Updated: len(rows)}, nil
}

type fakeRunRepo struct {
	runs []*entity.PipelineRun
}

func (f *fakeRunRepo) Create(ctx context.Context, run *entity.PipelineRun) error {
	f.runs = append(f.runs, run)
	return nil
}

func (f *fakeRunRepo) FindRecent(ctx context.Context, limit int) ([]entity.PipelineRun, error) {
	return nil, nil
}

func validReviewRow(i int) dto.ReviewRow {
	return dto.ReviewRow{
		Bank:   "KOKO",
		Review: fmt.Sprintf("great app %d", i),
		Rating: 5,
		Date:   "2024-01-15",
		Source: "google_play",
	}
}

func ingestionConfig(minValid int) *config.Config {
	return &config.Config{Pipeline: config.Pipeline{MinValidRows: minValid}}
}

func TestLoadReviewsRejectsSmallBatch(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	runRepo := &fakeRunRepo{}
	svc := NewIngestionService(ingestionConfig(3), reviewRepo, runRepo, nil, logger.NewNop())

	_, err := svc.LoadReviews(context.Background(), []dto.ReviewRow{validReviewRow(0), validReviewRow(1)})

	require.Error(t, err)
	assert.ErrorIs(t, err, dto.ErrBatchTooSmall)
	assert.Zero(t, reviewRepo.loadBaseCalls, "store must not be touched")
	require.Len(t, runRepo.runs, 1)
	assert.Equal(t, entity.RunStatusFailed, runRepo.runs[0].Status)
	assert.Equal(t, entity.RunKindBaseLoad, runRepo.runs[0].Kind)
}

func TestLoadReviewsDropsInvalidRows(t *testing.T) {
	rows := []dto.ReviewRow{
		validReviewRow(0),
		{Bank: "", Review: "x", Rating: 5, Date: "2024-01-15", Source: "s"},
		{Bank: "KOKO", Review: "   ", Rating: 5, Date: "2024-01-15", Source: "s"},
		{Bank: "KOKO", Review: "!!! ... ???", Rating: 5, Date: "2024-01-15", Source: "s"},
		{Bank: "KOKO", Review: "x", Rating: 9, Date: "2024-01-15", Source: "s"},
		{Bank: "KOKO", Review: "x", Rating: 5, Date: "not a date", Source: "s"},
	}
	reviewRepo := &fakeReviewRepo{inserted: 1, total: 1}
	runRepo := &fakeRunRepo{}
	svc := NewIngestionService(ingestionConfig(1), reviewRepo, runRepo, nil, logger.NewNop())

	summary, err := svc.LoadReviews(context.Background(), rows)

	require.NoError(t, err)
	assert.Equal(t, 6, summary.RowsSeen)
	assert.Equal(t, 1, summary.RowsValid)
	assert.Equal(t, 5, summary.RowsDropped)
	require.Len(t, reviewRepo.loadBaseRows, 1)
}

func TestLoadReviewsRejectsPunctuationOnlyText(t *testing.T) {
	rows := []dto.ReviewRow{
		{Bank: "KOKO", Review: "!!! ... ???", Rating: 5, Date: "2024-01-15", Source: "google_play"},
	}
	reviewRepo := &fakeReviewRepo{}
	runRepo := &fakeRunRepo{}
	svc := NewIngestionService(ingestionConfig(0), reviewRepo, runRepo, nil, logger.NewNop())

	summary, err := svc.LoadReviews(context.Background(), rows)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.RowsDropped)
	assert.Zero(t, summary.RowsValid)
	assert.Empty(t, reviewRepo.loadBaseRows, "punctuation-only text must not reach the store")
}

func TestLoadReviewsCanonicalizesDates(t *testing.T) {
	row := validReviewRow(0)
	row.Date = "2024/01/15"
	reviewRepo := &fakeReviewRepo{}
	svc := NewIngestionService(ingestionConfig(1), reviewRepo, &fakeRunRepo{}, nil, logger.NewNop())

	_, err := svc.LoadReviews(context.Background(), []dto.ReviewRow{row})

	require.NoError(t, err)
	require.Len(t, reviewRepo.loadBaseRows, 1)
	assert.Equal(t, "2024-01-15", reviewRepo.loadBaseRows[0].Date)
}

func TestLoadReviewsRecordsSuccessfulRun(t *testing.T) {
	reviewRepo := &fakeReviewRepo{inserted: 2, total: 10}
	runRepo := &fakeRunRepo{}
	svc := NewIngestionService(ingestionConfig(1), reviewRepo, runRepo, nil, logger.NewNop())

	summary, err := svc.LoadReviews(context.Background(), []dto.ReviewRow{validReviewRow(0), validReviewRow(1)})

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Inserted)
	assert.Equal(t, 10, summary.TotalReviews)
	require.Len(t, runRepo.runs, 1)
	assert.Equal(t, entity.RunStatusSucceeded, runRepo.runs[0].Status)
	assert.NotEmpty(t, runRepo.runs[0].ID)
}

func TestLoadReviewsPropagatesStoreError(t *testing.T) {
	reviewRepo := &fakeReviewRepo{loadBaseErr: errors.New("connection refused")}
	runRepo := &fakeRunRepo{}
	svc := NewIngestionService(ingestionConfig(1), reviewRepo, runRepo, nil, logger.NewNop())

	_, err := svc.LoadReviews(context.Background(), []dto.ReviewRow{validReviewRow(0)})

	require.Error(t, err)
	require.Len(t, runRepo.runs, 1)
	assert.Equal(t, entity.RunStatusFailed, runRepo.runs[0].Status)
}
