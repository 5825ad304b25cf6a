package service

import (
	"context"
	"fmt"

	"bank-reviews-insights/internal/entity"
	"bank-reviews-insights/internal/pipeline/config"
	"bank-reviews-insights/internal/pipeline/dto"
	"bank-reviews-insights/internal/pipeline/repository"
	"bank-reviews-insights/pkg/logger"
	"bank-reviews-insights/pkg/telegram"
)

// IngestionService runs the base-load phase: validate rows, reject
// undersized batches before any write, and load through the idempotent
// store boundary.
type IngestionService interface {
	LoadReviews(ctx context.Context, rows []dto.ReviewRow) (*dto.LoadSummary, error)
}

// NewIngestionService creates a new IngestionService. The notifier may be
// nil when Telegram is not configured.
func NewIngestionService(
	cfg *config.Config,
	reviewRepo repository.ReviewRepository,
	runRepo repository.PipelineRunRepository,
	notifier telegram.Notifier,
	log *logger.Logger,
) IngestionService {
	return &ingestionService{
		cfg:        cfg,
		reviewRepo: reviewRepo,
		runRepo:    runRepo,
		notifier:   notifier,
		logger:     log,
	}
}

type ingestionService struct {
	cfg        *config.Config
	reviewRepo repository.ReviewRepository
	runRepo    repository.PipelineRunRepository
	notifier   telegram.Notifier
	logger     *logger.Logger
}

func (s *ingestionService) LoadReviews(ctx context.Context, rows []dto.ReviewRow) (*dto.LoadSummary, error) {
	summary := &dto.LoadSummary{RowsSeen: len(rows)}

	valid := make([]dto.ReviewRow, 0, len(rows))
	for _, row := range rows {
		v, err := validateRow(row)
		if err != nil {
			summary.RowsDropped++
			s.logger.Debug("Dropping invalid row", logger.ErrorField(err), logger.StringField("bank", row.Bank))
			continue
		}
		valid = append(valid, v)
	}
	summary.RowsValid = len(valid)

	if len(valid) < s.cfg.Pipeline.MinValidRows {
		err := fmt.Errorf("%w: %d valid rows, minimum %d", dto.ErrBatchTooSmall, len(valid), s.cfg.Pipeline.MinValidRows)
		recordRun(ctx, s.runRepo, s.logger, entity.RunKindBaseLoad, entity.RunStatusFailed, summary, err)
		return nil, err
	}

	attempted, inserted, total, err := s.reviewRepo.LoadBase(ctx, valid)
	if err != nil {
		recordRun(ctx, s.runRepo, s.logger, entity.RunKindBaseLoad, entity.RunStatusFailed, summary, err)
		return nil, fmt.Errorf("base load failed: %w", err)
	}

	summary.InsertAttempted = attempted
	summary.Inserted = inserted
	summary.TotalReviews = int(total)

	s.logger.Info("Base load finished",
		logger.IntField("rows_seen", summary.RowsSeen),
		logger.IntField("rows_valid", summary.RowsValid),
		logger.IntField("inserted", summary.Inserted),
		logger.IntField("total_reviews", summary.TotalReviews),
	)

	recordRun(ctx, s.runRepo, s.logger, entity.RunKindBaseLoad, entity.RunStatusSucceeded, summary, nil)
	if s.notifier != nil {
		if err := s.notifier.SendMessage(telegram.FormatLoadSummary(*summary)); err != nil {
			s.logger.Warn("Failed to send load notification", logger.ErrorField(err))
		}
	}
	return summary, nil
}
