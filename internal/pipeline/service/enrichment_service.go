package service

import (
	"context"
	"fmt"
	"strings"

	"bank-reviews-insights/internal/entity"
	"bank-reviews-insights/internal/nlp"
	"bank-reviews-insights/internal/pipeline/config"
	"bank-reviews-insights/internal/pipeline/dto"
	"bank-reviews-insights/internal/pipeline/repository"
	"bank-reviews-insights/pkg/logger"
	"bank-reviews-insights/pkg/telegram"
)

const defaultClassifierBatchSize = 32

// EnrichmentService runs the enrichment phase. Enrich scores validated base
// rows with the sentiment collaborator and the rule-based theme classifier
// and applies the result; ApplyScored applies rows that already carry
// enrichment values (for example a scored export). Both are idempotent
// against the store: re-running with identical inputs changes nothing.
type EnrichmentService interface {
	Enrich(ctx context.Context, rows []dto.ReviewRow) (*dto.EnrichmentSummary, error)
	ApplyScored(ctx context.Context, rows []dto.EnrichedRow) (*dto.EnrichmentSummary, error)
}

// NewEnrichmentService creates a new EnrichmentService. The notifier may be
// nil when Telegram is not configured.
func NewEnrichmentService(
	cfg *config.Config,
	reviewRepo repository.ReviewRepository,
	runRepo repository.PipelineRunRepository,
	sentimentRepo repository.SentimentRepository,
	notifier telegram.Notifier,
	log *logger.Logger,
) EnrichmentService {
	return &enrichmentService{
		cfg:           cfg,
		reviewRepo:    reviewRepo,
		runRepo:       runRepo,
		sentimentRepo: sentimentRepo,
		notifier:      notifier,
		logger:        log,
		themeCfg:      themeConfigFrom(cfg),
	}
}

type enrichmentService struct {
	cfg           *config.Config
	reviewRepo    repository.ReviewRepository
	runRepo       repository.PipelineRunRepository
	sentimentRepo repository.SentimentRepository
	notifier      telegram.Notifier
	logger        *logger.Logger
	themeCfg      nlp.ThemeConfig
}

func themeConfigFrom(cfg *config.Config) nlp.ThemeConfig {
	t := cfg.Pipeline.Themes
	if t == (config.Themes{}) {
		return nlp.DefaultThemeConfig()
	}
	return nlp.ThemeConfig{
		PhraseWeight:    t.PhraseWeight,
		WordWeight:      t.WordWeight,
		Threshold:       t.Threshold,
		AllowMultilabel: t.AllowMultilabel,
		MaxThemes:       t.MaxThemes,
	}
}

func (s *enrichmentService) Enrich(ctx context.Context, rows []dto.ReviewRow) (*dto.EnrichmentSummary, error) {
	valid := make([]dto.ReviewRow, 0, len(rows))
	for _, row := range rows {
		v, err := validateRow(row)
		if err != nil {
			s.logger.Debug("Dropping invalid row", logger.ErrorField(err), logger.StringField("bank", row.Bank))
			continue
		}
		valid = append(valid, v)
	}
	if len(valid) == 0 {
		return nil, dto.ErrNoRows
	}

	batchSize := s.cfg.Pipeline.BatchSize
	if batchSize <= 0 {
		batchSize = defaultClassifierBatchSize
	}

	enriched := make([]dto.EnrichedRow, 0, len(valid))
	for start := 0; start < len(valid); start += batchSize {
		end := start + batchSize
		if end > len(valid) {
			end = len(valid)
		}
		batch := valid[start:end]

		texts := make([]string, len(batch))
		for i, row := range batch {
			texts[i] = nlp.Normalize(row.Review)
		}

		probs, err := s.sentimentRepo.Analyze(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("sentiment analysis failed: %w", err)
		}

		for i, row := range batch {
			primary, themes := nlp.AssignThemes(row.Review, s.themeCfg)
			enriched = append(enriched, dto.EnrichedRow{
				ReviewRow:      row,
				SentimentLabel: nlp.SentimentLabel(probs[i].PPos, probs[i].PNeg, s.cfg.Pipeline.NeutralMargin),
				SentimentScore: nlp.SentimentScore(probs[i].PPos, probs[i].PNeg),
				ThemePrimary:   primary,
				Themes:         themes,
			})
		}
	}

	return s.apply(ctx, enriched)
}

func (s *enrichmentService) ApplyScored(ctx context.Context, rows []dto.EnrichedRow) (*dto.EnrichmentSummary, error) {
	valid := make([]dto.EnrichedRow, 0, len(rows))
	for _, row := range rows {
		v, err := validateRow(row.ReviewRow)
		if err != nil {
			s.logger.Debug("Dropping invalid scored row", logger.ErrorField(err), logger.StringField("bank", row.Bank))
			continue
		}
		row.ReviewRow = v
		row.SentimentLabel = strings.ToUpper(strings.TrimSpace(row.SentimentLabel))
		valid = append(valid, row)
	}
	if len(valid) == 0 {
		return nil, dto.ErrNoRows
	}
	return s.apply(ctx, valid)
}

func (s *enrichmentService) apply(ctx context.Context, rows []dto.EnrichedRow) (*dto.EnrichmentSummary, error) {
	summary, err := s.reviewRepo.ApplyEnrichment(ctx, rows)
	if err != nil {
		recordRun(ctx, s.runRepo, s.logger, entity.RunKindEnrichment, entity.RunStatusFailed, &dto.EnrichmentSummary{RowsSeen: len(rows)}, err)
		return nil, fmt.Errorf("enrichment update failed: %w", err)
	}

	s.logger.Info("Enrichment finished",
		logger.IntField("rows_seen", summary.RowsSeen),
		logger.IntField("updated", summary.Updated),
		logger.IntField("unmatched", summary.Unmatched),
		logger.IntField("links_inserted", summary.LinksInserted),
	)

	recordRun(ctx, s.runRepo, s.logger, entity.RunKindEnrichment, entity.RunStatusSucceeded, summary, nil)
	if s.notifier != nil {
		if err := s.notifier.SendMessage(telegram.FormatEnrichmentSummary(*summary)); err != nil {
			s.logger.Warn("Failed to send enrichment notification", logger.ErrorField(err))
		}
	}
	return summary, nil
}
