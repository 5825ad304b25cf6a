package service

import (
	"context"
	"errors"

	"bank-reviews-insights/internal/insights/dto"
	"bank-reviews-insights/internal/nlp"
	"bank-reviews-insights/internal/pipeline/repository"
	"bank-reviews-insights/pkg/logger"
)

// ErrEmptyText is returned when a prediction request carries no usable text.
var ErrEmptyText = errors.New("text must not be empty")

// PredictService scores a single free-text review on demand. Theme
// assignment is an optional capability decided at construction; when off,
// responses carry sentiment only and the theme fields stay absent.
type PredictService interface {
	Predict(ctx context.Context, req dto.PredictRequest) (*dto.PredictResponse, error)
}

// NewPredictService creates a new instance of PredictService.
func NewPredictService(
	log *logger.Logger,
	sentimentRepo repository.SentimentRepository,
	neutralMargin float64,
	themeCfg *nlp.ThemeConfig,
) PredictService {
	if neutralMargin <= 0 {
		neutralMargin = nlp.DefaultNeutralMargin
	}
	return &predictService{
		log:           log,
		sentimentRepo: sentimentRepo,
		neutralMargin: neutralMargin,
		themeCfg:      themeCfg,
	}
}

type predictService struct {
	log           *logger.Logger
	sentimentRepo repository.SentimentRepository
	neutralMargin float64
	themeCfg      *nlp.ThemeConfig
}

func (s *predictService) Predict(ctx context.Context, req dto.PredictRequest) (*dto.PredictResponse, error) {
	text := nlp.Normalize(req.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	probs, err := s.sentimentRepo.Analyze(ctx, []string{text})
	if err != nil {
		s.log.Error("sentiment inference failed", logger.ErrorField(err))
		return nil, err
	}
	if len(probs) != 1 {
		return nil, errors.New("sentiment backend returned unexpected result count")
	}

	resp := &dto.PredictResponse{
		SentimentLabel: nlp.SentimentLabel(probs[0].PPos, probs[0].PNeg, s.neutralMargin),
		SentimentScore: nlp.SentimentScore(probs[0].PPos, probs[0].PNeg),
	}
	if s.themeCfg != nil {
		primary, themes := nlp.AssignThemes(text, *s.themeCfg)
		resp.ThemePrimary = &primary
		resp.Themes = themes
	}
	return resp, nil
}
