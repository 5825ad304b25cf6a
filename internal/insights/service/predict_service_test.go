package service

import (
	"context"
	"errors"
	"testing"

	"bank-reviews-insights/internal/insights/dto"
	"bank-reviews-insights/internal/nlp"
	pipelinedto "bank-reviews-insights/internal/pipeline/dto"
	"bank-reviews-insights/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSentimentRepo struct {
	texts []string
	probs pipelinedto.SentimentProbs
	err   error
}

func (f *fakeSentimentRepo) Analyze(ctx context.Context, texts []string) ([]pipelinedto.SentimentProbs, error) {
	f.texts = texts
	if f.err != nil {
		return nil, f.err
	}
	out := make([]pipelinedto.SentimentProbs, len(texts))
	for i := range out {
		out[i] = f.probs
	}
	return out, nil
}

func TestPredictSentimentOnly(t *testing.T) {
	repo := &fakeSentimentRepo{probs: pipelinedto.SentimentProbs{PPos: 0.9, PNeg: 0.05}}
	svc := NewPredictService(logger.NewNop(), repo, 0, nil)

	resp, err := svc.Predict(context.Background(), dto.PredictRequest{Text: "Great app"})

	require.NoError(t, err)
	assert.Equal(t, nlp.SentimentPositive, resp.SentimentLabel)
	assert.InDelta(t, 0.85, resp.SentimentScore, 1e-9)
	assert.Nil(t, resp.ThemePrimary)
	assert.Empty(t, resp.Themes)
}

func TestPredictWithThemes(t *testing.T) {
	repo := &fakeSentimentRepo{probs: pipelinedto.SentimentProbs{PPos: 0.05, PNeg: 0.9}}
	themeCfg := nlp.DefaultThemeConfig()
	svc := NewPredictService(logger.NewNop(), repo, 0, &themeCfg)

	resp, err := svc.Predict(context.Background(), dto.PredictRequest{Text: "Login error and OTP not working"})

	require.NoError(t, err)
	assert.Equal(t, nlp.SentimentNegative, resp.SentimentLabel)
	require.NotNil(t, resp.ThemePrimary)
	assert.Equal(t, "ACCESS_AUTH", *resp.ThemePrimary)
	assert.Equal(t, []string{"ACCESS_AUTH", "STABILITY_BUGS"}, resp.Themes)
}

func TestPredictNormalizesInput(t *testing.T) {
	repo := &fakeSentimentRepo{probs: pipelinedto.SentimentProbs{PPos: 0.5, PNeg: 0.5}}
	svc := NewPredictService(logger.NewNop(), repo, nlp.DefaultNeutralMargin, nil)

	_, err := svc.Predict(context.Background(), dto.PredictRequest{Text: "  SLOW   Transfer "})

	require.NoError(t, err)
	assert.Equal(t, []string{"slow transfer"}, repo.texts)
}

func TestPredictRejectsEmptyText(t *testing.T) {
	svc := NewPredictService(logger.NewNop(), &fakeSentimentRepo{}, 0, nil)

	_, err := svc.Predict(context.Background(), dto.PredictRequest{Text: "   "})

	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestPredictPropagatesInferenceError(t *testing.T) {
	repo := &fakeSentimentRepo{err: errors.New("model unavailable")}
	svc := NewPredictService(logger.NewNop(), repo, 0, nil)

	_, err := svc.Predict(context.Background(), dto.PredictRequest{Text: "hello"})

	assert.Error(t, err)
}
