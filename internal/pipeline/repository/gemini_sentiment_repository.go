package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"bank-reviews-insights/internal/pipeline/config"
	"bank-reviews-insights/internal/pipeline/dto"
	"bank-reviews-insights/pkg/logger"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// geminiSentimentRepository is a SentimentRepository backed by the Google
// Gemini API, used when no dedicated inference endpoint is deployed.
type geminiSentimentRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiSentimentRepository creates a Gemini-backed SentimentRepository.
func NewGeminiSentimentRepository(cfg *config.Config, log *logger.Logger, genAiClient *genai.Client) (SentimentRepository, error) {
	if cfg.Gemini.APIKey == "" || cfg.Gemini.Model == "" {
		return nil, fmt.Errorf("gemini api_key and model must be configured")
	}
	rpm := cfg.Gemini.MaxRequestPerMinute
	if rpm <= 0 {
		rpm = 15
	}
	secondsPerRequest := time.Minute / time.Duration(rpm)

	return &geminiSentimentRepository{
		cfg:            cfg,
		logger:         log,
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
		genAiClient:    genAiClient,
	}, nil
}

func buildSentimentPrompt(texts []string) string {
	var b strings.Builder
	b.WriteString("You are a sentiment classifier for mobile banking app reviews.\n")
	b.WriteString("For every review below, output a positive and a negative class probability between 0 and 1.\n")
	b.WriteString("Respond with ONLY a JSON array, one object per review in the same order, shaped like:\n")
	b.WriteString(`[{"p_pos": 0.93, "p_neg": 0.05}]` + "\n\nReviews:\n")
	for i, t := range texts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}
	return b.String()
}

// Analyze classifies the batch with a single Gemini request.
func (r *geminiSentimentRepository) Analyze(ctx context.Context, texts []string) ([]dto.SentimentProbs, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	prompt := buildSentimentPrompt(texts)
	resp, err := r.genAiClient.Models.GenerateContent(ctx, r.cfg.Gemini.Model, genai.Text(prompt), nil)
	if err != nil {
		r.logger.Error("Gemini request failed", logger.ErrorField(err))
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	raw := cleanJSONResponse(resp.Text())
	var probs []dto.SentimentProbs
	if err := json.Unmarshal([]byte(raw), &probs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sentiment JSON from Gemini response: %w", err)
	}
	if len(probs) != len(texts) {
		return nil, fmt.Errorf("gemini returned %d results for %d texts", len(probs), len(texts))
	}
	return probs, nil
}

// cleanJSONResponse strips the markdown code fences Gemini tends to wrap
// JSON output in.
func cleanJSONResponse(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
