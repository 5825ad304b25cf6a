package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bank-reviews-insights/internal/pipeline/config"
	"bank-reviews-insights/internal/pipeline/dto"
	"bank-reviews-insights/pkg/logger"

	"golang.org/x/time/rate"
)

// inferenceAPIRepository implements SentimentRepository against a batched
// HTTP inference endpoint serving the trained sentiment model.
type inferenceAPIRepository struct {
	client         *http.Client
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// NewInferenceAPIRepository creates a SentimentRepository backed by the HTTP
// inference endpoint. A missing base URL is a configuration error.
func NewInferenceAPIRepository(cfg *config.Config, log *logger.Logger) (SentimentRepository, error) {
	if cfg.InferenceAPI.BaseURL == "" {
		return nil, fmt.Errorf("inference_api.base_url is not configured")
	}
	rpm := cfg.InferenceAPI.MaxRequestPerMinute
	if rpm <= 0 {
		rpm = 60
	}
	secondsPerRequest := time.Minute / time.Duration(rpm)

	return &inferenceAPIRepository{
		client: &http.Client{
			Timeout: 90 * time.Second,
		},
		cfg:            cfg,
		logger:         log,
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}, nil
}

// Analyze sends one batched request and returns a probability pair per text.
func (r *inferenceAPIRepository) Analyze(ctx context.Context, texts []string) ([]dto.SentimentProbs, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	payload := dto.InferenceAPIRequest{Texts: texts}
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	url := r.cfg.InferenceAPI.BaseURL + "/predict"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Error("Inference API request failed", logger.ErrorField(err))
		return nil, fmt.Errorf("inference API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference API returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp dto.InferenceAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal inference response: %w", err)
	}
	if len(apiResp.Results) != len(texts) {
		return nil, fmt.Errorf("inference API returned %d results for %d texts", len(apiResp.Results), len(texts))
	}
	return apiResp.Results, nil
}
