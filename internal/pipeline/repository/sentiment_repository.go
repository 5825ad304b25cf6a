package repository

import (
	"context"

	"bank-reviews-insights/internal/pipeline/dto"
)

// SentimentRepository is the sentiment classifier collaborator: a black box
// that returns one (p_pos, p_neg) pair per input text, in input order.
// Labeling and scoring from the pair happen in the enrichment service, not
// here.
type SentimentRepository interface {
	Analyze(ctx context.Context, texts []string) ([]dto.SentimentProbs, error)
}
