package service

import (
	"context"
	"encoding/json"

	"bank-reviews-insights/internal/entity"
	"bank-reviews-insights/internal/pipeline/repository"
	"bank-reviews-insights/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// recordRun writes one pipeline_runs audit row. Failures to record are
// logged, not propagated: the batch outcome is already decided.
func recordRun(ctx context.Context, runRepo repository.PipelineRunRepository, log *logger.Logger, kind, status string, summary interface{}, runErr error) {
	details, err := json.Marshal(summary)
	if err != nil {
		log.Warn("Failed to marshal run details", logger.ErrorField(err))
		details = []byte("{}")
	}
	run := &entity.PipelineRun{
		ID:      uuid.NewString(),
		Kind:    kind,
		Status:  status,
		Details: datatypes.JSON(details),
	}
	if runErr != nil {
		run.ErrorMessage = runErr.Error()
	}
	if err := runRepo.Create(ctx, run); err != nil {
		log.Warn("Failed to record pipeline run", logger.ErrorField(err))
	}
}
