package repository

import (
	"context"

	"bank-reviews-insights/internal/entity"

	"gorm.io/gorm"
)

// PipelineRunRepository records the audit history of batch runs.
type PipelineRunRepository interface {
	Create(ctx context.Context, run *entity.PipelineRun) error
	FindRecent(ctx context.Context, limit int) ([]entity.PipelineRun, error)
}

// NewPipelineRunRepository creates a new instance of PipelineRunRepository.
func NewPipelineRunRepository(db *gorm.DB) PipelineRunRepository {
	return &pipelineRunRepository{db: db}
}

type pipelineRunRepository struct {
	db *gorm.DB
}

func (r *pipelineRunRepository) Create(ctx context.Context, run *entity.PipelineRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *pipelineRunRepository) FindRecent(ctx context.Context, limit int) ([]entity.PipelineRun, error) {
	var runs []entity.PipelineRun
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}
