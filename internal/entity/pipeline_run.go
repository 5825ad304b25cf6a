package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Pipeline run kinds and statuses.
const (
	RunKindBaseLoad   = "base_load"
	RunKindEnrichment = "enrichment"

	RunStatusSucceeded = "succeeded"
	RunStatusFailed    = "failed"
)

// PipelineRun is the audit record of one batch call against the store: a
// base load or an enrichment update. Details carries the structured summary
// returned to the caller (rows seen, inserted, unmatched, ...).
type PipelineRun struct {
	ID           string         `gorm:"type:uuid;primaryKey" json:"id"`
	Kind         string         `gorm:"type:varchar(20);not null" json:"kind"`
	Status       string         `gorm:"type:varchar(20);not null" json:"status"`
	Details      datatypes.JSON `gorm:"type:jsonb" json:"details"`
	ErrorMessage string         `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the PipelineRun model.
func (PipelineRun) TableName() string {
	return "pipeline_runs"
}
