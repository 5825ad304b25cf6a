package dto

import "errors"

// ErrBatchTooSmall rejects a batch below the configured minimum of valid
// rows before any store mutation happens.
var ErrBatchTooSmall = errors.New("batch has fewer valid rows than the configured minimum")

// ErrNoRows rejects an empty enrichment batch.
var ErrNoRows = errors.New("batch contains no rows")
