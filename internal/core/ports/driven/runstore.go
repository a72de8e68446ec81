package driven

import (
	"context"

	"gitsniff/internal/core/domain"
)

// RunStore persists scan run history.
type RunStore interface {
	// SaveRun records one finished run.
	SaveRun(ctx context.Context, run domain.ScanRun) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.ScanRun, error)

	// Close releases the underlying storage.
	Close() error
}
