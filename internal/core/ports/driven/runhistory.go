package driven

import (
	"context"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// RunHistory keeps the reports of past assembly runs.
type RunHistory interface {
	// Record stores a finished report.
	Record(ctx context.Context, report *domain.BatchReport) error

	// Recent returns up to limit reports, newest first.
	Recent(ctx context.Context, limit int) ([]domain.BatchReport, error)

	// Get returns one report by run id, or domain.ErrNotFound.
	Get(ctx context.Context, runID string) (*domain.BatchReport, error)
}
