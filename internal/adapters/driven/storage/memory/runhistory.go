package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driven"
)

// Ensure RunHistory implements the interface.
var _ driven.RunHistory = (*RunHistory)(nil)

// RunHistory is an in-memory implementation of driven.RunHistory.
type RunHistory struct {
	mu      sync.RWMutex
	reports []domain.BatchReport
}

// NewRunHistory creates an empty run history.
func NewRunHistory() *RunHistory {
	return &RunHistory{}
}

// Record stores a copy of the report.
func (h *RunHistory) Record(_ context.Context, report *domain.BatchReport) error {
	if report == nil || report.RunID == "" {
		return domain.ErrInvalidInput
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	cp := *report
	cp.Results = append([]domain.ArtifactResult(nil), report.Results...)
	h.reports = append(h.reports, cp)
	return nil
}

// Recent returns up to limit reports, newest first.
func (h *RunHistory) Recent(_ context.Context, limit int) ([]domain.BatchReport, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := append([]domain.BatchReport(nil), h.reports...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Get returns one report by run id.
func (h *RunHistory) Get(_ context.Context, runID string) (*domain.BatchReport, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for i := range h.reports {
		if h.reports[i].RunID == runID {
			cp := h.reports[i]
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}
