package driving

import (
	"context"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// DocumentAssembler renders every eligible document for a set of cases.
type DocumentAssembler interface {
	// Assemble renders and emits documents in grouping order.
	// Per-document failures are reported in the batch, never returned.
	// An error is returned only when the run cannot start.
	Assemble(ctx context.Context, run domain.RunConfig, input domain.AssemblyInput) (*domain.BatchReport, error)
}

// GenerateService builds a run from stored records and settings.
type GenerateService interface {
	// Generate assembles documents for the stored cases.
	Generate(ctx context.Context, opts domain.GenerateOptions) (*domain.BatchReport, error)

	// History returns up to limit past reports, newest first.
	History(ctx context.Context, limit int) ([]domain.BatchReport, error)

	// Run returns one past report by run id.
	Run(ctx context.Context, runID string) (*domain.BatchReport, error)
}

// TemplateService inspects the registered templates.
type TemplateService interface {
	// List returns every registered template descriptor.
	List() []domain.TemplateDescriptor

	// Check loads each template and verifies it carries what its descriptor expects.
	Check(ctx context.Context) ([]domain.TemplateCheck, error)
}
