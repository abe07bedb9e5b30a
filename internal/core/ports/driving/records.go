package driving

import (
	"context"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// RecordService manages case records and operator-entered profiles.
type RecordService interface {
	// Cases returns every stored case in import order.
	Cases(ctx context.Context) ([]domain.CaseRecord, error)

	// Case returns a single case by number.
	// Returns domain.ErrNotFound if it does not exist.
	Case(ctx context.Context, caseNumber string) (*domain.CaseRecord, error)

	// ImportCases merges a scraper export (JSON or YAML) into the stored cases.
	ImportCases(ctx context.Context, data []byte) (domain.ImportResult, error)

	// SetOverride toggles the operator override on a case.
	SetOverride(ctx context.Context, caseNumber string, override bool) error

	// ClearCases removes every stored case.
	ClearCases(ctx context.Context) error

	// Attorney returns the attorney profile, with defaults applied.
	Attorney(ctx context.Context) (domain.AttorneyProfile, error)

	// SaveAttorney persists the attorney profile.
	SaveAttorney(ctx context.Context, profile domain.AttorneyProfile) error

	// AlternateIdentity returns the stored alternate identity.
	AlternateIdentity(ctx context.Context) (domain.AlternateIdentity, error)

	// SaveAlternateIdentity persists the alternate identity.
	SaveAlternateIdentity(ctx context.Context, identity domain.AlternateIdentity) error

	// ClearAlternateIdentity removes the alternate identity.
	ClearAlternateIdentity(ctx context.Context) error

	// WarrantDetails returns warrant facts keyed by case number.
	WarrantDetails(ctx context.Context) (map[string]domain.WarrantDetails, error)

	// SaveWarrantDetails stores the warrant facts for one case.
	SaveWarrantDetails(ctx context.Context, details domain.WarrantDetails) error

	// Mode returns the stored tool mode.
	Mode(ctx context.Context) (domain.Mode, error)

	// SetMode persists the tool mode.
	SetMode(ctx context.Context, mode domain.Mode) error
}
