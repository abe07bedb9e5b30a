package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driving"
	"github.com/custodia-labs/kokua-cli/internal/logger"
)

// Ensure GenerateService implements the interface.
var _ driving.GenerateService = (*GenerateService)(nil)

// GenerateService builds an immutable run configuration from stored records
// and settings, then hands it to the assembler.
// Finished reports are kept in the run history when one is configured.
type GenerateService struct {
	records   driving.RecordService
	settings  driving.SettingsService
	assembler driving.DocumentAssembler
	history   driven.RunHistory
	now       func() time.Time
}

// NewGenerateService creates a new generate service.
// history may be nil.
func NewGenerateService(
	records driving.RecordService,
	settings driving.SettingsService,
	assembler driving.DocumentAssembler,
	history driven.RunHistory,
) *GenerateService {
	return &GenerateService{
		records:   records,
		settings:  settings,
		assembler: assembler,
		history:   history,
		now:       time.Now,
	}
}

// Generate assembles documents for the stored cases.
func (s *GenerateService) Generate(ctx context.Context, opts domain.GenerateOptions) (*domain.BatchReport, error) {
	cfg, err := s.runConfig(ctx, opts.Mode)
	if err != nil {
		return nil, err
	}

	cases, err := s.records.Cases(ctx)
	if err != nil {
		return nil, err
	}
	cases, err = filterCases(cases, opts.CaseNumbers)
	if err != nil {
		return nil, err
	}

	warrants, err := s.records.WarrantDetails(ctx)
	if err != nil {
		return nil, err
	}

	report, err := s.assembler.Assemble(ctx, cfg, domain.AssemblyInput{Cases: cases, Warrants: warrants})
	if err != nil {
		return nil, err
	}

	if s.history != nil {
		// Best effort: the documents are already emitted.
		if err := s.history.Record(context.WithoutCancel(ctx), report); err != nil {
			logger.Warn("recording run %s: %v", report.RunID, err)
		}
	}
	return report, nil
}

// History returns up to limit past reports, newest first.
func (s *GenerateService) History(ctx context.Context, limit int) ([]domain.BatchReport, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.Recent(ctx, limit)
}

// Run returns one past report by run id.
func (s *GenerateService) Run(ctx context.Context, runID string) (*domain.BatchReport, error) {
	if s.history == nil {
		return nil, domain.ErrNotFound
	}
	return s.history.Get(ctx, runID)
}

func (s *GenerateService) runConfig(ctx context.Context, mode domain.Mode) (domain.RunConfig, error) {
	if mode == "" {
		stored, err := s.records.Mode(ctx)
		if err != nil {
			return domain.RunConfig{}, err
		}
		mode = stored
	}
	if !mode.IsValid() {
		return domain.RunConfig{}, fmt.Errorf("%w: mode %q", domain.ErrInvalidInput, mode)
	}

	attorney, err := s.records.Attorney(ctx)
	if err != nil {
		return domain.RunConfig{}, err
	}
	alternate, err := s.records.AlternateIdentity(ctx)
	if err != nil {
		return domain.RunConfig{}, err
	}
	loc, err := s.settings.Location()
	if err != nil {
		return domain.RunConfig{}, err
	}

	return domain.RunConfig{
		Mode:      mode,
		Attorney:  attorney,
		Alternate: alternate,
		Now:       s.now(),
		Location:  loc,
	}, nil
}

// filterCases keeps the requested cases in stored order.
func filterCases(cases []domain.CaseRecord, numbers []string) ([]domain.CaseRecord, error) {
	if len(numbers) == 0 {
		return cases, nil
	}
	var out []domain.CaseRecord
	for _, n := range numbers {
		if indexOfCase(cases, n) < 0 {
			return nil, fmt.Errorf("%w: case %s", domain.ErrNotFound, strings.TrimSpace(n))
		}
	}
	for _, c := range cases {
		for _, n := range numbers {
			if strings.EqualFold(c.CaseNumber, strings.TrimSpace(n)) {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}
