package mcp

import (
	"context"
	"fmt"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// mockRecordService is a mock implementation of driving.RecordService.
type mockRecordService struct {
	cases    []domain.CaseRecord
	mode     domain.Mode
	override map[string]bool
	err      error
}

func (m *mockRecordService) Cases(_ context.Context) ([]domain.CaseRecord, error) {
	return m.cases, m.err
}

func (m *mockRecordService) Case(_ context.Context, caseNumber string) (*domain.CaseRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.cases {
		if m.cases[i].CaseNumber == caseNumber {
			return &m.cases[i], nil
		}
	}
	return nil, fmt.Errorf("%w: case %s", domain.ErrNotFound, caseNumber)
}

func (m *mockRecordService) ImportCases(_ context.Context, _ []byte) (domain.ImportResult, error) {
	return domain.ImportResult{}, m.err
}

func (m *mockRecordService) SetOverride(_ context.Context, caseNumber string, override bool) error {
	if m.err != nil {
		return m.err
	}
	if m.override == nil {
		m.override = make(map[string]bool)
	}
	m.override[caseNumber] = override
	return nil
}

func (m *mockRecordService) ClearCases(_ context.Context) error {
	return m.err
}

func (m *mockRecordService) Attorney(_ context.Context) (domain.AttorneyProfile, error) {
	return domain.AttorneyProfile{}, m.err
}

func (m *mockRecordService) SaveAttorney(_ context.Context, _ domain.AttorneyProfile) error {
	return m.err
}

func (m *mockRecordService) AlternateIdentity(_ context.Context) (domain.AlternateIdentity, error) {
	return domain.AlternateIdentity{}, m.err
}

func (m *mockRecordService) SaveAlternateIdentity(_ context.Context, _ domain.AlternateIdentity) error {
	return m.err
}

func (m *mockRecordService) ClearAlternateIdentity(_ context.Context) error {
	return m.err
}

func (m *mockRecordService) WarrantDetails(_ context.Context) (map[string]domain.WarrantDetails, error) {
	return nil, m.err
}

func (m *mockRecordService) SaveWarrantDetails(_ context.Context, _ domain.WarrantDetails) error {
	return m.err
}

func (m *mockRecordService) Mode(_ context.Context) (domain.Mode, error) {
	if m.mode == "" {
		return domain.ModeExpungement, m.err
	}
	return m.mode, m.err
}

func (m *mockRecordService) SetMode(_ context.Context, mode domain.Mode) error {
	m.mode = mode
	return m.err
}

// mockGenerateService is a mock implementation of driving.GenerateService.
type mockGenerateService struct {
	opts    domain.GenerateOptions
	report  *domain.BatchReport
	history []domain.BatchReport
	err     error
}

func (m *mockGenerateService) Generate(_ context.Context, opts domain.GenerateOptions) (*domain.BatchReport, error) {
	m.opts = opts
	return m.report, m.err
}

func (m *mockGenerateService) History(_ context.Context, _ int) ([]domain.BatchReport, error) {
	return m.history, m.err
}

func (m *mockGenerateService) Run(_ context.Context, runID string) (*domain.BatchReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.history {
		if m.history[i].RunID == runID {
			return &m.history[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// mockTemplateService is a mock implementation of driving.TemplateService.
type mockTemplateService struct {
	checks []domain.TemplateCheck
	err    error
}

func (m *mockTemplateService) List() []domain.TemplateDescriptor {
	return nil
}

func (m *mockTemplateService) Check(_ context.Context) ([]domain.TemplateCheck, error) {
	return m.checks, m.err
}

func testCases() []domain.CaseRecord {
	return []domain.CaseRecord{
		{CaseNumber: "1DTC-20-000001", DefendantName: "DOE, JANE", Expungeable: domain.ExpungeableAll},
		{CaseNumber: "1DTC-20-000002", DefendantName: "DOE, JANE", Expungeable: domain.ExpungeableNone,
			WarrantStatus: &domain.WarrantStatus{HasOutstandingWarrant: true, LatestWarrantType: domain.WarrantTypeBench}},
	}
}
