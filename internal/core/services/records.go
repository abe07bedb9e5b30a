package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driving"
	"github.com/custodia-labs/kokua-cli/internal/logger"
)

// Ensure RecordService implements the interface.
var _ driving.RecordService = (*RecordService)(nil)

// Record keys.
const (
	KeyCases             = "cases"
	KeyAttorneyInfo      = "attorneyInfo"
	KeyAlternateIdentity = "alternateIdentity"
	KeyWarrantDetails    = "warrantDetails"
	KeyToolMode          = "toolMode"
)

// RecordService manages case records and operator profiles in a RecordStore.
type RecordService struct {
	store driven.RecordStore
}

// NewRecordService creates a new record service.
func NewRecordService(store driven.RecordStore) *RecordService {
	return &RecordService{store: store}
}

// Cases returns every stored case in import order.
func (s *RecordService) Cases(ctx context.Context) ([]domain.CaseRecord, error) {
	var cases []domain.CaseRecord
	if _, err := s.get(ctx, KeyCases, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

// Case returns a single case by number.
func (s *RecordService) Case(ctx context.Context, caseNumber string) (*domain.CaseRecord, error) {
	cases, err := s.Cases(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOfCase(cases, caseNumber)
	if i < 0 {
		return nil, fmt.Errorf("%w: case %s", domain.ErrNotFound, caseNumber)
	}
	return &cases[i], nil
}

// ImportCases merges a scraper export into the stored cases.
// Cases are matched by case number; an existing operator override survives
// re-import.
func (s *RecordService) ImportCases(ctx context.Context, data []byte) (domain.ImportResult, error) {
	imported, err := decodeCases(data)
	if err != nil {
		return domain.ImportResult{}, err
	}

	cases, err := s.Cases(ctx)
	if err != nil {
		return domain.ImportResult{}, err
	}

	var result domain.ImportResult
	for _, c := range imported {
		c.CaseNumber = strings.TrimSpace(c.CaseNumber)
		if c.CaseNumber == "" {
			logger.Warn("Skipping imported case without a case number (%s)", c.DefendantName)
			continue
		}
		if i := indexOfCase(cases, c.CaseNumber); i >= 0 {
			c.Override = c.Override || cases[i].Override
			cases[i] = c
			result.Updated++
			continue
		}
		cases = append(cases, c)
		result.Added++
	}
	result.Total = len(cases)

	if err := s.set(ctx, KeyCases, cases); err != nil {
		return domain.ImportResult{}, err
	}
	logger.Debug("Imported cases: %d added, %d updated", result.Added, result.Updated)
	return result, nil
}

// SetOverride toggles the operator override on a case.
func (s *RecordService) SetOverride(ctx context.Context, caseNumber string, override bool) error {
	cases, err := s.Cases(ctx)
	if err != nil {
		return err
	}
	i := indexOfCase(cases, caseNumber)
	if i < 0 {
		return fmt.Errorf("%w: case %s", domain.ErrNotFound, caseNumber)
	}
	cases[i].Override = override
	return s.set(ctx, KeyCases, cases)
}

// ClearCases removes every stored case.
func (s *RecordService) ClearCases(ctx context.Context) error {
	return s.store.Delete(ctx, KeyCases)
}

// Attorney returns the attorney profile with defaults applied.
func (s *RecordService) Attorney(ctx context.Context) (domain.AttorneyProfile, error) {
	profile := domain.DefaultAttorneyProfile()
	if _, err := s.get(ctx, KeyAttorneyInfo, &profile); err != nil {
		return domain.AttorneyProfile{}, err
	}
	return profile.WithDefaults(), nil
}

// SaveAttorney persists the attorney profile.
func (s *RecordService) SaveAttorney(ctx context.Context, profile domain.AttorneyProfile) error {
	if profile.Variant != "" && !profile.Variant.IsValid() {
		return fmt.Errorf("%w: variant %q", domain.ErrInvalidInput, profile.Variant)
	}
	return s.set(ctx, KeyAttorneyInfo, profile.WithDefaults())
}

// AlternateIdentity returns the stored alternate identity.
func (s *RecordService) AlternateIdentity(ctx context.Context) (domain.AlternateIdentity, error) {
	var identity domain.AlternateIdentity
	if _, err := s.get(ctx, KeyAlternateIdentity, &identity); err != nil {
		return domain.AlternateIdentity{}, err
	}
	return identity, nil
}

// SaveAlternateIdentity persists the alternate identity.
func (s *RecordService) SaveAlternateIdentity(ctx context.Context, identity domain.AlternateIdentity) error {
	return s.set(ctx, KeyAlternateIdentity, identity)
}

// ClearAlternateIdentity removes the alternate identity.
func (s *RecordService) ClearAlternateIdentity(ctx context.Context) error {
	return s.store.Delete(ctx, KeyAlternateIdentity)
}

// WarrantDetails returns warrant facts keyed by case number.
func (s *RecordService) WarrantDetails(ctx context.Context) (map[string]domain.WarrantDetails, error) {
	details := make(map[string]domain.WarrantDetails)
	if _, err := s.get(ctx, KeyWarrantDetails, &details); err != nil {
		return nil, err
	}
	return details, nil
}

// SaveWarrantDetails stores the warrant facts for one stored case.
// The facts are keyed by the case's own number, whatever case was typed.
func (s *RecordService) SaveWarrantDetails(ctx context.Context, details domain.WarrantDetails) error {
	details.CaseNumber = strings.TrimSpace(details.CaseNumber)
	if details.CaseNumber == "" {
		return fmt.Errorf("%w: case number required", domain.ErrInvalidInput)
	}
	c, err := s.Case(ctx, details.CaseNumber)
	if err != nil {
		return err
	}
	details.CaseNumber = c.CaseNumber

	all, err := s.WarrantDetails(ctx)
	if err != nil {
		return err
	}
	for key := range all {
		if strings.EqualFold(key, details.CaseNumber) {
			delete(all, key)
		}
	}
	all[details.CaseNumber] = details
	return s.set(ctx, KeyWarrantDetails, all)
}

// Mode returns the stored tool mode, or expungement when none is stored.
func (s *RecordService) Mode(ctx context.Context) (domain.Mode, error) {
	var mode domain.Mode
	found, err := s.get(ctx, KeyToolMode, &mode)
	if err != nil {
		return "", err
	}
	if !found || !mode.IsValid() {
		return domain.ModeExpungement, nil
	}
	return mode, nil
}

// SetMode persists the tool mode.
func (s *RecordService) SetMode(ctx context.Context, mode domain.Mode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: mode %q", domain.ErrInvalidInput, mode)
	}
	return s.set(ctx, KeyToolMode, mode)
}

func (s *RecordService) get(ctx context.Context, key string, dst any) (bool, error) {
	raw, found, err := s.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *RecordService) set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// caseExport is the object form of a scraper export.
type caseExport struct {
	Cases []domain.CaseRecord `json:"cases" yaml:"cases"`
}

// decodeCases accepts a JSON or YAML document holding either a list of
// cases or an object with a "cases" list.
func decodeCases(data []byte) ([]domain.CaseRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty case export", domain.ErrInvalidInput)
	}

	var cases []domain.CaseRecord
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &cases); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	case '{':
		var export caseExport
		if err := json.Unmarshal(trimmed, &export); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		cases = export.Cases
	default:
		var node yaml.Node
		if err := yaml.Unmarshal(trimmed, &node); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		if len(node.Content) > 0 && node.Content[0].Kind == yaml.MappingNode {
			var export caseExport
			if err := node.Decode(&export); err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
			}
			cases = export.Cases
		} else if err := node.Decode(&cases); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	return cases, nil
}

func indexOfCase(cases []domain.CaseRecord, caseNumber string) int {
	caseNumber = strings.TrimSpace(caseNumber)
	for i := range cases {
		if strings.EqualFold(cases[i].CaseNumber, caseNumber) {
			return i
		}
	}
	return -1
}
