package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kokua-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

const jsonExport = `[
  {
    "CaseNumber": "1DTC-20-000001",
    "DefendantName": "Doe, Jane A",
    "CourtLocation": "Hilo District Court",
    "Expungeable": "All Expungeable",
    "charges": [{"count": "1", "charge": "Theft 4", "isExpungeable": {"status": "Expungeable"}}]
  },
  {
    "CaseNumber": "1DTC-20-000002",
    "DefendantName": "Doe, Jane A",
    "Expungeable": "None Expungeable",
    "warrantStatus": {"hasOutstandingWarrant": true, "latestWarrantType": "bench warrant"}
  }
]`

const yamlExport = `
cases:
  - CaseNumber: 1DTC-20-000002
    DefendantName: Doe, Jane A
    Expungeable: Some Expungeable
  - CaseNumber: 1DTC-20-000003
    DefendantName: Roe, Richard
    Expungeable: All Expungeable
`

func newTestRecordService() *RecordService {
	return NewRecordService(memory.NewRecordStore())
}

func TestRecordService_ImportCases(t *testing.T) {
	ctx := context.Background()
	service := newTestRecordService()

	result, err := service.ImportCases(ctx, []byte(jsonExport))
	require.NoError(t, err)
	assert.Equal(t, domain.ImportResult{Added: 2, Total: 2}, result)

	cases, err := service.Cases(ctx)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, "Hilo District Court", cases[0].CourtLocation)
	assert.Equal(t, "Theft 4", cases[0].Charges[0].Description)
	assert.True(t, cases[1].HasOutstandingWarrant())
}

func TestRecordService_ImportCases_MergeKeepsOverride(t *testing.T) {
	ctx := context.Background()
	service := newTestRecordService()

	_, err := service.ImportCases(ctx, []byte(jsonExport))
	require.NoError(t, err)
	require.NoError(t, service.SetOverride(ctx, "1DTC-20-000002", true))

	result, err := service.ImportCases(ctx, []byte(yamlExport))
	require.NoError(t, err)
	assert.Equal(t, domain.ImportResult{Added: 1, Updated: 1, Total: 3}, result)

	c, err := service.Case(ctx, "1dtc-20-000002")
	require.NoError(t, err)
	assert.Equal(t, domain.ExpungeableSome, c.Expungeable)
	assert.True(t, c.Override, "operator override survives re-import")

	cases, err := service.Cases(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1DTC-20-000003", cases[2].CaseNumber)
}

func TestRecordService_ImportCases_Formats(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		count   int
		wantErr bool
	}{
		{"json array", jsonExport, 2, false},
		{"json object", `{"cases": [{"CaseNumber": "X-1", "DefendantName": "Doe, Jane"}]}`, 1, false},
		{"yaml object", yamlExport, 2, false},
		{"yaml list", "- CaseNumber: Y-1\n  DefendantName: Roe, Richard\n", 1, false},
		{"skips missing case number", `[{"DefendantName": "Doe, Jane"}, {"CaseNumber": "Z-1"}]`, 1, false},
		{"empty", "  ", 0, true},
		{"broken json", `[{"CaseNumber": `, 0, true},
		{"broken yaml", "cases: [unterminated", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestRecordService()
			result, err := service.ImportCases(context.Background(), []byte(tt.data))
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.count, result.Total)
		})
	}
}

func TestRecordService_SetOverride_NotFound(t *testing.T) {
	err := newTestRecordService().SetOverride(context.Background(), "missing", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordService_ClearCases(t *testing.T) {
	ctx := context.Background()
	service := newTestRecordService()
	_, err := service.ImportCases(ctx, []byte(jsonExport))
	require.NoError(t, err)

	require.NoError(t, service.ClearCases(ctx))

	cases, err := service.Cases(ctx)
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestRecordService_Attorney(t *testing.T) {
	ctx := context.Background()
	service := newTestRecordService()

	profile, err := service.Attorney(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAttorneyProfile(), profile)

	require.NoError(t, service.SaveAttorney(ctx, domain.AttorneyProfile{
		Variant: domain.VariantPrivateCounsel,
		Name:    "Kai Akana",
	}))
	profile, err = service.Attorney(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.VariantPrivateCounsel, profile.Variant)
	assert.Equal(t, "Kai Akana", profile.Name)
	assert.Equal(t, domain.DefaultHeadDefenderName, profile.HeadDefenderName)

	err = service.SaveAttorney(ctx, domain.AttorneyProfile{Variant: "pro-se"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordService_AlternateIdentity(t *testing.T) {
	ctx := context.Background()
	service := newTestRecordService()

	identity, err := service.AlternateIdentity(ctx)
	require.NoError(t, err)
	assert.True(t, identity.IsZero())

	require.NoError(t, service.SaveAlternateIdentity(ctx, domain.AlternateIdentity{Last: "Smith"}))
	identity, err = service.AlternateIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Smith", identity.Last)

	require.NoError(t, service.ClearAlternateIdentity(ctx))
	identity, err = service.AlternateIdentity(ctx)
	require.NoError(t, err)
	assert.True(t, identity.IsZero())
}

func TestRecordService_WarrantDetails(t *testing.T) {
	ctx := context.Background()
	service := newTestRecordService()
	_, err := service.ImportCases(ctx, []byte(jsonExport))
	require.NoError(t, err)

	require.NoError(t, service.SaveWarrantDetails(ctx, domain.WarrantDetails{CaseNumber: " 1DTC-20-000001 ", ConsultationTown: "Kona"}))
	require.NoError(t, service.SaveWarrantDetails(ctx, domain.WarrantDetails{CaseNumber: "1DTC-20-000002"}))

	details, err := service.WarrantDetails(ctx)
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "Kona", details["1DTC-20-000001"].ConsultationTown)

	err = service.SaveWarrantDetails(ctx, domain.WarrantDetails{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordService_SaveWarrantDetails_CaseNumber(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		wantKey string
		wantErr error
	}{
		{name: "exact", number: "1DTC-20-000002", wantKey: "1DTC-20-000002"},
		{name: "lower case", number: "1dtc-20-000002", wantKey: "1DTC-20-000002"},
		{name: "padded", number: "  1Dtc-20-000002\t", wantKey: "1DTC-20-000002"},
		{name: "unknown case", number: "9XYZ-99-000999", wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			service := newTestRecordService()
			_, err := service.ImportCases(ctx, []byte(jsonExport))
			require.NoError(t, err)

			err = service.SaveWarrantDetails(ctx, domain.WarrantDetails{CaseNumber: tt.number, ConsultationTown: "Hilo"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			details, err := service.WarrantDetails(ctx)
			require.NoError(t, err)
			require.Len(t, details, 1)
			assert.Equal(t, "Hilo", details[tt.wantKey].ConsultationTown)
			assert.Equal(t, tt.wantKey, details[tt.wantKey].CaseNumber)
		})
	}
}

func TestRecordService_SaveWarrantDetails_ReplacesStaleKey(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRecordStore()
	service := NewRecordService(store)
	_, err := service.ImportCases(ctx, []byte(jsonExport))
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, KeyWarrantDetails, []byte(`{"1dtc-20-000002":{"caseNumber":"1dtc-20-000002","consultationTown":"Kona"}}`)))

	require.NoError(t, service.SaveWarrantDetails(ctx, domain.WarrantDetails{CaseNumber: "1dtc-20-000002", ConsultationTown: "Hilo"}))

	details, err := service.WarrantDetails(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.WarrantDetails{
		"1DTC-20-000002": {CaseNumber: "1DTC-20-000002", ConsultationTown: "Hilo"},
	}, details)
}

func TestRecordService_Mode(t *testing.T) {
	ctx := context.Background()
	service := newTestRecordService()

	mode, err := service.Mode(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeExpungement, mode)

	require.NoError(t, service.SetMode(ctx, domain.ModeWarrant))
	mode, err = service.Mode(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeWarrant, mode)

	assert.ErrorIs(t, service.SetMode(ctx, "subpoena"), domain.ErrInvalidInput)
}

func TestRecordService_CorruptRecord(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRecordStore()
	require.NoError(t, store.Set(ctx, KeyCases, []byte("{not json")))

	_, err := NewRecordService(store).Cases(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode cases")
}
