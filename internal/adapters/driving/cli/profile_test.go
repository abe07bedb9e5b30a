package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

func TestAttorneyShowCmd_Defaults(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute("attorney", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Office of the Public Defender")
	assert.Contains(t, out, domain.DefaultHeadDefenderName)
}

func TestAttorneySetCmd(t *testing.T) {
	ts, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute("attorney", "set",
		"--variant", "private",
		"--name", "Jane Roe",
		"--firm", "Roe LLLC",
		"--address1", "1 Main St",
		"--circuit", "First")

	require.NoError(t, err)
	assert.Contains(t, out, "Attorney profile saved.")

	a, err := ts.records.Attorney(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.VariantPrivateCounsel, a.Variant)
	assert.Equal(t, "Jane Roe", a.Name)
	assert.Equal(t, "Roe LLLC", a.FirmName)
	assert.Equal(t, "1 Main St", a.Address1)
	assert.Equal(t, "First", a.CircuitOrdinal)

	out, err = execute("attorney")
	require.NoError(t, err)
	assert.Contains(t, out, "Private Counsel")
	assert.Contains(t, out, "Roe LLLC")
}

func TestAttorneySetCmd_KeepsUnchangedFields(t *testing.T) {
	ts, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute("attorney", "set", "--name", "Jane Roe", "--registration", "1234")
	require.NoError(t, err)
	_, err = execute("attorney", "set", "--registration", "5678")
	require.NoError(t, err)

	a, err := ts.records.Attorney(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", a.Name)
	assert.Equal(t, "5678", a.Registration)
}

func TestAttorneySetCmd_Errors(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute("attorney", "set", "--variant", "prosecutor")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = execute("attorney", "set")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no fields given")
}

func TestIdentityCmds(t *testing.T) {
	ts, cleanup := setupTestServices(t)
	defer cleanup()
	ctx := context.Background()

	out, err := execute("identity", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No alternate identity set")

	_, err = execute("identity", "set", "--last", "Smith", "--address1", "1 Main St", "--address2", "Apt 2")
	require.NoError(t, err)

	id, err := ts.records.AlternateIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Smith", id.Last)
	assert.Empty(t, id.First)

	out, err = execute("identity")
	require.NoError(t, err)
	assert.Contains(t, out, "(replaces the scraped name)")
	assert.Contains(t, out, "1 Main St, Apt 2")

	out, err = execute("identity", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Alternate identity cleared.")

	id, err = ts.records.AlternateIdentity(ctx)
	require.NoError(t, err)
	assert.True(t, id.IsZero())
}

func TestIdentitySetCmd_NoFields(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute("identity", "set")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no fields given")
}

func TestWarrantCmds(t *testing.T) {
	ts, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute("warrant", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No warrant details entered.")

	out, err = execute("warrant", "set", "1DTC-20-000002",
		"--consultation-date", "01/15/2024",
		"--consultation-town", "Kapolei",
		"--consulted-at-event",
		"--amount", "500")
	require.NoError(t, err)
	assert.Contains(t, out, "Warrant details saved for 1DTC-20-000002.")

	all, err := ts.records.WarrantDetails(context.Background())
	require.NoError(t, err)
	w := all["1DTC-20-000002"]
	assert.Equal(t, "01/15/2024", w.ConsultationDate)
	assert.Equal(t, "Kapolei", w.ConsultationTown)
	assert.True(t, w.ConsultedAtEvent)
	assert.Equal(t, "500", w.WarrantAmount)

	out, err = execute("warrant", "show", "1DTC-20-000002")
	require.NoError(t, err)
	assert.Contains(t, out, "01/15/2024 Kapolei")
	assert.Contains(t, out, "(at a court event)")

	_, err = execute("warrant", "show", "1DTC-20-000001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWarrantSetCmd_CaseNumberIgnoresCase(t *testing.T) {
	ts, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute("warrant", "set", "1dtc-20-000002", "--consultation-town", "Hilo")
	require.NoError(t, err)
	assert.Contains(t, out, "Warrant details saved for 1DTC-20-000002.")

	_, err = execute("warrant", "set", "1Dtc-20-000002", "--amount", "250")
	require.NoError(t, err)

	all, err := ts.records.WarrantDetails(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Hilo", all["1DTC-20-000002"].ConsultationTown)
	assert.Equal(t, "250", all["1DTC-20-000002"].WarrantAmount)

	out, err = execute("warrant", "show", "1dtc-20-000002")
	require.NoError(t, err)
	assert.Contains(t, out, "1DTC-20-000002")

	_, err = execute("warrant", "set", "9XYZ-99-000999", "--amount", "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWarrantSetCmd_NoFields(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute("warrant", "set", "1DTC-20-000002")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no fields given")
}

func TestModeCmd(t *testing.T) {
	ts, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute("mode")
	require.NoError(t, err)
	assert.Contains(t, out, "Mode: expungement")

	out, err = execute("mode", "warrant")
	require.NoError(t, err)
	assert.Contains(t, out, "Mode set to warrant.")

	mode, err := ts.records.Mode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ModeWarrant, mode)

	_, err = execute("mode", "divorce")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, sortedKeys(map[string]int{"c": 3, "a": 1, "b": 2}))
	assert.Empty(t, sortedKeys(map[string]int{}))
}
