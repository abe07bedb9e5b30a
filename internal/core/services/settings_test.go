package services

import (
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kokua-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()
	require.NoError(t, err)

	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults, *settings)
	assert.Equal(t, defaults, service.GetDefaults())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		KeyTemplatesDir: "/srv/templates",
		KeyOutputDir:    "/srv/out",
		KeyTimezone:     "UTC",
		KeyDefaultMode:  "warrant",
	})

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)
	assert.Equal(t, "/srv/templates", settings.TemplatesDir)
	assert.Equal(t, "/srv/out", settings.OutputDir)
	assert.Equal(t, "UTC", settings.Timezone)
	assert.Equal(t, domain.ModeWarrant, settings.DefaultMode)
}

func TestSettingsService_Get_InvalidModeReturnsDefault(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{KeyDefaultMode: "subpoena"})

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)
	assert.Equal(t, domain.ModeExpungement, settings.DefaultMode)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
	}{
		{"templates dir", KeyTemplatesDir, "/srv/templates", false},
		{"output dir", KeyOutputDir, "out", false},
		{"timezone", KeyTimezone, "America/Los_Angeles", false},
		{"mode", KeyDefaultMode, "warrant", false},
		{"invalid timezone", KeyTimezone, "Mars/Olympus_Mons", true},
		{"invalid mode", KeyDefaultMode, "subpoena", true},
		{"unknown key", "render.font", "Helvetica", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			err := NewSettingsService(store).Set(tt.key, tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, store.GetString(tt.key))
		})
	}
}

func TestSettingsService_Location(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	loc, err := service.Location()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTimezone, loc.String())

	store := memory.NewConfigStore(map[string]any{KeyTimezone: "Nowhere/Special"})
	_, err = NewSettingsService(store).Location()
	assert.Error(t, err)
}
