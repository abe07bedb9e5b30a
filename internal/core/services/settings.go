package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyTemplatesDir = "paths.templates"
	KeyOutputDir    = "paths.output"
	KeyTimezone     = "render.timezone"
	KeyDefaultMode  = "render.mode"
)

// SettingsKeys lists the settings that can be changed with Set.
var SettingsKeys = []string{KeyTemplatesDir, KeyOutputDir, KeyTimezone, KeyDefaultMode}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		TemplatesDir: s.getString(KeyTemplatesDir, defaults.TemplatesDir),
		OutputDir:    s.getString(KeyOutputDir, defaults.OutputDir),
		Timezone:     s.getString(KeyTimezone, defaults.Timezone),
		DefaultMode:  s.getMode(defaults.DefaultMode),
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if _, err := time.LoadLocation(settings.Timezone); err != nil {
		return fmt.Errorf("%w: timezone %q", domain.ErrInvalidInput, settings.Timezone)
	}

	if err := s.configStore.Set(KeyTemplatesDir, settings.TemplatesDir); err != nil {
		return fmt.Errorf("save templates dir: %w", err)
	}
	if err := s.configStore.Set(KeyOutputDir, settings.OutputDir); err != nil {
		return fmt.Errorf("save output dir: %w", err)
	}
	if err := s.configStore.Set(KeyTimezone, settings.Timezone); err != nil {
		return fmt.Errorf("save timezone: %w", err)
	}
	if err := s.configStore.Set(KeyDefaultMode, settings.DefaultMode.String()); err != nil {
		return fmt.Errorf("save mode: %w", err)
	}
	return nil
}

// Set updates a single setting by its config key.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case KeyTemplatesDir:
		settings.TemplatesDir = value
	case KeyOutputDir:
		settings.OutputDir = value
	case KeyTimezone:
		settings.Timezone = value
	case KeyDefaultMode:
		settings.DefaultMode = domain.Mode(value)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Location returns the configured timezone.
func (s *SettingsService) Location() (*time.Location, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", settings.Timezone, err)
	}
	return loc, nil
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getMode(defaultVal domain.Mode) domain.Mode {
	mode := domain.Mode(s.configStore.GetString(KeyDefaultMode))
	if mode.IsValid() {
		return mode
	}
	return defaultVal
}
