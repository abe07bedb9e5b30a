package domain

// DefaultTimezone is the zone printed on generated paperwork.
const DefaultTimezone = "Pacific/Honolulu"

// AppSettings holds file-backed application configuration.
type AppSettings struct {
	// TemplatesDir holds the template resources.
	TemplatesDir string

	// OutputDir receives emitted artifacts.
	OutputDir string

	// Timezone is the IANA zone for printed dates.
	Timezone string

	// DefaultMode is used when no mode is given or stored.
	DefaultMode Mode
}

// DefaultAppSettings returns settings with sensible defaults.
// Empty directories are resolved by the caller against the kokua home.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		OutputDir:   "out",
		Timezone:    DefaultTimezone,
		DefaultMode: ModeExpungement,
	}
}

// Validate checks that the settings are usable.
func (s *AppSettings) Validate() error {
	if !s.DefaultMode.IsValid() {
		return ErrInvalidInput
	}
	return nil
}
