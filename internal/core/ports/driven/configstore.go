package driven

// ConfigStore holds flat, dot-keyed settings such as "paths.output".
type ConfigStore interface {
	// Get returns the raw value and whether the key is set.
	Get(key string) (any, bool)

	// GetString returns the value as a string, or "" when unset or not a string.
	GetString(key string) string

	// Set stores and persists a value.
	Set(key string, value any) error

	// Path locates the backing file, for display.
	Path() string
}
