package driven

import "github.com/calebreed/verbump/internal/core/domain"

// SettingsStore provides access to the raw configuration.
// Implementations handle the storage format (e.g. TOML files).
// The store is read once at startup; nothing mutates configuration
// after initialisation.
type SettingsStore interface {
	// Load reads the raw settings from storage.
	// A missing configuration source yields defaults, not an error.
	Load() (domain.Settings, error)

	// Path returns the configuration file path.
	Path() string
}
