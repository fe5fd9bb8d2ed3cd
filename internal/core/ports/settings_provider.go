package ports

import "github.com/AntonioJCosta/minish/internal/core/domain/settings"

// SettingsProvider defines the interface for sourcing interpreter settings,
// like a configuration file.
type SettingsProvider interface {
	// LoadSettings returns the configured settings, falling back to defaults.
	LoadSettings() (settings.Settings, error)
}
