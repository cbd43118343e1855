package driving

import "github.com/custodia-labs/shopdesk/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, with environment
	// overrides applied.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set parses raw for the named key and persists it.
	Set(key, raw string) error

	// Keys lists the settable keys.
	Keys() []string

	// Path returns where settings are stored.
	Path() string
}
