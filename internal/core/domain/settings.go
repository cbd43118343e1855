package domain

// AppSettings holds persisted application configuration.
type AppSettings struct {
	Storage StorageSettings
	Log     LogSettings
	Auth    AuthSettings
}

// StorageSettings configures where the database file lives.
type StorageSettings struct {
	// DataDir is the directory holding shopdesk.db.
	// Empty means ~/.shopdesk/data.
	DataDir string `env:"DATA_DIR"`
}

// LogSettings configures diagnostic output.
type LogSettings struct {
	// Verbose enables debug, info and warning lines on stderr.
	Verbose bool `env:"VERBOSE"`
}

// AuthSettings configures sign-in throttling.
type AuthSettings struct {
	// MaxAttempts is the burst of sign-in attempts allowed before throttling.
	MaxAttempts int `env:"AUTH_MAX_ATTEMPTS"`

	// RefillSeconds is how long it takes to regain one attempt.
	RefillSeconds int `env:"AUTH_REFILL_SECONDS"`
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Storage: StorageSettings{},
		Log:     LogSettings{Verbose: false},
		Auth: AuthSettings{
			MaxAttempts:   5,
			RefillSeconds: 30,
		},
	}
}

// Validate checks settings for values the application cannot run with.
func (s *AppSettings) Validate() error {
	if s.Auth.MaxAttempts < 1 || s.Auth.RefillSeconds < 1 {
		return ErrInvalidInput
	}
	return nil
}
