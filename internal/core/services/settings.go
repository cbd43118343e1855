package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
	"github.com/custodia-labs/shopdesk/internal/core/ports/driven"
	"github.com/custodia-labs/shopdesk/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDataDir           = "storage.data_dir"
	keyVerbose           = "log.verbose"
	keyAuthMaxAttempts   = "auth.max_attempts"
	keyAuthRefillSeconds = "auth.refill_seconds"
)

// settableKeys lists keys accepted by Set, in display order.
var settableKeys = []string{keyDataDir, keyVerbose, keyAuthMaxAttempts, keyAuthRefillSeconds}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	overlay     func(*domain.AppSettings) error
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// SetOverlay registers a function applied to settings after they are read
// from the store, typically environment overrides.
func (s *SettingsService) SetOverlay(overlay func(*domain.AppSettings) error) {
	s.overlay = overlay
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	if s.configStore == nil {
		return nil, domain.ErrNotImplemented
	}
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Storage: domain.StorageSettings{
			DataDir: s.configStore.GetString(keyDataDir), // Empty means the default location
		},
		Log: domain.LogSettings{
			Verbose: s.getBool(keyVerbose, defaults.Log.Verbose),
		},
		Auth: domain.AuthSettings{
			MaxAttempts:   s.getInt(keyAuthMaxAttempts, defaults.Auth.MaxAttempts),
			RefillSeconds: s.getInt(keyAuthRefillSeconds, defaults.Auth.RefillSeconds),
		},
	}

	if s.overlay != nil {
		if err := s.overlay(settings); err != nil {
			return nil, fmt.Errorf("applying overrides: %w", err)
		}
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keyDataDir, settings.Storage.DataDir); err != nil {
		return fmt.Errorf("save data_dir: %w", err)
	}
	if err := s.configStore.Set(keyVerbose, settings.Log.Verbose); err != nil {
		return fmt.Errorf("save verbose: %w", err)
	}
	if err := s.configStore.Set(keyAuthMaxAttempts, settings.Auth.MaxAttempts); err != nil {
		return fmt.Errorf("save max_attempts: %w", err)
	}
	if err := s.configStore.Set(keyAuthRefillSeconds, settings.Auth.RefillSeconds); err != nil {
		return fmt.Errorf("save refill_seconds: %w", err)
	}

	return nil
}

// Set parses raw according to key and persists it.
func (s *SettingsService) Set(key, raw string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	var value any
	switch key {
	case keyDataDir:
		value = raw
	case keyVerbose:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false", domain.ErrInvalidInput, key)
		}
		value = b
	case keyAuthMaxAttempts, keyAuthRefillSeconds:
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return fmt.Errorf("%w: %s expects a positive integer", domain.ErrInvalidInput, key)
		}
		value = n
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys lists the settable keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settableKeys))
	copy(keys, settableKeys)
	return keys
}

// Path returns the config file path.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
