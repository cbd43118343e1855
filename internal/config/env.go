// Package config applies SHOPDESK_* environment overrides on top of
// stored settings.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
)

// EnvPrefix is prepended to every variable name declared on domain.AppSettings.
const EnvPrefix = "SHOPDESK_"

// ApplyEnv overrides fields of settings from the process environment.
// Variables that are not set leave the stored value untouched.
func ApplyEnv(settings *domain.AppSettings) error {
	return parse(settings, env.Options{Prefix: EnvPrefix})
}

// ApplyEnvFrom is ApplyEnv reading from environ instead of the process.
func ApplyEnvFrom(settings *domain.AppSettings, environ map[string]string) error {
	return parse(settings, env.Options{Prefix: EnvPrefix, Environment: environ})
}

func parse(settings *domain.AppSettings, opts env.Options) error {
	if err := env.ParseWithOptions(settings, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
