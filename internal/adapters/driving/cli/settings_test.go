package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
)

func TestSettingsShowCmd_Defaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(t, "", "settings", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "Data dir: (default: ~/.shopdesk/data)")
	assert.Contains(t, out, "Verbose: false")
	assert.Contains(t, out, "Max attempts: 5")
	assert.Contains(t, out, "Refill seconds: 30")
	assert.Contains(t, out, "Config file: :memory:")
}

func TestSettingsSetCmd(t *testing.T) {
	ts, cleanup := setupTestServicesWith()
	defer cleanup()

	out, err := executeCommand(t, "", "settings", "set", "auth.max_attempts", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Set auth.max_attempts = 3")

	settings, err := ts.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, settings.Auth.MaxAttempts)
}

func TestSettingsSetCmd_Invalid(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand(t, "", "settings", "set", "nope", "1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = executeCommand(t, "", "settings", "set", "auth.max_attempts")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}
