package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save and restore environment variables after the test
	envVars := []string{"DATA_DIR", "APP_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT"}
	originalEnv := make(map[string]string)
	for _, key := range envVars {
		originalEnv[key] = os.Getenv(key)
		os.Unsetenv(key) // Clear before test
	}
	defer func() {
		for key, val := range originalEnv {
			if val != "" {
				os.Setenv(key, val)
			}
		}
	}()

	t.Run("Default values", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "data", cfg.Data.Dir)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 15, cfg.Server.ReadTimeoutSec)
		assert.Equal(t, 60, cfg.Server.WriteTimeoutSec)
	})

	t.Run("Custom environment variables", func(t *testing.T) {
		t.Setenv("DATA_DIR", "/var/lib/geodata")
		t.Setenv("APP_PORT", "9090")
		t.Setenv("SERVER_WRITE_TIMEOUT", "120")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "/var/lib/geodata", cfg.Data.Dir)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 120, cfg.Server.WriteTimeoutSec)
	})

	t.Run("Invalid integer fallback", func(t *testing.T) {
		t.Setenv("SERVER_READ_TIMEOUT", "not-a-number")
		cfg, err := Load()
		require.NoError(t, err)

		// Should return default value
		assert.Equal(t, 15, cfg.Server.ReadTimeoutSec)
	})
}
