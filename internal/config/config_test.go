package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 100, cfg.MaxAlerts)
	assert.Equal(t, "snippets", cfg.SnippetsDir)
	assert.False(t, cfg.NatsEnabled)
	assert.Equal(t, "alerts", cfg.NatsAlertsSubject)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.NotEmpty(t, cfg.APIKey)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8500")
	t.Setenv("API_KEY", "another-secret")
	t.Setenv("MAX_ALERTS", "25")
	t.Setenv("NATS_ENABLED", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg := Load()

	assert.Equal(t, 8500, cfg.Port)
	assert.Equal(t, "another-secret", cfg.APIKey)
	assert.Equal(t, 25, cfg.MaxAlerts)
	assert.True(t, cfg.NatsEnabled)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("MAX_ALERTS", "many")
	t.Setenv("NATS_ENABLED", "sometimes")

	cfg := Load()

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, 100, cfg.MaxAlerts)
	assert.False(t, cfg.NatsEnabled)
}
