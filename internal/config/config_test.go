package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "DEFAULT_COUNTRY", "MAX_YEARS", "SHUTDOWN_TIMEOUT", "MAX_RATE"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "sweden", cfg.DefaultCountry)
	assert.Equal(t, 5, cfg.MaxYears)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 100.0, cfg.MaxRate)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_COUNTRY", "norway")
	t.Setenv("MAX_YEARS", "7")
	t.Setenv("MAX_RATE", "35.5")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "norway", cfg.DefaultCountry)
	assert.Equal(t, 7, cfg.MaxYears)
	assert.Equal(t, 35.5, cfg.MaxRate)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("MAX_PURCHASE_PRICE", "lots")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, 1e9, cfg.MaxPurchasePrice)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}
