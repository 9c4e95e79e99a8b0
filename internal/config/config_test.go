package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/venueprofit/internal/profitability"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"APP_ENV", "DB_PATH", "PORT", "LOG_LEVEL", "ADMIN_EMAIL", "ADMIN_PASSWORD", "SESSION_SECRET", "COST_MODE", "PROFIT_THRESHOLD"} {
		unsetenv(t, key)
	}
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./venue.db", cfg.DBPath)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsDev())
	assert.False(t, cfg.AuthEnabled())
	assert.Equal(t, profitability.DefaultPolicy(), cfg.Policy())
}

func TestLoad_PolicyOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("COST_MODE", "flat_rate")
	t.Setenv("PROFIT_THRESHOLD", "0.55")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, profitability.ModeFlatRate, cfg.CostMode)
	assert.InDelta(t, 0.55, cfg.Threshold, 1e-9)
	assert.False(t, cfg.IsDev())
}

func TestLoad_RejectsInvalidPolicy(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown mode":       {"COST_MODE": "per_hour"},
		"threshold too high": {"PROFIT_THRESHOLD": "1.5"},
		"threshold zero":     {"PROFIT_THRESHOLD": "0"},
		"threshold garbage":  {"PROFIT_THRESHOLD": "lots"},
		"auth without secret": {
			"ADMIN_EMAIL":    "ops@venue.test",
			"ADMIN_PASSWORD": "secret",
		},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
		})
	}
}
