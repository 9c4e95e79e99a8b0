package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/venueprofit/internal/profitability"
)

// unsetenv registers a restore with t.Setenv and then removes key.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadDotEnv_QuotingAndExpansion(t *testing.T) {
	for _, key := range []string{"VENUE_PORT", "VENUE_DB", "VENUE_URL", "VENUE_MOTD"} {
		unsetenv(t, key)
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := []byte(`VENUE_PORT=9090
export VENUE_DB='./data/${VENUE_PORT}.db'
VENUE_URL="http://localhost:${VENUE_PORT}/calculator"
VENUE_MOTD="line one\nline two"
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	require.NoError(t, loadDotEnv(path))

	assert.Equal(t, "9090", os.Getenv("VENUE_PORT"))
	assert.Equal(t, "./data/${VENUE_PORT}.db", os.Getenv("VENUE_DB"), "single quotes are literal")
	assert.Equal(t, "http://localhost:9090/calculator", os.Getenv("VENUE_URL"))
	assert.Equal(t, "line one\nline two", os.Getenv("VENUE_MOTD"))
}

func TestLoad_EnvironmentWinsOverDotEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")

	content := []byte("PORT=9000\nCOST_MODE=flat_rate\nPROFIT_THRESHOLD=0.6\n")
	require.NoError(t, os.WriteFile(".env", content, 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, profitability.ModeFlatRate, cfg.CostMode)
	assert.Equal(t, 0.6, cfg.Threshold)
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	require.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}
