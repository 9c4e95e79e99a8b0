package migrations

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Simplici0/venueprofit/internal/db"
)

func TestUpCreatesSchemaAndIsRepeatable(t *testing.T) {
	database, err := db.Open(filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, Up(database, nil))
	require.NoError(t, Up(database, nil))

	version, err := Version(database)
	require.NoError(t, err)
	require.Equal(t, int64(3), version)

	for _, table := range []string{"costs", "bookings", "users"} {
		var count int
		err := database.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count, "table %s", table)
	}
}

func TestUpReportsProgressThroughZap(t *testing.T) {
	database, err := db.Open(filepath.Join(t.TempDir(), "migrate-log.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	core, logs := observer.New(zapcore.InfoLevel)
	require.NoError(t, Up(database, zap.New(core)))

	applied := logs.FilterMessageSnippet("00001_create_costs.sql").All()
	require.NotEmpty(t, applied)
	assert.Equal(t, zapcore.InfoLevel, applied[0].Level)
	for _, entry := range logs.All() {
		assert.NotContains(t, entry.Message, "\n")
	}
}
