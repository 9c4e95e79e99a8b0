package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCmd(t *testing.T) {
	cmd := MigrateCmd()
	assert.Equal(t, "migrate", cmd.Use)
	assert.Equal(t, "Apply all pending database migrations", cmd.Short)
}

func TestSeedCmd(t *testing.T) {
	cmd := SeedCmd()
	assert.Equal(t, "seed", cmd.Use)
	assert.Equal(t, "Insert the default cost profiles and operator account", cmd.Short)
}

func TestQuoteCmd(t *testing.T) {
	cmd := QuoteCmd()
	assert.Equal(t, "quote", cmd.Use)
	assert.Equal(t, "Calculate the profitability of a booking", cmd.Short)

	flags := cmd.Flags()
	for _, name := range []string{"unit", "days", "people", "rate", "mode", "save", "customer"} {
		assert.NotNil(t, flags.Lookup(name), name)
	}
}

func TestBookingsCmd(t *testing.T) {
	cmd := BookingsCmd()
	assert.Equal(t, "bookings", cmd.Use)

	search, _, err := cmd.Find([]string{"search"})
	require.NoError(t, err)
	for _, name := range []string{"q", "from", "to"} {
		assert.NotNil(t, search.Flags().Lookup(name), name)
	}
}

func TestRootCmdPersistentDBFlag(t *testing.T) {
	root := NewRootCmd()
	assert.Equal(t, "venuectl", root.Use)
	assert.NotNil(t, root.PersistentFlags().Lookup("db"))

	for _, name := range []string{"migrate", "seed", "costs", "quote", "bookings"} {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}

// execute runs venuectl against dbPath from an empty working directory so no
// stray .env file is picked up.
func execute(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(append([]string{"--db", dbPath}, args...))

	err := root.Execute()
	return out.String(), err
}

func newSeededDB(t *testing.T) string {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("LOG_LEVEL", "error")

	dbPath := filepath.Join(t.TempDir(), "venuectl.db")

	out, err := execute(t, dbPath, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "at version 3")

	out, err = execute(t, dbPath, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 19 rows")

	return dbPath
}

func TestSeedIsIdempotent(t *testing.T) {
	dbPath := newSeededDB(t)

	out, err := execute(t, dbPath, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 0 rows")
}

func TestCostsList(t *testing.T) {
	dbPath := newSeededDB(t)

	out, err := execute(t, dbPath, "costs", "list", "--category", "Room")
	require.NoError(t, err)
	assert.Contains(t, out, "Presidential Suite")
	assert.NotContains(t, out, "ACROBAT HALL")

	_, err = execute(t, dbPath, "costs", "list", "--category", "Tent")
	require.Error(t, err)
}

func TestQuotePerOccupantAndFlatRate(t *testing.T) {
	dbPath := newSeededDB(t)

	out, err := execute(t, dbPath, "quote", "--unit", "ACROBAT HALL", "--days", "2", "--people", "3", "--rate", "20000")
	require.NoError(t, err)
	assert.Contains(t, out, "cost N150024.66")
	assert.Contains(t, out, "revenue N120000.00")
	assert.Contains(t, out, "margin -N30024.66")
	assert.Contains(t, out, "Not Profitable")

	out, err = execute(t, dbPath, "quote", "--unit", "ACROBAT HALL", "--days", "2", "--people", "3", "--rate", "20000", "--mode", "flat_rate")
	require.NoError(t, err)
	assert.Contains(t, out, "cost N25008.22")
	assert.Contains(t, out, "37.48%")

	_, err = execute(t, dbPath, "quote", "--unit", "ACROBAT HALL", "--mode", "hourly")
	require.Error(t, err)

	_, err = execute(t, dbPath, "quote", "--unit", "MOON HALL", "--rate", "100")
	require.Error(t, err)
}

func TestQuoteSaveAndSearch(t *testing.T) {
	dbPath := newSeededDB(t)

	_, err := execute(t, dbPath, "quote", "--unit", "Deluxe", "--rate", "5000", "--save")
	require.Error(t, err, "saving without a customer must fail")

	out, err := execute(t, dbPath, "quote", "--unit", "ACROBAT HALL", "--days", "2", "--people", "3", "--rate", "20000", "--save", "--customer", "Ada Obi")
	require.NoError(t, err)
	assert.Contains(t, out, "saved booking #1 for Ada Obi")

	out, err = execute(t, dbPath, "bookings", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada Obi")
	assert.Contains(t, out, "150024.66")

	out, err = execute(t, dbPath, "bookings", "search", "--q", "acrobat")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada Obi")

	out, err = execute(t, dbPath, "bookings", "search", "--q", "nobody")
	require.NoError(t, err)
	assert.Contains(t, out, "No records found.")

	_, err = execute(t, dbPath, "bookings", "search", "--from", "2024-03-07", "--to", "2024-03-06")
	require.Error(t, err)

	_, err = execute(t, dbPath, "bookings", "search")
	require.Error(t, err)
}
