package costs

import (
	"context"
	"database/sql"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/venueprofit/internal/apperr"
	"github.com/Simplici0/venueprofit/internal/db"
	"github.com/Simplici0/venueprofit/internal/migrations"
)

func newTestStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "costs-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, migrations.Up(database, nil))
	return NewStore(database, nil), database
}

func sampleProfile() Profile {
	return Profile{
		Name:            "TEST HALL",
		Category:        CategoryHall,
		UtilityCost:     100,
		MaintenanceCost: 50,
		StaffingCost:    200,
		ConsumableCost:  10,
		MarketingCost:   5,
		AssetCost:       3650,
		Lifespan:        2,
	}
}

func TestUpsertThenGetRoundTrips(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	p := sampleProfile()
	require.NoError(t, store.Upsert(ctx, p))

	got, err := store.Get(ctx, p.Name)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	p.StaffingCost = 999
	p.Category = CategoryRoom
	require.NoError(t, store.Upsert(ctx, p))

	got, err = store.Get(ctx, p.Name)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestGetUnknownProfileIsNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "NOWHERE")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdateUnknownProfileIsNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Update(context.Background(), sampleProfile())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpsertRejectsInvalidProfileWithoutWriting(t *testing.T) {
	store, database := newTestStore(t)
	ctx := context.Background()

	cases := map[string]func(*Profile){
		"empty name":        func(p *Profile) { p.Name = "  " },
		"unknown category":  func(p *Profile) { p.Category = "Suite" },
		"negative utility":  func(p *Profile) { p.UtilityCost = -1 },
		"negative asset":    func(p *Profile) { p.AssetCost = -0.01 },
		"infinite utility":  func(p *Profile) { p.UtilityCost = math.Inf(1) },
		"NaN marketing":     func(p *Profile) { p.MarketingCost = math.NaN() },
		"zero lifespan":     func(p *Profile) { p.Lifespan = 0 },
		"negative lifespan": func(p *Profile) { p.Lifespan = -3 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := sampleProfile()
			mutate(&p)

			err := store.Upsert(ctx, p)
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err), "got %v", err)
		})
	}

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM costs`).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestSeedDefaultsIsInsertIfAbsent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	defaults := DefaultProfiles()

	inserted, err := store.SeedDefaults(ctx, defaults)
	require.NoError(t, err)
	assert.Equal(t, len(defaults), inserted)

	edited := defaults[0]
	edited.UtilityCost = 1
	require.NoError(t, store.Update(ctx, edited))

	before, err := store.List(ctx, "")
	require.NoError(t, err)

	inserted, err = store.SeedDefaults(ctx, defaults)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	after, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, before, after)

	got, err := store.Get(ctx, edited.Name)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.UtilityCost)
}

func TestListNamesByCategoryKeepsSeedOrder(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.SeedDefaults(ctx, DefaultProfiles())
	require.NoError(t, err)

	halls, err := store.ListNames(ctx, CategoryHall)
	require.NoError(t, err)
	require.Len(t, halls, 12)
	assert.Equal(t, "ACROBAT HALL", halls[0])
	assert.Equal(t, "CECILIA HALL", halls[len(halls)-1])

	rooms, err := store.ListNames(ctx, CategoryRoom)
	require.NoError(t, err)
	assert.Equal(t, []string{"Deluxe", "Executive", "Royal", "Royal Single", "Ambassadorial Suite", "Royal Double", "Presidential Suite"}, rooms)
}
