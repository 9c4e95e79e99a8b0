package seed

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/Simplici0/venueprofit/internal/auth"
	"github.com/Simplici0/venueprofit/internal/costs"
)

// Config contains the values required by startup seed.
type Config struct {
	AdminEmail    string
	AdminPassword string
	// Profiles overrides the default tariff when non-nil.
	Profiles []costs.Profile
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run seeds the default cost profiles and the operator account. Existing rows
// are never overwritten, so running it on every start keeps operator edits.
func Run(ctx context.Context, db *sql.DB, cfg Config, log *zap.Logger) (Stats, error) {
	if log == nil {
		log = zap.NewNop()
	}

	profiles := cfg.Profiles
	if profiles == nil {
		profiles = costs.DefaultProfiles()
	}

	stats := Stats{}

	inserted, err := costs.NewStore(db, log).SeedDefaults(ctx, profiles)
	if err != nil {
		return Stats{}, fmt.Errorf("seed cost profiles: %w", err)
	}
	stats.Inserts += inserted

	created, err := auth.EnsureUser(ctx, db, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return Stats{}, fmt.Errorf("seed operator account: %w", err)
	}
	if created {
		stats.Inserts++
	}

	log.Info("seed complete", zap.Int("inserts", stats.Inserts))
	return stats, nil
}
