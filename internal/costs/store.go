package costs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Simplici0/venueprofit/internal/apperr"
)

const profileColumns = `name, category, utility_cost, maintenance_cost, staffing_cost, consumable_cost, marketing_cost, asset_cost, lifespan`

// Store persists cost profiles in the costs table.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// NewStore returns a Store backed by db.
func NewStore(db *sql.DB, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{db: db, log: log}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (Profile, error) {
	var p Profile
	var category string
	err := row.Scan(
		&p.Name,
		&category,
		&p.UtilityCost,
		&p.MaintenanceCost,
		&p.StaffingCost,
		&p.ConsumableCost,
		&p.MarketingCost,
		&p.AssetCost,
		&p.Lifespan,
	)
	p.Category = Category(category)
	return p, err
}

// Get returns the profile called name.
func (s *Store) Get(ctx context.Context, name string) (Profile, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM costs WHERE name = ?`, name)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, fmt.Errorf("cost profile %q: %w", name, apperr.ErrNotFound)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("query cost profile: %w", err)
	}
	return p, nil
}

// List returns all profiles, or only those of category when it is non-empty,
// in insertion order.
func (s *Store) List(ctx context.Context, category Category) ([]Profile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+profileColumns+`
		FROM costs
		WHERE (? = '' OR category = ?)
		ORDER BY rowid
	`, string(category), string(category))
	if err != nil {
		return nil, fmt.Errorf("query cost profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cost profile: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cost profiles: %w", err)
	}

	return profiles, nil
}

// ListNames returns the names of category's profiles in insertion order.
func (s *Store) ListNames(ctx context.Context, category Category) ([]string, error) {
	profiles, err := s.List(ctx, category)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	return names, nil
}

// Upsert inserts p or replaces every field of the existing row with the same name.
func (s *Store) Upsert(ctx context.Context, p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO costs (`+profileColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			category = excluded.category,
			utility_cost = excluded.utility_cost,
			maintenance_cost = excluded.maintenance_cost,
			staffing_cost = excluded.staffing_cost,
			consumable_cost = excluded.consumable_cost,
			marketing_cost = excluded.marketing_cost,
			asset_cost = excluded.asset_cost,
			lifespan = excluded.lifespan
	`, profileArgs(p)...)
	if err != nil {
		return fmt.Errorf("upsert cost profile: %w", err)
	}

	s.log.Info("cost profile saved", zap.String("name", p.Name), zap.String("category", string(p.Category)))
	return nil
}

// Update overwrites an existing profile. It fails with apperr.ErrNotFound when
// no profile is called p.Name.
func (s *Store) Update(ctx context.Context, p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE costs
		SET
			category = ?,
			utility_cost = ?,
			maintenance_cost = ?,
			staffing_cost = ?,
			consumable_cost = ?,
			marketing_cost = ?,
			asset_cost = ?,
			lifespan = ?
		WHERE name = ?
	`,
		string(p.Category),
		p.UtilityCost,
		p.MaintenanceCost,
		p.StaffingCost,
		p.ConsumableCost,
		p.MarketingCost,
		p.AssetCost,
		p.Lifespan,
		p.Name,
	)
	if err != nil {
		return fmt.Errorf("update cost profile: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update cost profile: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("cost profile %q: %w", p.Name, apperr.ErrNotFound)
	}

	s.log.Info("cost profile updated", zap.String("name", p.Name))
	return nil
}

// SeedDefaults inserts every profile whose name is not already present and
// never touches existing rows. It returns the number of rows inserted.
func (s *Store) SeedDefaults(ctx context.Context, defaults []Profile) (int, error) {
	for _, p := range defaults {
		if err := p.Validate(); err != nil {
			return 0, fmt.Errorf("default profile %q: %w", p.Name, err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed transaction: %w", err)
	}

	inserted := 0
	for _, p := range defaults {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO costs (`+profileColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(name) DO NOTHING
		`, profileArgs(p)...)
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert default profile %q: %w", p.Name, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert default profile %q: %w", p.Name, err)
		}
		inserted += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed transaction: %w", err)
	}

	return inserted, nil
}

func profileArgs(p Profile) []any {
	return []any{
		p.Name,
		string(p.Category),
		p.UtilityCost,
		p.MaintenanceCost,
		p.StaffingCost,
		p.ConsumableCost,
		p.MarketingCost,
		p.AssetCost,
		p.Lifespan,
	}
}
