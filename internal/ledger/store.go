package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Simplici0/venueprofit/internal/apperr"
)

const recordColumns = `
	id, date, day_of_week, customer_name, category, room_or_hall_name,
	number_of_days, number_of_people, selling_rate, total_unit_cost, total_cost,
	total_revenue, profit_margin, profit_margin_percent, cost_mode, status`

// Store persists booking records in the bookings table.
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

// Create inserts rec and returns its assigned id. rec.ID is ignored.
func (s *Store) Create(ctx context.Context, rec Record) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO bookings (
			date, day_of_week, customer_name, category, room_or_hall_name,
			number_of_days, number_of_people, selling_rate, total_unit_cost, total_cost,
			total_revenue, profit_margin, profit_margin_percent, cost_mode, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.Date.Format(DateLayout),
		rec.Date.Weekday().String(),
		rec.CustomerName,
		rec.Category,
		rec.UnitName,
		rec.NumberOfDays,
		rec.NumberOfPeople,
		rec.SellingRate,
		rec.TotalUnitCost,
		rec.TotalCost,
		rec.TotalRevenue,
		rec.ProfitMargin,
		rec.ProfitMarginPercent,
		rec.CostMode,
		rec.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("insert booking: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read booking id: %w", err)
	}

	s.log.Info("booking recorded", zap.Int64("id", id), zap.String("unit", rec.UnitName), zap.String("status", rec.Status))
	return id, nil
}

// Get returns the booking with id.
func (s *Store) Get(ctx context.Context, id int64) (Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM bookings WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("booking %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("query booking: %w", err)
	}
	return rec, nil
}

// List returns the bookings matching f in id order.
func (s *Store) List(ctx context.Context, f Filter) ([]Record, error) {
	var (
		clauses []string
		args    []any
	)

	if text := strings.TrimSpace(f.Text); text != "" {
		pattern := "%" + escapeLike(text) + "%"
		clauses = append(clauses, `(customer_name LIKE ? ESCAPE '\' OR room_or_hall_name LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}
	if !f.From.IsZero() {
		clauses = append(clauses, `date >= ?`)
		args = append(args, f.From.Format(DateLayout))
	}
	if !f.To.IsZero() {
		clauses = append(clauses, `date <= ?`)
		args = append(args, f.To.Format(DateLayout))
	}

	query := `SELECT ` + recordColumns + ` FROM bookings`
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, ` AND `)
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return records, nil
}

// Update applies p to booking id. Derived financial fields are left as they
// were recorded.
func (s *Store) Update(ctx context.Context, id int64, p Patch) error {
	if p.Empty() {
		// Still report unknown ids.
		_, err := s.Get(ctx, id)
		return err
	}

	var (
		sets []string
		args []any
	)
	if p.CustomerName != nil {
		sets = append(sets, `customer_name = ?`)
		args = append(args, *p.CustomerName)
	}
	if p.Category != nil {
		sets = append(sets, `category = ?`)
		args = append(args, *p.Category)
	}
	if p.UnitName != nil {
		sets = append(sets, `room_or_hall_name = ?`)
		args = append(args, *p.UnitName)
	}
	if p.SellingRate != nil {
		sets = append(sets, `selling_rate = ?`)
		args = append(args, *p.SellingRate)
	}

	args = append(args, id)
	result, err := s.db.ExecContext(ctx, `UPDATE bookings SET `+strings.Join(sets, `, `)+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("booking %d: %w", id, apperr.ErrNotFound)
	}

	s.log.Info("booking updated", zap.Int64("id", id))
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	var date string
	err := row.Scan(
		&rec.ID,
		&date,
		&rec.DayOfWeek,
		&rec.CustomerName,
		&rec.Category,
		&rec.UnitName,
		&rec.NumberOfDays,
		&rec.NumberOfPeople,
		&rec.SellingRate,
		&rec.TotalUnitCost,
		&rec.TotalCost,
		&rec.TotalRevenue,
		&rec.ProfitMargin,
		&rec.ProfitMarginPercent,
		&rec.CostMode,
		&rec.Status,
	)
	if err != nil {
		return Record{}, err
	}

	rec.Date, err = time.Parse(DateLayout, date)
	if err != nil {
		return Record{}, fmt.Errorf("parse booking date %q: %w", date, err)
	}
	return rec, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
