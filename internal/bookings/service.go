package bookings

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Simplici0/venueprofit/internal/apperr"
	"github.com/Simplici0/venueprofit/internal/costs"
	"github.com/Simplici0/venueprofit/internal/ledger"
	"github.com/Simplici0/venueprofit/internal/money"
	"github.com/Simplici0/venueprofit/internal/profitability"
)

// ProfileStore is the cost configuration the service reads and updates.
type ProfileStore interface {
	Get(ctx context.Context, name string) (costs.Profile, error)
	List(ctx context.Context, category costs.Category) ([]costs.Profile, error)
	ListNames(ctx context.Context, category costs.Category) ([]string, error)
	Update(ctx context.Context, p costs.Profile) error
}

// Ledger is the booking store the service records into.
type Ledger interface {
	Create(ctx context.Context, rec ledger.Record) (int64, error)
	Get(ctx context.Context, id int64) (ledger.Record, error)
	List(ctx context.Context, f ledger.Filter) ([]ledger.Record, error)
	Update(ctx context.Context, id int64, p ledger.Patch) error
}

// Request carries the inputs of a calculation or a booking.
type Request struct {
	CustomerName   string
	Category       costs.Category
	UnitName       string
	NumberOfDays   int
	NumberOfPeople int
	SellingRate    float64
}

// Quote is a calculation for a request against the profile it used.
type Quote struct {
	Request Request
	Profile costs.Profile
	Result  profitability.Result
}

// EditRequest lists the booking fields an operator may change.
type EditRequest struct {
	CustomerName string
	Category     costs.Category
	UnitName     string
	SellingRate  float64
}

// Service validates operator input, runs the calculator and persists bookings.
type Service struct {
	profiles ProfileStore
	ledger   Ledger
	policy   profitability.Policy
	now      func() time.Time
	log      *zap.Logger
}

// Option customises a Service.
type Option func(*Service)

// WithClock overrides the clock used to date new bookings.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService wires a Service.
func NewService(profiles ProfileStore, l Ledger, policy profitability.Policy, log *zap.Logger, opts ...Option) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		profiles: profiles,
		ledger:   l,
		policy:   policy,
		now:      time.Now,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Policy returns the calculator policy in effect.
func (s *Service) Policy() profitability.Policy {
	return s.policy
}

// Preview calculates req without persisting anything. A zero selling rate is
// allowed and yields profitability.StatusRateRequired.
func (s *Service) Preview(ctx context.Context, req Request) (Quote, error) {
	if err := validateQuantities(req); err != nil {
		return Quote{}, err
	}
	return s.quote(ctx, req)
}

// Record validates req, calculates it from the current profile and stores the
// result as a new booking.
func (s *Service) Record(ctx context.Context, req Request) (ledger.Record, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.CustomerName == "" {
		return ledger.Record{}, apperr.Invalid("customer_name", "is required to save a booking")
	}
	if err := validateQuantities(req); err != nil {
		return ledger.Record{}, err
	}
	if req.SellingRate == 0 {
		return ledger.Record{}, apperr.Invalid("selling_rate", "must be greater than 0 to save a booking")
	}

	q, err := s.quote(ctx, req)
	if err != nil {
		return ledger.Record{}, err
	}

	rec := ledger.Record{
		Date:                dateOnly(s.now()),
		CustomerName:        req.CustomerName,
		Category:            string(q.Profile.Category),
		UnitName:            q.Profile.Name,
		NumberOfDays:        req.NumberOfDays,
		NumberOfPeople:      req.NumberOfPeople,
		SellingRate:         req.SellingRate,
		TotalUnitCost:       q.Result.Breakdown.UnitCost,
		TotalCost:           q.Result.Totals.TotalCost,
		TotalRevenue:        q.Result.Totals.TotalRevenue,
		ProfitMargin:        q.Result.Totals.ProfitMargin,
		ProfitMarginPercent: q.Result.Totals.ProfitMarginPercent,
		CostMode:            string(q.Result.Mode),
		Status:              string(q.Result.Status),
	}
	rec.DayOfWeek = rec.Date.Weekday().String()

	id, err := s.ledger.Create(ctx, rec)
	if err != nil {
		return ledger.Record{}, err
	}
	rec.ID = id

	return rec, nil
}

// Get returns booking id.
func (s *Service) Get(ctx context.Context, id int64) (ledger.Record, error) {
	return s.ledger.Get(ctx, id)
}

// List returns every booking in id order.
func (s *Service) List(ctx context.Context) ([]ledger.Record, error) {
	return s.ledger.List(ctx, ledger.Filter{})
}

// Search returns bookings whose customer or unit name contains text.
func (s *Service) Search(ctx context.Context, text string) ([]ledger.Record, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperr.Invalid("q", "enter a customer or room/hall name to search for")
	}
	return s.ledger.List(ctx, ledger.Filter{Text: text})
}

// SearchDateRange returns bookings dated between from and to inclusive. It
// rejects from after to before querying.
func (s *Service) SearchDateRange(ctx context.Context, from, to time.Time) ([]ledger.Record, error) {
	if from.IsZero() || to.IsZero() {
		return nil, apperr.Invalid("date", "select both a start and an end date")
	}
	from, to = dateOnly(from), dateOnly(to)
	if from.After(to) {
		return nil, apperr.Invalid("end_date", "must be on or after the start date (%s)", from.Format(ledger.DateLayout))
	}
	return s.ledger.List(ctx, ledger.Filter{From: from, To: to})
}

// Edit updates the mutable fields of booking id. The stored financial figures
// are not recalculated, so a changed selling rate leaves the snapshot stale.
func (s *Service) Edit(ctx context.Context, id int64, req EditRequest) (ledger.Record, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.UnitName = strings.TrimSpace(req.UnitName)

	switch {
	case req.CustomerName == "":
		return ledger.Record{}, apperr.Invalid("customer_name", "is required")
	case !req.Category.Valid():
		return ledger.Record{}, apperr.Invalid("category", "must be Hall or Room")
	case req.UnitName == "":
		return ledger.Record{}, apperr.Invalid("room_or_hall_name", "is required")
	case !finite(req.SellingRate):
		return ledger.Record{}, apperr.Invalid("selling_rate", "must be a finite number")
	case req.SellingRate < 0:
		return ledger.Record{}, apperr.Invalid("selling_rate", "must be greater than or equal to 0")
	}

	current, err := s.ledger.Get(ctx, id)
	if err != nil {
		return ledger.Record{}, err
	}

	category := string(req.Category)
	if err := s.ledger.Update(ctx, id, ledger.Patch{
		CustomerName: &req.CustomerName,
		Category:     &category,
		UnitName:     &req.UnitName,
		SellingRate:  &req.SellingRate,
	}); err != nil {
		return ledger.Record{}, err
	}

	if current.SellingRate != req.SellingRate || current.UnitName != req.UnitName {
		s.log.Warn("booking edited without recalculating financials",
			zap.Int64("id", id),
			zap.Float64("previous_rate", current.SellingRate),
			zap.Float64("rate", req.SellingRate),
			zap.String("unit", req.UnitName),
		)
	}

	return s.ledger.Get(ctx, id)
}

// Profiles lists cost profiles, optionally restricted to category.
func (s *Service) Profiles(ctx context.Context, category costs.Category) ([]costs.Profile, error) {
	return s.profiles.List(ctx, category)
}

// UnitNames lists the profile names of category.
func (s *Service) UnitNames(ctx context.Context, category costs.Category) ([]string, error) {
	return s.profiles.ListNames(ctx, category)
}

// Profile returns the cost profile called name.
func (s *Service) Profile(ctx context.Context, name string) (costs.Profile, error) {
	return s.profiles.Get(ctx, name)
}

// UpdateProfile validates and overwrites an existing cost profile. Bookings
// already recorded keep the figures computed from the previous values.
func (s *Service) UpdateProfile(ctx context.Context, p costs.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return s.profiles.Update(ctx, p)
}

func (s *Service) quote(ctx context.Context, req Request) (Quote, error) {
	profile, err := s.profiles.Get(ctx, req.UnitName)
	if err != nil {
		return Quote{}, err
	}
	if req.Category != "" && profile.Category != req.Category {
		return Quote{}, apperr.Invalid("room_or_hall_name", "%q is a %s, not a %s", profile.Name, profile.Category, req.Category)
	}

	result := profitability.Calculate(profile.CostInput(), profitability.BookingInput{
		SellingRate:    req.SellingRate,
		NumberOfDays:   req.NumberOfDays,
		NumberOfPeople: req.NumberOfPeople,
	}, s.policy)

	return Quote{Request: req, Profile: profile, Result: result}, nil
}

func validateQuantities(req Request) error {
	switch {
	case strings.TrimSpace(req.UnitName) == "":
		return apperr.Invalid("room_or_hall_name", "select a room or hall")
	case req.Category != "" && !req.Category.Valid():
		return apperr.Invalid("category", "must be Hall or Room")
	case req.NumberOfDays <= 0:
		return apperr.Invalid("number_of_days", "must be at least 1")
	case req.NumberOfPeople <= 0:
		return apperr.Invalid("number_of_people", "must be at least 1")
	case !finite(req.SellingRate):
		return apperr.Invalid("selling_rate", "must be a finite number")
	case req.SellingRate < 0:
		return apperr.Invalid("selling_rate", "must be greater than or equal to 0")
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// dateOnly truncates t to its UTC calendar day.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// String renders a one-line summary for logs and the CLI.
func (q Quote) String() string {
	return fmt.Sprintf("%s x%d days x%d people: cost %s revenue %s margin %s (%s)",
		q.Profile.Name, q.Request.NumberOfDays, q.Request.NumberOfPeople,
		money.WithSymbol(q.Result.Totals.TotalCost),
		money.WithSymbol(q.Result.Totals.TotalRevenue),
		money.WithSymbol(q.Result.Totals.ProfitMargin),
		q.Result.Status)
}
