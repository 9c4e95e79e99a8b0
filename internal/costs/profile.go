package costs

import (
	"math"
	"strings"

	"github.com/Simplici0/venueprofit/internal/apperr"
	"github.com/Simplici0/venueprofit/internal/profitability"
)

// Category distinguishes halls from room categories.
type Category string

const (
	CategoryHall Category = "Hall"
	CategoryRoom Category = "Room"
)

// Categories lists the known categories in display order.
var Categories = []Category{CategoryHall, CategoryRoom}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c == CategoryHall || c == CategoryRoom
}

// Profile is the recurring daily cost structure of one rentable unit.
// Operating costs are currency per day; AssetCost is a one-time amount
// amortized over Lifespan years.
type Profile struct {
	Name            string
	Category        Category
	UtilityCost     float64
	MaintenanceCost float64
	StaffingCost    float64
	ConsumableCost  float64
	MarketingCost   float64
	AssetCost       float64
	Lifespan        int
}

// Validate checks the profile before it is written.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return apperr.Invalid("name", "is required")
	}
	if !p.Category.Valid() {
		return apperr.Invalid("category", "must be Hall or Room, got %q", p.Category)
	}

	for _, f := range []struct {
		field string
		value float64
	}{
		{"utility_cost", p.UtilityCost},
		{"maintenance_cost", p.MaintenanceCost},
		{"staffing_cost", p.StaffingCost},
		{"consumable_cost", p.ConsumableCost},
		{"marketing_cost", p.MarketingCost},
		{"asset_cost", p.AssetCost},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return apperr.Invalid(f.field, "must be a finite number")
		}
		if f.value < 0 {
			return apperr.Invalid(f.field, "must be greater than or equal to 0")
		}
	}

	if p.Lifespan <= 0 {
		return apperr.Invalid("lifespan", "must be at least 1 year")
	}
	return nil
}

// CostInput converts the profile into calculator input.
func (p Profile) CostInput() profitability.CostInput {
	return profitability.CostInput{
		UtilityCost:     p.UtilityCost,
		MaintenanceCost: p.MaintenanceCost,
		StaffingCost:    p.StaffingCost,
		ConsumableCost:  p.ConsumableCost,
		MarketingCost:   p.MarketingCost,
		AssetCost:       p.AssetCost,
		LifespanYears:   p.Lifespan,
	}
}
