package profitability

// DaysPerYear is the fixed year length used for straight-line depreciation.
// Leap years are not adjusted for.
const DaysPerYear = 365

// DefaultProfitThreshold is the margin-to-revenue ratio a booking must strictly
// exceed to be classified as profitable.
const DefaultProfitThreshold = 0.7

// Mode selects how operating cost and revenue scale with a booking.
type Mode string

const (
	// ModePerOccupant scales cost and revenue by days * people.
	ModePerOccupant Mode = "per_occupant"
	// ModeFlatRate charges operating costs once per booking, accrues
	// depreciation per day and scales revenue by days only.
	ModeFlatRate Mode = "flat_rate"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModePerOccupant || m == ModeFlatRate
}

// Status is the profitability classification of a booking.
type Status string

const (
	StatusProfitable    Status = "Profitable"
	StatusNotProfitable Status = "Not Profitable"
	// StatusRateRequired is returned when revenue is zero and the margin ratio
	// is undefined.
	StatusRateRequired Status = "Rate required"
)

// CostInput holds the daily operating costs of one rentable unit.
type CostInput struct {
	UtilityCost     float64
	MaintenanceCost float64
	StaffingCost    float64
	ConsumableCost  float64
	MarketingCost   float64
	AssetCost       float64
	LifespanYears   int
}

// BookingInput holds the booking-level parameters of a calculation.
type BookingInput struct {
	SellingRate    float64
	NumberOfDays   int
	NumberOfPeople int
}

// Policy groups the tunable business rules applied by Calculate.
type Policy struct {
	Mode      Mode
	Threshold float64
}

// DefaultPolicy returns the per-occupant mode with the default threshold.
func DefaultPolicy() Policy {
	return Policy{Mode: ModePerOccupant, Threshold: DefaultProfitThreshold}
}

// Breakdown contains the per-day intermediate values.
type Breakdown struct {
	DailyDepreciation float64
	UnitCost          float64
}

// Totals contains the aggregate financial figures of a booking.
type Totals struct {
	TotalCost           float64
	TotalRevenue        float64
	ProfitMargin        float64
	ProfitMarginPercent float64
}

// Result groups the full calculation output.
type Result struct {
	Mode      Mode
	Breakdown Breakdown
	Totals    Totals
	Status    Status
}

// DailyDepreciation amortizes assetCost over lifespanYears of DaysPerYear days.
// A non-positive lifespan yields zero depreciation.
func DailyDepreciation(assetCost float64, lifespanYears int) float64 {
	if lifespanYears <= 0 {
		return 0
	}
	return assetCost / float64(lifespanYears*DaysPerYear)
}

// UnitCost is the cost of operating a unit for one day.
func UnitCost(utility, maintenance, staffing, consumable, marketing, dailyDepreciation float64) float64 {
	return utility + maintenance + staffing + consumable + marketing + dailyDepreciation
}

// ComputeFinancials aggregates unit cost and selling rate per occupant-day.
func ComputeFinancials(sellingRate, unitCost float64, days, people int) Totals {
	occupantDays := float64(days) * float64(people)
	return newTotals(unitCost*occupantDays, sellingRate*occupantDays)
}

// ComputeFlatFinancials treats operatingCost as a flat charge for the whole
// booking independent of occupancy, adds depreciation for each day and bills
// sellingRate per day.
func ComputeFlatFinancials(sellingRate, operatingCost, dailyDepreciation float64, days int) Totals {
	return newTotals(operatingCost+dailyDepreciation*float64(days), sellingRate*float64(days))
}

func newTotals(totalCost, totalRevenue float64) Totals {
	margin := totalRevenue - totalCost

	percent := 0.0
	if totalRevenue != 0 {
		percent = margin / totalRevenue * 100
	}

	return Totals{
		TotalCost:           totalCost,
		TotalRevenue:        totalRevenue,
		ProfitMargin:        margin,
		ProfitMarginPercent: percent,
	}
}

// ClassifyStatus compares profitMargin/totalRevenue against threshold.
// The comparison is strict: a ratio equal to threshold is not profitable.
func ClassifyStatus(profitMargin, totalRevenue, threshold float64) Status {
	if totalRevenue == 0 {
		return StatusRateRequired
	}
	if profitMargin/totalRevenue > threshold {
		return StatusProfitable
	}
	return StatusNotProfitable
}

// Calculate runs the full chain: depreciation, unit cost, totals and status.
func Calculate(cost CostInput, booking BookingInput, policy Policy) Result {
	if !policy.Mode.Valid() {
		policy.Mode = ModePerOccupant
	}
	if policy.Threshold == 0 {
		policy.Threshold = DefaultProfitThreshold
	}

	depreciation := DailyDepreciation(cost.AssetCost, cost.LifespanYears)
	unitCost := UnitCost(
		cost.UtilityCost,
		cost.MaintenanceCost,
		cost.StaffingCost,
		cost.ConsumableCost,
		cost.MarketingCost,
		depreciation,
	)

	var totals Totals
	switch policy.Mode {
	case ModeFlatRate:
		operating := UnitCost(cost.UtilityCost, cost.MaintenanceCost, cost.StaffingCost, cost.ConsumableCost, cost.MarketingCost, 0)
		totals = ComputeFlatFinancials(booking.SellingRate, operating, depreciation, booking.NumberOfDays)
	default:
		totals = ComputeFinancials(booking.SellingRate, unitCost, booking.NumberOfDays, booking.NumberOfPeople)
	}

	return Result{
		Mode: policy.Mode,
		Breakdown: Breakdown{
			DailyDepreciation: depreciation,
			UnitCost:          unitCost,
		},
		Totals: totals,
		Status: ClassifyStatus(totals.ProfitMargin, totals.TotalRevenue, policy.Threshold),
	}
}
