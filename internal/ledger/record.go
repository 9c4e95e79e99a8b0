package ledger

import "time"

// DateLayout is the storage format of Record.Date.
const DateLayout = "2006-01-02"

// Record is a historical snapshot of one rental transaction. Financial fields
// are computed from the cost profile as it was when the booking was recorded
// and are not refreshed when the profile changes later.
type Record struct {
	ID                  int64
	Date                time.Time
	DayOfWeek           string
	CustomerName        string
	Category            string
	UnitName            string
	NumberOfDays        int
	NumberOfPeople      int
	SellingRate         float64
	TotalUnitCost       float64
	TotalCost           float64
	TotalRevenue        float64
	ProfitMargin        float64
	ProfitMarginPercent float64
	CostMode            string
	Status              string
}

// Patch lists the fields an edit may change. Nil fields are left untouched.
type Patch struct {
	CustomerName *string
	Category     *string
	UnitName     *string
	SellingRate  *float64
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.CustomerName == nil && p.Category == nil && p.UnitName == nil && p.SellingRate == nil
}

// Filter narrows List. Text matches customer or unit name as a substring;
// From and To bound the booking date inclusively. Zero values disable a bound.
type Filter struct {
	Text string
	From time.Time
	To   time.Time
}
