package replenishment

import "time"

// Horizon is the inclusive calendar range a simulation walks.
type Horizon struct {
	Start time.Time
	End   time.Time
}

var (
	// HorizonStart is the first simulated day (a Monday).
	HorizonStart = time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	// HorizonEnd is the last simulated day, inclusive.
	HorizonEnd = time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// DefaultHorizon returns the planning year used by every public operation.
func DefaultHorizon() Horizon {
	return Horizon{Start: HorizonStart, End: HorizonEnd}
}

// Days returns the number of simulated days, both ends included.
func (h Horizon) Days() int {
	if h.End.Before(h.Start) {
		return 0
	}
	return int(h.End.Sub(h.Start).Hours()/24) + 1
}

func isMonday(date time.Time) bool {
	return date.Weekday() == time.Monday
}
