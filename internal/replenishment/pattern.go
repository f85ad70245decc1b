package replenishment

import "time"

// DailyDemand is one weekday record of a sales profile.
type DailyDemand struct {
	Weekday  time.Weekday
	Quantity int
}

// DemandPattern maps each weekday to the quantity sold that day.
//
// The pattern is built once from a list of records. When a weekday appears
// more than once the first record wins and later ones are kept aside in
// Ignored so callers can report them. Weekdays without a record sell nothing.
type DemandPattern struct {
	quantities [7]int
	known      [7]bool
	ignored    []DailyDemand
}

// NewDemandPattern builds a pattern from weekday records.
func NewDemandPattern(records []DailyDemand) DemandPattern {
	var p DemandPattern
	for _, r := range records {
		if r.Weekday < time.Sunday || r.Weekday > time.Saturday || p.known[r.Weekday] {
			p.ignored = append(p.ignored, r)
			continue
		}
		p.known[r.Weekday] = true
		p.quantities[r.Weekday] = r.Quantity
	}
	return p
}

// WeeklyDemand builds a pattern from quantities listed Monday through Sunday.
// Missing trailing days default to zero.
func WeeklyDemand(mondayToSunday ...int) DemandPattern {
	records := make([]DailyDemand, 0, len(mondayToSunday))
	for i, qty := range mondayToSunday {
		if i >= 7 {
			break
		}
		records = append(records, DailyDemand{
			Weekday:  time.Weekday((i + 1) % 7),
			Quantity: qty,
		})
	}
	return NewDemandPattern(records)
}

// Quantity returns the demand for a weekday.
func (p DemandPattern) Quantity(day time.Weekday) int {
	if day < time.Sunday || day > time.Saturday {
		return 0
	}
	return p.quantities[day]
}

// On returns the demand for the weekday of date.
func (p DemandPattern) On(date time.Time) int {
	return p.quantities[date.Weekday()]
}

// IsEmpty reports whether no weekday record was accepted.
func (p DemandPattern) IsEmpty() bool {
	for _, ok := range p.known {
		if ok {
			return false
		}
	}
	return true
}

// Ignored returns the records that lost to an earlier record for the same weekday.
func (p DemandPattern) Ignored() []DailyDemand {
	if len(p.ignored) == 0 {
		return nil
	}
	out := make([]DailyDemand, len(p.ignored))
	copy(out, p.ignored)
	return out
}
