package replenishment

import "time"

const lookaheadDays = 6

// WeeklyShortage projects stock over the six days after monday and returns
// the quantity needed to keep it from going negative, or 0 when the week is
// covered. The projection is not clamped; the scan stops at the first
// shortfall or once a day falls after horizonEnd.
func WeeklyShortage(monday time.Time, stock int, pattern DemandPattern, horizonEnd time.Time) int {
	projected := stock
	for offset := 1; offset <= lookaheadDays; offset++ {
		day := monday.AddDate(0, 0, offset)
		if day.After(horizonEnd) {
			break
		}

		projected -= pattern.On(day)
		if projected < 0 {
			return -projected + 1
		}
	}
	return 0
}
