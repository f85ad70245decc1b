package domain

import (
	"strings"
	"time"
)

var dayOfWeekNames = map[time.Weekday]string{
	time.Monday:    "MONDAY",
	time.Tuesday:   "TUESDAY",
	time.Wednesday: "WEDNESDAY",
	time.Thursday:  "THURSDAY",
	time.Friday:    "FRIDAY",
	time.Saturday:  "SATURDAY",
	time.Sunday:    "SUNDAY",
}

var dayOfWeekCodes = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// DayOfWeekName returns the stored name of a weekday (MONDAY, TUESDAY, ...).
func DayOfWeekName(day time.Weekday) string {
	if name, ok := dayOfWeekNames[day]; ok {
		return name
	}

	return ""
}

// ParseDayOfWeek returns the weekday for a name (case-insensitive).
func ParseDayOfWeek(name string) (time.Weekday, bool) {
	day, ok := dayOfWeekCodes[strings.ToLower(strings.TrimSpace(name))]

	return day, ok
}
