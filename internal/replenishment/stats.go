package replenishment

import (
	"fmt"
	"time"
)

// MonthlyStats summarises the stock levels of one month.
type MonthlyStats struct {
	MinStock int
	MaxStock int
	AvgStock float64
}

// Update folds one daily stock reading into the record.
//
// A zero minimum is treated as "unset" and always replaced, and the average
// is a half-step smoothing ((avg + stock) / 2) rather than a true mean.
// Reports built on this output depend on both rules.
func (s *MonthlyStats) Update(stock int) {
	if s.MinStock == 0 || stock < s.MinStock {
		s.MinStock = stock
	}
	if stock > s.MaxStock {
		s.MaxStock = stock
	}
	s.AvgStock = (s.AvgStock + float64(stock)) / 2.0
}

// MonthKey formats the month of date as "YYYY-MM".
func MonthKey(date time.Time) string {
	return fmt.Sprintf("%d-%02d", date.Year(), int(date.Month()))
}

// AggregateMonthly groups a daily trace starting at horizonStart by month.
func AggregateMonthly(trace []int, horizonStart time.Time) map[string]MonthlyStats {
	stats := make(map[string]MonthlyStats)
	date := horizonStart
	for _, stock := range trace {
		key := MonthKey(date)
		record := stats[key]
		record.Update(stock)
		stats[key] = record
		date = date.AddDate(0, 0, 1)
	}
	return stats
}
