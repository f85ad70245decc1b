package replenishment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeeklyShortage(t *testing.T) {
	reference := WeeklyDemand(5, 5, 5, 5, 5, 10, 10)
	lastMonday := time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		monday  time.Time
		stock   int
		pattern DemandPattern
		want    int
	}{
		{
			// Tue 10, Wed 5, Thu 0, Fri -5.
			name:    "shortfall on friday",
			monday:  HorizonStart,
			stock:   15,
			pattern: reference,
			want:    6,
		},
		{
			name:    "covered week",
			monday:  HorizonStart,
			stock:   40,
			pattern: reference,
			want:    0,
		},
		{
			// Tue..Sun sums to 40, Sunday would land exactly on zero.
			name:    "exactly enough",
			monday:  HorizonStart,
			stock:   40,
			pattern: WeeklyDemand(0, 5, 5, 5, 5, 10, 10),
			want:    0,
		},
		{
			name:    "stops at first shortfall",
			monday:  HorizonStart,
			stock:   0,
			pattern: reference,
			want:    6,
		},
		{
			name:    "empty pattern",
			monday:  HorizonStart,
			stock:   0,
			pattern: NewDemandPattern(nil),
			want:    0,
		},
		{
			// Only Tue 30 and Wed 31 remain inside the horizon.
			name:    "horizon end cuts the lookahead",
			monday:  lastMonday,
			stock:   0,
			pattern: WeeklyDemand(0, 0, 0, 8, 8, 8, 8),
			want:    0,
		},
		{
			name:    "shortfall before horizon end",
			monday:  lastMonday,
			stock:   2,
			pattern: WeeklyDemand(0, 0, 5, 8, 8, 8, 8),
			want:    4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeeklyShortage(tt.monday, tt.stock, tt.pattern, HorizonEnd)
			assert.Equal(t, tt.want, got)
		})
	}
}
