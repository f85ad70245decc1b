package replenishment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDemandPattern_FirstRecordWins(t *testing.T) {
	p := NewDemandPattern([]DailyDemand{
		{Weekday: time.Monday, Quantity: 5},
		{Weekday: time.Tuesday, Quantity: 7},
		{Weekday: time.Monday, Quantity: 50},
	})

	assert.Equal(t, 5, p.Quantity(time.Monday))
	assert.Equal(t, 7, p.Quantity(time.Tuesday))
	assert.Equal(t, 0, p.Quantity(time.Sunday), "missing weekdays sell nothing")

	ignored := p.Ignored()
	require.Len(t, ignored, 1)
	assert.Equal(t, DailyDemand{Weekday: time.Monday, Quantity: 50}, ignored[0])
}

func TestNewDemandPattern_Empty(t *testing.T) {
	p := NewDemandPattern(nil)
	assert.True(t, p.IsEmpty())
	assert.Nil(t, p.Ignored())
	assert.Equal(t, 0, p.On(HorizonStart))
}

func TestWeeklyDemand_MapsMondayToSunday(t *testing.T) {
	p := WeeklyDemand(1, 2, 3, 4, 5, 6, 7)

	assert.False(t, p.IsEmpty())
	assert.Equal(t, 1, p.Quantity(time.Monday))
	assert.Equal(t, 6, p.Quantity(time.Saturday))
	assert.Equal(t, 7, p.Quantity(time.Sunday))
	// 2025-01-06 is a Monday.
	assert.Equal(t, 1, p.On(HorizonStart))
	assert.Equal(t, 7, p.On(HorizonStart.AddDate(0, 0, 6)))
}

func TestNewOrder_Validation(t *testing.T) {
	day := HorizonStart

	order, err := NewOrder(day, day.AddDate(0, 0, 3), 12)
	require.NoError(t, err)
	assert.Equal(t, 12, order.Quantity)

	_, err = NewOrder(day, day, 0)
	assert.NoError(t, err, "same-day delivery of nothing is a valid shape")

	_, err = NewOrder(day, day.AddDate(0, 0, 1), -1)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = NewOrder(day, day.AddDate(0, 0, -1), 12)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestMustOrder_PanicsOnInvalidShape(t *testing.T) {
	assert.Panics(t, func() {
		mustOrder(HorizonStart, HorizonStart.AddDate(0, 0, -2), 5)
	})
}
