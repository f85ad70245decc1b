package replenishment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referencePattern() DemandPattern {
	return WeeklyDemand(5, 5, 5, 5, 5, 10, 10)
}

func date(month time.Month, day int) time.Time {
	return time.Date(2025, month, day, 0, 0, 0, 0, time.UTC)
}

func TestDefaultHorizon_Days(t *testing.T) {
	h := DefaultHorizon()
	assert.Equal(t, time.Monday, h.Start.Weekday())
	assert.Equal(t, 360, h.Days())
	assert.Equal(t, 0, Horizon{Start: h.End, End: h.Start}.Days())
}

func TestComputeOrderPlan_ReferenceScenario(t *testing.T) {
	orders := ComputeOrderPlan(20, 3, 12, referencePattern())

	require.NotEmpty(t, orders)
	assert.True(t, orders[0].OrderDate.Equal(HorizonStart), "first order must be placed on the first day")
	assert.True(t, orders[0].DeliveryDate.Equal(date(time.January, 9)))
	assert.Equal(t, 12, orders[0].Quantity)

	// Stock is back to zero every Monday, so each of the 52 Mondays orders 12.
	assert.Len(t, orders, 52)
	for _, o := range orders {
		assert.Equal(t, time.Monday, o.OrderDate.Weekday())
		assert.Equal(t, 12, o.Quantity)
		assert.True(t, o.DeliveryDate.Equal(o.OrderDate.AddDate(0, 0, 3)))
	}
}

func TestComputeOrderPlan_Properties(t *testing.T) {
	patterns := map[string]DemandPattern{
		"reference":  referencePattern(),
		"heavy":      WeeklyDemand(10, 10, 10, 10, 10, 15, 15),
		"weekend":    WeeklyDemand(0, 0, 0, 0, 0, 40, 25),
		"single day": WeeklyDemand(0, 0, 17),
	}

	for name, pattern := range patterns {
		for _, initial := range []int{0, 5, 20, 300} {
			for _, lead := range []int{0, 1, 3, 5, 9} {
				for _, multiple := range []int{1, 5, 12, 30} {
					orders := ComputeOrderPlan(initial, lead, multiple, pattern)
					for _, o := range orders {
						assert.Equal(t, time.Monday, o.OrderDate.Weekday(), name)
						assert.Positive(t, o.Quantity, name)
						assert.Zero(t, o.Quantity%multiple, name)
						assert.True(t, o.DeliveryDate.Equal(o.OrderDate.AddDate(0, 0, lead)), name)
					}

					trace := SimulateTrace(initial, lead, multiple, pattern)
					require.Len(t, trace, 360)
					for i, stock := range trace {
						assert.GreaterOrEqual(t, stock, 0, "%s day %d", name, i)
					}
				}
			}
		}
	}
}

func TestComputeOrderPlan_LowInitialStock(t *testing.T) {
	orders := ComputeOrderPlan(5, 3, 12, referencePattern())

	require.NotEmpty(t, orders)
	assert.True(t, orders[0].OrderDate.Equal(HorizonStart))

	for _, stock := range SimulateTrace(5, 3, 12, referencePattern()) {
		assert.GreaterOrEqual(t, stock, 0)
	}
}

func TestComputeOrderPlan_LeadTimeShiftsDeliveries(t *testing.T) {
	for _, lead := range []int{1, 3, 5} {
		orders := ComputeOrderPlan(20, lead, 12, referencePattern())
		require.NotEmpty(t, orders, "lead %d", lead)
		for _, o := range orders {
			assert.Equal(t, lead, int(o.DeliveryDate.Sub(o.OrderDate).Hours()/24))
			assert.Zero(t, o.Quantity%12)
		}
	}
}

func TestComputeOrderPlan_NoDemandNoOrders(t *testing.T) {
	assert.Empty(t, ComputeOrderPlan(0, 3, 12, NewDemandPattern(nil)))
}

func TestSimulateTrace_ReferenceFirstWeeks(t *testing.T) {
	trace := SimulateTrace(20, 3, 12, referencePattern())

	// Jan 6..19: the Thursday delivery of 12 is the only inflow each week.
	want := []int{15, 10, 5, 12, 7, 0, 0, 0, 0, 0, 7, 2, 0, 0}
	assert.Equal(t, want, trace[:len(want)])
}

func TestStep_AppliesArrivalsThenDemand(t *testing.T) {
	thursday := date(time.January, 9)
	state := DayState{
		Date:  thursday,
		Stock: 5,
		Orders: []Order{
			{OrderDate: HorizonStart, DeliveryDate: thursday, Quantity: 12},
			{OrderDate: HorizonStart, DeliveryDate: thursday.AddDate(0, 0, 1), Quantity: 24},
		},
	}

	next, day := Step(state, referencePattern(), Parameters{LeadTimeDays: 3, OrderMultiple: 12}, HorizonEnd)

	assert.Equal(t, 12, day.Arrivals)
	assert.Equal(t, 5, day.Demand)
	assert.Equal(t, 12, day.Stock)
	assert.Nil(t, day.Placed)
	assert.True(t, next.Date.Equal(thursday.AddDate(0, 0, 1)))
	assert.Equal(t, 12, next.Stock)
}

func TestStep_ClampsAtZero(t *testing.T) {
	saturday := date(time.January, 11)
	_, day := Step(DayState{Date: saturday, Stock: 3}, referencePattern(), Parameters{OrderMultiple: 12}, HorizonEnd)
	assert.Equal(t, 0, day.Stock)
}

func TestStep_DoesNotMutateInputState(t *testing.T) {
	monday := date(time.January, 13)
	backing := make([]Order, 1, 8)
	backing[0] = Order{OrderDate: HorizonStart, DeliveryDate: date(time.January, 9), Quantity: 12}
	state := DayState{Date: monday, Stock: 0, Orders: backing}

	next, day := Step(state, referencePattern(), Parameters{LeadTimeDays: 3, OrderMultiple: 12}, HorizonEnd)

	require.NotNil(t, day.Placed)
	assert.Equal(t, 12, day.Placed.Quantity)
	assert.Len(t, state.Orders, 1)
	assert.Len(t, next.Orders, 2)
	assert.Equal(t, Order{}, backing[:2][1], "spare capacity of the input must stay untouched")
}

func TestStep_ZeroLeadTimeOrderNeverArrives(t *testing.T) {
	// Arrivals are settled before the Monday decision, so a same-day delivery
	// is never counted.
	run := Simulate(0, Parameters{LeadTimeDays: 0, OrderMultiple: 10}, referencePattern(), DefaultHorizon(), ModeTrace)

	require.NotEmpty(t, run.Orders)
	for _, stock := range run.Trace {
		assert.Equal(t, 0, stock)
	}
}
