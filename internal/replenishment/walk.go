package replenishment

import (
	"slices"
	"time"
)

// Mode selects what a simulation run keeps.
type Mode int

const (
	// ModeOrders keeps only the orders placed during the run.
	ModeOrders Mode = iota
	// ModeTrace also records the stock level at the end of every day.
	ModeTrace
)

// DayState is the simulation state at the start of a day.
type DayState struct {
	Date  time.Time
	Stock int
	// Orders holds every order placed so far; arrivals are matched on delivery date.
	Orders []Order
}

// DayResult describes what happened on one simulated day.
type DayResult struct {
	Date     time.Time
	Arrivals int
	Demand   int
	Stock    int
	Placed   *Order
}

// Run is the output of a full simulation.
type Run struct {
	Orders []Order
	Trace  []int
}

// Step advances the simulation by one day. The input state is not modified.
func Step(state DayState, pattern DemandPattern, params Parameters, horizonEnd time.Time) (DayState, DayResult) {
	today := state.Date
	result := DayResult{Date: today}

	result.Arrivals = arrivalsOn(today, state.Orders)
	result.Demand = pattern.On(today)
	stock := max(0, state.Stock+result.Arrivals-result.Demand)
	result.Stock = stock

	orders := state.Orders
	if isMonday(today) {
		if needed := WeeklyShortage(today, stock, pattern, horizonEnd); needed > 0 {
			quantity := RoundUpToMultiple(needed, params.OrderMultiple)
			order := mustOrder(today, today.AddDate(0, 0, params.LeadTimeDays), quantity)
			orders = append(slices.Clip(orders), order)
			result.Placed = &order
		}
	}

	return DayState{
		Date:   today.AddDate(0, 0, 1),
		Stock:  stock,
		Orders: orders,
	}, result
}

// Simulate folds Step over every day of the horizon.
func Simulate(initialStock int, params Parameters, pattern DemandPattern, horizon Horizon, mode Mode) Run {
	state := DayState{Date: horizon.Start, Stock: initialStock}

	var trace []int
	if mode == ModeTrace {
		trace = make([]int, 0, horizon.Days())
	}

	for !state.Date.After(horizon.End) {
		var day DayResult
		state, day = Step(state, pattern, params, horizon.End)
		if mode == ModeTrace {
			trace = append(trace, day.Stock)
		}
	}

	return Run{Orders: state.Orders, Trace: trace}
}

func arrivalsOn(date time.Time, orders []Order) int {
	total := 0
	for _, o := range orders {
		if o.DeliveryDate.Equal(date) {
			total += o.Quantity
		}
	}
	return total
}
