package replenishment

// ComputeOrderPlan simulates the planning year and returns the orders placed.
// The orders carry no product identity; callers attach it before persisting.
func ComputeOrderPlan(initialStock, leadTimeDays, orderMultiple int, pattern DemandPattern) []Order {
	params := Parameters{LeadTimeDays: leadTimeDays, OrderMultiple: orderMultiple}
	return Simulate(initialStock, params, pattern, DefaultHorizon(), ModeOrders).Orders
}

// ComputeOptimalMultiple returns the best order multiple in [5,30].
func ComputeOptimalMultiple(initialStock, leadTimeDays int, pattern DemandPattern) int {
	return FindOptimalMultiple(initialStock, leadTimeDays, pattern)
}

// ComputeMonthlyStats simulates the planning year and summarises stock per month.
func ComputeMonthlyStats(initialStock, leadTimeDays, orderMultiple int, pattern DemandPattern) map[string]MonthlyStats {
	return AggregateMonthly(SimulateTrace(initialStock, leadTimeDays, orderMultiple, pattern), HorizonStart)
}

// SimulateTrace returns the end-of-day stock for every day of the planning year.
func SimulateTrace(initialStock, leadTimeDays, orderMultiple int, pattern DemandPattern) []int {
	params := Parameters{LeadTimeDays: leadTimeDays, OrderMultiple: orderMultiple}
	return Simulate(initialStock, params, pattern, DefaultHorizon(), ModeTrace).Trace
}
