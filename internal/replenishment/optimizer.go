package replenishment

import (
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

const (
	// MinCandidateMultiple is the smallest order multiple tried by the optimizer.
	MinCandidateMultiple = 5
	// MaxCandidateMultiple is the largest order multiple tried by the optimizer.
	MaxCandidateMultiple = 30
)

// FindOptimalMultiple returns the order multiple in [5,30] whose simulated
// year has the lowest average stock. Ties go to the smaller multiple.
func FindOptimalMultiple(initialStock, leadTimeDays int, pattern DemandPattern) int {
	return findOptimalMultiple(initialStock, leadTimeDays, pattern, DefaultHorizon(),
		MinCandidateMultiple, MaxCandidateMultiple)
}

func findOptimalMultiple(initialStock, leadTimeDays int, pattern DemandPattern, horizon Horizon, lo, hi int) int {
	means := make([]float64, hi-lo+1)

	// Each candidate writes only its own slot.
	var g errgroup.Group
	for multiple := lo; multiple <= hi; multiple++ {
		multiple := multiple
		g.Go(func() error {
			params := Parameters{LeadTimeDays: leadTimeDays, OrderMultiple: multiple}
			run := Simulate(initialStock, params, pattern, horizon, ModeTrace)
			means[multiple-lo] = AverageStock(run.Trace)
			return nil
		})
	}
	_ = g.Wait()

	best := lo
	lowest := math.MaxFloat64
	for i, mean := range means {
		if mean < lowest {
			lowest = mean
			best = lo + i
		}
	}
	return best
}

// AverageStock returns the arithmetic mean of a stock trace, 0 when empty.
func AverageStock(trace []int) float64 {
	if len(trace) == 0 {
		return 0
	}
	values := make([]float64, len(trace))
	for i, v := range trace {
		values[i] = float64(v)
	}
	return stat.Mean(values, nil)
}
