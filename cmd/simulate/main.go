package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/andresuchdata/stockopt/internal/replenishment"
	"github.com/andresuchdata/stockopt/pkg/logger"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const patternKey = "pattern"

func main() {
	logger.Configure("debug", os.Getenv("LOG_LEVEL"))

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("simulate failed")
	}
}

func newApp(out io.Writer) *cli.App {
	flags := []cli.Flag{
		&cli.IntFlag{
			Name:  "initial-stock",
			Usage: "Stock on hand at the start of the horizon",
			Value: 20,
		},
		&cli.IntFlag{
			Name:  "lead-time",
			Usage: "Days between order and delivery",
			Value: 3,
		},
		&cli.IntFlag{
			Name:  "multiple",
			Usage: "Order quantity multiple",
			Value: 12,
		},
		&cli.StringFlag{
			Name:  "demand",
			Usage: "Comma-separated daily demand from Monday to Sunday",
			Value: "5,5,5,5,5,10,10",
		},
	}

	return &cli.App{
		Name:     "simulate",
		Usage:    "Run the replenishment simulation without a database",
		Writer:   out,
		Flags:    flags,
		Before:   validateFlags,
		Metadata: map[string]interface{}{},
		Commands: []*cli.Command{
			{
				Name:   "plan",
				Usage:  "Print the orders placed over the horizon",
				Action: func(c *cli.Context) error { return runPlan(c, out) },
			},
			{
				Name:   "optimal",
				Usage:  "Print the order multiple in [5,30] with the lowest average stock",
				Action: func(c *cli.Context) error { return runOptimal(c, out) },
			},
			{
				Name:   "stats",
				Usage:  "Print monthly min, max and average stock",
				Action: func(c *cli.Context) error { return runStats(c, out) },
			},
			{
				Name:   "trace",
				Usage:  "Print the daily stock trace",
				Action: func(c *cli.Context) error { return runTrace(c, out) },
			},
		},
	}
}

func validateFlags(c *cli.Context) error {
	if c.Int("initial-stock") < 0 {
		return fmt.Errorf("initial-stock must not be negative")
	}
	if c.Int("lead-time") < 0 {
		return fmt.Errorf("lead-time must not be negative")
	}
	if c.Int("multiple") <= 0 {
		return fmt.Errorf("multiple must be positive")
	}

	pattern, err := parseDemand(c.String("demand"))
	if err != nil {
		return err
	}
	c.App.Metadata[patternKey] = pattern
	return nil
}

// patternFrom returns the demand pattern parsed by validateFlags.
func patternFrom(c *cli.Context) (replenishment.DemandPattern, error) {
	pattern, ok := c.App.Metadata[patternKey].(replenishment.DemandPattern)
	if !ok {
		return replenishment.DemandPattern{}, fmt.Errorf("demand pattern not parsed")
	}
	return pattern, nil
}

// parseDemand reads up to seven non-negative quantities, Monday first.
func parseDemand(raw string) (replenishment.DemandPattern, error) {
	parts := strings.Split(raw, ",")
	if len(parts) > 7 {
		return replenishment.DemandPattern{}, fmt.Errorf("demand has %d values, at most 7 expected", len(parts))
	}

	quantities := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			quantities = append(quantities, 0)
			continue
		}
		qty, err := strconv.Atoi(part)
		if err != nil || qty < 0 {
			return replenishment.DemandPattern{}, fmt.Errorf("invalid demand quantity %q", part)
		}
		quantities = append(quantities, qty)
	}

	return replenishment.WeeklyDemand(quantities...), nil
}

func runPlan(c *cli.Context, out io.Writer) error {
	pattern, err := patternFrom(c)
	if err != nil {
		return err
	}
	plan := replenishment.ComputeOrderPlan(c.Int("initial-stock"), c.Int("lead-time"), c.Int("multiple"), pattern)

	type row struct {
		OrderDate    string `json:"orderDate"`
		DeliveryDate string `json:"deliveryDate"`
		Quantity     int    `json:"quantity"`
	}
	rows := make([]row, 0, len(plan))
	for _, o := range plan {
		rows = append(rows, row{
			OrderDate:    o.OrderDate.Format("2006-01-02"),
			DeliveryDate: o.DeliveryDate.Format("2006-01-02"),
			Quantity:     o.Quantity,
		})
	}
	return writeJSON(out, rows)
}

func runOptimal(c *cli.Context, out io.Writer) error {
	pattern, err := patternFrom(c)
	if err != nil {
		return err
	}
	best := replenishment.ComputeOptimalMultiple(c.Int("initial-stock"), c.Int("lead-time"), pattern)
	return writeJSON(out, map[string]int{"optimalMultiple": best})
}

func runStats(c *cli.Context, out io.Writer) error {
	pattern, err := patternFrom(c)
	if err != nil {
		return err
	}
	byMonth := replenishment.ComputeMonthlyStats(c.Int("initial-stock"), c.Int("lead-time"), c.Int("multiple"), pattern)

	type row struct {
		Month        string  `json:"month"`
		AverageStock float64 `json:"averageStock"`
		MinStock     int     `json:"minStock"`
		MaxStock     int     `json:"maxStock"`
	}
	rows := make([]row, 0, len(byMonth))
	for month, s := range byMonth {
		rows = append(rows, row{Month: month, AverageStock: s.AvgStock, MinStock: s.MinStock, MaxStock: s.MaxStock})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })

	return writeJSON(out, rows)
}

func runTrace(c *cli.Context, out io.Writer) error {
	pattern, err := patternFrom(c)
	if err != nil {
		return err
	}
	trace := replenishment.SimulateTrace(c.Int("initial-stock"), c.Int("lead-time"), c.Int("multiple"), pattern)
	return writeJSON(out, trace)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
