package main

import (
	"context"
	"fmt"
	"time"

	"github.com/andresuchdata/stockopt/internal/cache"
	"github.com/andresuchdata/stockopt/internal/domain"
	"github.com/andresuchdata/stockopt/internal/replenishment"
	"github.com/andresuchdata/stockopt/internal/repository/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	defaultProductName   = "Default product"
	defaultInitialStock  = 20
	defaultLeadTimeDays  = 3
	defaultOrderMultiple = 12
	demoOrderDays        = 30
	demoStockThreshold   = 10
)

// defaultWeeklySales is Monday..Sunday.
var defaultWeeklySales = []int{5, 5, 5, 5, 5, 10, 10}

// seedStore is the set of writes the default seed performs. All calls made
// through one store belong to the same transaction.
type seedStore interface {
	CountProducts(ctx context.Context) (int, error)
	InsertProduct(ctx context.Context, name string, initialStock int) (int64, error)
	InsertParameters(ctx context.Context, params *domain.CalculationParameters) error
	InsertSalesProfile(ctx context.Context, profile *domain.SalesProfile) error
	InsertPurchaseOrder(ctx context.Context, order *domain.PurchaseOrder) error
}

// txRunner runs fn in a transaction, committing only when fn succeeds.
type txRunner func(ctx context.Context, fn func(store seedStore) error) error

func postgresTxRunner(db *postgres.DB) txRunner {
	return func(ctx context.Context, fn func(store seedStore) error) error {
		return db.WithTx(ctx, func(tx *sqlx.Tx) error {
			return fn(&txSeedStore{tx: tx})
		})
	}
}

type txSeedStore struct {
	tx *sqlx.Tx
}

func (s *txSeedStore) CountProducts(ctx context.Context) (int, error) {
	var count int
	if err := s.tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM products`); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (s *txSeedStore) InsertProduct(ctx context.Context, name string, initialStock int) (int64, error) {
	var id int64
	err := s.tx.QueryRowxContext(ctx,
		`INSERT INTO products (name, initial_stock) VALUES ($1, $2) RETURNING id`,
		name, initialStock,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert product: %w", err)
	}
	return id, nil
}

func (s *txSeedStore) InsertParameters(ctx context.Context, params *domain.CalculationParameters) error {
	_, err := s.tx.ExecContext(ctx,
		`INSERT INTO calculation_parameters (product_id, delivery_lead_time, order_multiple) VALUES ($1, $2, $3)`,
		params.ProductID, params.DeliveryLeadTime, params.OrderMultiple,
	)
	if err != nil {
		return fmt.Errorf("failed to insert calculation parameters: %w", err)
	}
	return nil
}

func (s *txSeedStore) InsertSalesProfile(ctx context.Context, profile *domain.SalesProfile) error {
	_, err := s.tx.ExecContext(ctx,
		`INSERT INTO sales_profiles (product_id, day_of_week, quantity_sold) VALUES ($1, $2, $3)`,
		profile.ProductID, profile.DayOfWeek, profile.QuantitySold,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sales profile: %w", err)
	}
	return nil
}

func (s *txSeedStore) InsertPurchaseOrder(ctx context.Context, order *domain.PurchaseOrder) error {
	_, err := s.tx.ExecContext(ctx,
		`INSERT INTO purchase_orders (product_id, order_date, quantity_ordered, delivery_date) VALUES ($1, $2, $3, $4)`,
		order.ProductID, order.OrderDate, order.QuantityOrdered, order.DeliveryDate,
	)
	if err != nil {
		return fmt.Errorf("failed to insert purchase order: %w", err)
	}
	return nil
}

// seedDefaultProduct inserts the default product and its data in a single
// transaction unless any product exists. It reports whether anything was
// written.
func seedDefaultProduct(ctx context.Context, runTx txRunner) (bool, error) {
	seeded := false

	err := runTx(ctx, func(store seedStore) error {
		count, err := store.CountProducts(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		productID, err := store.InsertProduct(ctx, defaultProductName, defaultInitialStock)
		if err != nil {
			return err
		}

		params := &domain.CalculationParameters{
			ProductID:        productID,
			DeliveryLeadTime: defaultLeadTimeDays,
			OrderMultiple:    defaultOrderMultiple,
		}
		if err := store.InsertParameters(ctx, params); err != nil {
			return err
		}

		for i, qty := range defaultWeeklySales {
			day := time.Weekday((i + 1) % 7)
			err := store.InsertSalesProfile(ctx, &domain.SalesProfile{
				ProductID:    productID,
				DayOfWeek:    domain.DayOfWeekName(day),
				QuantitySold: qty,
			})
			if err != nil {
				return err
			}
		}

		orders := demoPurchaseOrders(
			productID,
			replenishment.HorizonStart,
			defaultInitialStock,
			params.DeliveryLeadTime,
			params.OrderMultiple,
			replenishment.WeeklyDemand(defaultWeeklySales...),
		)
		for _, order := range orders {
			if err := store.InsertPurchaseOrder(ctx, order); err != nil {
				return err
			}
		}

		log.Info().
			Int64("product_id", productID).
			Int("sales_profiles", len(defaultWeeklySales)).
			Int("purchase_orders", len(orders)).
			Msg("default product seeded")

		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return seeded, nil
}

// resetCache drops every cached simulation result so that freshly seeded
// data is not shadowed by entries from an earlier database.
func resetCache(ctx context.Context, optimizationCache cache.OptimizationCache) {
	if err := optimizationCache.InvalidateAll(ctx); err != nil {
		log.Warn().Err(err).Msg("could not clear optimization cache")
		return
	}
	log.Info().Msg("optimization cache cleared")
}

// demoPurchaseOrders replays a simple threshold policy over the first
// demoOrderDays days: whenever the running stock drops below the threshold an
// order covering the gap, rounded up to the multiple, is placed and counted
// immediately.
func demoPurchaseOrders(
	productID int64,
	start time.Time,
	initialStock, leadTimeDays, multiple int,
	pattern replenishment.DemandPattern,
) []*domain.PurchaseOrder {
	var orders []*domain.PurchaseOrder
	remaining := initialStock

	for i := 0; i < demoOrderDays; i++ {
		day := start.AddDate(0, 0, i)
		remaining -= pattern.On(day)

		if remaining >= demoStockThreshold {
			continue
		}

		qty := replenishment.RoundUpToMultiple(demoStockThreshold-remaining, multiple)
		orders = append(orders, &domain.PurchaseOrder{
			ProductID:       productID,
			OrderDate:       day,
			QuantityOrdered: qty,
			DeliveryDate:    day.AddDate(0, 0, leadTimeDays),
		})
		remaining += qty
	}

	return orders
}
