// internal/service/optimization_service.go
package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/andresuchdata/stockopt/internal/cache"
	"github.com/andresuchdata/stockopt/internal/domain"
	"github.com/andresuchdata/stockopt/internal/replenishment"
	"github.com/andresuchdata/stockopt/internal/repository"
	"github.com/rs/zerolog/log"
)

// OptimizationService runs the replenishment simulation for stored products
// and manages the resulting plans and exports.
type OptimizationService struct {
	resolver *InputResolver
	orders   repository.PurchaseOrderRepository
	cache    cache.OptimizationCache
	exporter *Exporter
}

// NewOptimizationService wires the service. A nil cache disables caching and
// a nil exporter disables ExportPlan.
func NewOptimizationService(
	resolver *InputResolver,
	orders repository.PurchaseOrderRepository,
	cacheImpl cache.OptimizationCache,
	exporter *Exporter,
) *OptimizationService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopOptimizationCache()
	}
	return &OptimizationService{
		resolver: resolver,
		orders:   orders,
		cache:    cacheImpl,
		exporter: exporter,
	}
}

// CalculateOrderPlan simulates the planning year for a product, persists the
// generated orders and returns them with their IDs.
func (s *OptimizationService) CalculateOrderPlan(ctx context.Context, productID int64, initialStock int) ([]*domain.PurchaseOrder, error) {
	orders, _, err := s.orderPlan(ctx, productID, initialStock)
	if err != nil {
		return nil, err
	}

	if err := s.orders.SaveAll(ctx, orders); err != nil {
		return nil, fmt.Errorf("failed to save order plan: %w", err)
	}

	log.Info().
		Int64("product_id", productID).
		Int("initial_stock", initialStock).
		Int("orders", len(orders)).
		Msg("order plan calculated")

	return orders, nil
}

// FindOptimalMultiple returns the order multiple in [5,30] minimising average stock.
func (s *OptimizationService) FindOptimalMultiple(ctx context.Context, productID int64, initialStock int) (int, error) {
	if err := validateInitialStock(initialStock); err != nil {
		return 0, err
	}

	inputs, err := s.resolver.Resolve(ctx, productID)
	if err != nil {
		return 0, err
	}

	if multiple, ok, err := s.cache.GetOptimalMultiple(ctx, productID, initialStock); err == nil && ok {
		return multiple, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("optimization: cache get optimal multiple failed")
	}

	best := replenishment.ComputeOptimalMultiple(initialStock, inputs.Parameters.DeliveryLeadTime, inputs.Pattern)

	if err := s.cache.SetOptimalMultiple(ctx, productID, initialStock, best); err != nil {
		log.Warn().Err(err).Msg("optimization: cache set optimal multiple failed")
	}

	log.Debug().
		Int64("product_id", productID).
		Int("initial_stock", initialStock).
		Int("multiple", best).
		Msg("optimal multiple found")

	return best, nil
}

// CalculateMonthlyStockStats returns min, max and smoothed average stock per
// month, sorted by month.
func (s *OptimizationService) CalculateMonthlyStockStats(ctx context.Context, productID int64, initialStock int) ([]domain.MonthlyStockStats, error) {
	if err := validateInitialStock(initialStock); err != nil {
		return nil, err
	}

	inputs, err := s.resolver.Resolve(ctx, productID)
	if err != nil {
		return nil, err
	}

	if stats, ok, err := s.cache.GetMonthlyStats(ctx, productID, initialStock); err == nil && ok {
		return stats, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("optimization: cache get monthly stats failed")
	}

	stats := monthlyStats(initialStock, inputs)

	if err := s.cache.SetMonthlyStats(ctx, productID, initialStock, stats); err != nil {
		log.Warn().Err(err).Msg("optimization: cache set monthly stats failed")
	}

	return stats, nil
}

// ExportPlan writes the order plan and the monthly statistics of a product
// as CSV files without persisting the orders.
func (s *OptimizationService) ExportPlan(ctx context.Context, productID int64, initialStock int) (*domain.ExportResult, error) {
	if s.exporter == nil {
		return nil, fmt.Errorf("plan export is not configured")
	}

	orders, inputs, err := s.orderPlan(ctx, productID, initialStock)
	if err != nil {
		return nil, err
	}

	return s.exporter.Export(ctx, productID, initialStock, orders, monthlyStats(initialStock, inputs))
}

// ListProducts returns every product that can be planned.
func (s *OptimizationService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.resolver.Products(ctx)
}

// ListOrders returns the persisted purchase orders of a product, oldest first.
func (s *OptimizationService) ListOrders(ctx context.Context, productID int64) ([]*domain.PurchaseOrder, error) {
	if _, err := s.resolver.Product(ctx, productID); err != nil {
		return nil, err
	}

	orders, err := s.orders.FindByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	if orders == nil {
		orders = []*domain.PurchaseOrder{}
	}

	return orders, nil
}

// ListExports returns the exported files of a product held in object storage.
func (s *OptimizationService) ListExports(ctx context.Context, productID int64) ([]domain.ExportedObject, error) {
	if s.exporter == nil {
		return nil, fmt.Errorf("plan export is not configured")
	}
	if _, err := s.resolver.Product(ctx, productID); err != nil {
		return nil, err
	}

	return s.exporter.List(ctx, productID)
}

func (s *OptimizationService) orderPlan(ctx context.Context, productID int64, initialStock int) ([]*domain.PurchaseOrder, *ResolvedInputs, error) {
	if err := validateInitialStock(initialStock); err != nil {
		return nil, nil, err
	}

	inputs, err := s.resolver.Resolve(ctx, productID)
	if err != nil {
		return nil, nil, err
	}

	plan := replenishment.ComputeOrderPlan(
		initialStock,
		inputs.Parameters.DeliveryLeadTime,
		inputs.Parameters.OrderMultiple,
		inputs.Pattern,
	)

	orders := make([]*domain.PurchaseOrder, 0, len(plan))
	for _, o := range plan {
		orders = append(orders, &domain.PurchaseOrder{
			ProductID:       productID,
			OrderDate:       o.OrderDate,
			QuantityOrdered: o.Quantity,
			DeliveryDate:    o.DeliveryDate,
		})
	}

	return orders, inputs, nil
}

func monthlyStats(initialStock int, inputs *ResolvedInputs) []domain.MonthlyStockStats {
	byMonth := replenishment.ComputeMonthlyStats(
		initialStock,
		inputs.Parameters.DeliveryLeadTime,
		inputs.Parameters.OrderMultiple,
		inputs.Pattern,
	)

	stats := make([]domain.MonthlyStockStats, 0, len(byMonth))
	for month, record := range byMonth {
		stats = append(stats, domain.MonthlyStockStats{
			Month:        month,
			AverageStock: record.AvgStock,
			MinStock:     record.MinStock,
			MaxStock:     record.MaxStock,
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Month < stats[j].Month })

	return stats
}

func validateInitialStock(initialStock int) error {
	if initialStock < 0 {
		return domain.InvalidInputf("initial stock must not be negative, got %d", initialStock)
	}
	return nil
}
