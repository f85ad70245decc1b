package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/andresuchdata/stockopt/internal/config"
	"github.com/andresuchdata/stockopt/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	optimizationKeyPrefix = "optimization"
	scanBatchSize         = 100
)

// OptimizationCache stores simulation results per product and initial stock.
// Entries of a product must be invalidated whenever its parameters or sales
// profiles change.
type OptimizationCache interface {
	GetOptimalMultiple(ctx context.Context, productID int64, initialStock int) (int, bool, error)
	SetOptimalMultiple(ctx context.Context, productID int64, initialStock int, multiple int) error
	GetMonthlyStats(ctx context.Context, productID int64, initialStock int) ([]domain.MonthlyStockStats, bool, error)
	SetMonthlyStats(ctx context.Context, productID int64, initialStock int, stats []domain.MonthlyStockStats) error
	InvalidateProduct(ctx context.Context, productID int64) error
	InvalidateAll(ctx context.Context) error
}

type redisOptimizationCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopOptimizationCache struct{}

func NewOptimizationCache(cfg config.CacheConfig) (OptimizationCache, error) {
	if !cfg.Enabled {
		return &noopOptimizationCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return NewRedisOptimizationCache(client, ttl), nil
}

// NewRedisOptimizationCache wraps an existing client.
func NewRedisOptimizationCache(client *redis.Client, ttl time.Duration) OptimizationCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &redisOptimizationCache{client: client, ttl: ttl}
}

func NewNoopOptimizationCache() OptimizationCache {
	return &noopOptimizationCache{}
}

func (c *redisOptimizationCache) GetOptimalMultiple(ctx context.Context, productID int64, initialStock int) (int, bool, error) {
	var multiple int
	ok, err := getJSON(ctx, c.client, optimalMultipleKey(productID, initialStock), &multiple)
	if err != nil || !ok {
		return 0, false, err
	}
	return multiple, true, nil
}

func (c *redisOptimizationCache) SetOptimalMultiple(ctx context.Context, productID int64, initialStock int, multiple int) error {
	return setJSON(ctx, c.client, optimalMultipleKey(productID, initialStock), multiple, c.ttl)
}

func (c *redisOptimizationCache) GetMonthlyStats(ctx context.Context, productID int64, initialStock int) ([]domain.MonthlyStockStats, bool, error) {
	var stats []domain.MonthlyStockStats
	ok, err := getJSON(ctx, c.client, monthlyStatsKey(productID, initialStock), &stats)
	if err != nil || !ok {
		return nil, false, err
	}
	return stats, true, nil
}

func (c *redisOptimizationCache) SetMonthlyStats(ctx context.Context, productID int64, initialStock int, stats []domain.MonthlyStockStats) error {
	return setJSON(ctx, c.client, monthlyStatsKey(productID, initialStock), stats, c.ttl)
}

func (c *redisOptimizationCache) InvalidateProduct(ctx context.Context, productID int64) error {
	return deleteKeysWithPrefix(ctx, c.client, productKeyPrefix(productID), scanBatchSize)
}

func (c *redisOptimizationCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, optimizationKeyPrefix+":", scanBatchSize)
}

func (n *noopOptimizationCache) GetOptimalMultiple(ctx context.Context, productID int64, initialStock int) (int, bool, error) {
	return 0, false, nil
}

func (n *noopOptimizationCache) SetOptimalMultiple(ctx context.Context, productID int64, initialStock int, multiple int) error {
	return nil
}

func (n *noopOptimizationCache) GetMonthlyStats(ctx context.Context, productID int64, initialStock int) ([]domain.MonthlyStockStats, bool, error) {
	return nil, false, nil
}

func (n *noopOptimizationCache) SetMonthlyStats(ctx context.Context, productID int64, initialStock int, stats []domain.MonthlyStockStats) error {
	return nil
}

func (n *noopOptimizationCache) InvalidateProduct(ctx context.Context, productID int64) error {
	return nil
}

func (n *noopOptimizationCache) InvalidateAll(ctx context.Context) error {
	return nil
}

// productKeyPrefix ends with a separator so product 1 never matches product 12.
func productKeyPrefix(productID int64) string {
	return fmt.Sprintf("%s:product:%d:", optimizationKeyPrefix, productID)
}

func optimalMultipleKey(productID int64, initialStock int) string {
	return fmt.Sprintf("%soptimal_multiple:%d", productKeyPrefix(productID), initialStock)
}

func monthlyStatsKey(productID int64, initialStock int) string {
	return fmt.Sprintf("%smonthly_stats:%d", productKeyPrefix(productID), initialStock)
}
