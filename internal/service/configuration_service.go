package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/andresuchdata/stockopt/internal/cache"
	"github.com/andresuchdata/stockopt/internal/domain"
	"github.com/andresuchdata/stockopt/internal/repository"
	"github.com/rs/zerolog/log"
)

// ConfigurationService manages calculation parameters.
type ConfigurationService struct {
	params repository.ParametersRepository
	cache  cache.OptimizationCache
}

func NewConfigurationService(params repository.ParametersRepository, cacheImpl cache.OptimizationCache) *ConfigurationService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopOptimizationCache()
	}
	return &ConfigurationService{params: params, cache: cacheImpl}
}

func (s *ConfigurationService) ListParameters(ctx context.Context) ([]*domain.CalculationParameters, error) {
	params, err := s.params.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculation parameters: %w", err)
	}
	return params, nil
}

// GetParameters loads one parameter set by its own id.
func (s *ConfigurationService) GetParameters(ctx context.Context, id int64) (*domain.CalculationParameters, error) {
	params, err := s.params.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", domain.ErrParametersNotFound, id)
		}
		return nil, fmt.Errorf("failed to load calculation parameters: %w", err)
	}
	return params, nil
}

// SaveParameters creates or updates the parameters of params.ProductID and
// drops cached results of that product.
func (s *ConfigurationService) SaveParameters(ctx context.Context, params *domain.CalculationParameters) (*domain.CalculationParameters, error) {
	if params == nil {
		return nil, domain.InvalidInputf("calculation parameters are required")
	}
	if params.ProductID <= 0 {
		return nil, domain.InvalidInputf("product id must be positive, got %d", params.ProductID)
	}
	if err := validateParameters(params.DeliveryLeadTime, params.OrderMultiple); err != nil {
		return nil, err
	}

	saved, err := s.params.Save(ctx, params)
	if err != nil {
		if errors.Is(err, repository.ErrMissingReference) {
			return nil, domain.NewResolutionError(domain.ErrProductNotFound, params.ProductID)
		}
		return nil, fmt.Errorf("failed to save calculation parameters: %w", err)
	}

	if err := s.cache.InvalidateProduct(ctx, saved.ProductID); err != nil {
		log.Warn().Err(err).Int64("product_id", saved.ProductID).Msg("configuration: cache invalidation failed")
	}

	log.Info().
		Int64("product_id", saved.ProductID).
		Int("delivery_lead_time", saved.DeliveryLeadTime).
		Int("order_multiple", saved.OrderMultiple).
		Msg("calculation parameters saved")

	return saved, nil
}
