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

// SalesProfileService manages the weekly demand records of products.
type SalesProfileService struct {
	profiles repository.SalesProfileRepository
	cache    cache.OptimizationCache
}

func NewSalesProfileService(profiles repository.SalesProfileRepository, cacheImpl cache.OptimizationCache) *SalesProfileService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopOptimizationCache()
	}
	return &SalesProfileService{profiles: profiles, cache: cacheImpl}
}

func (s *SalesProfileService) ListByProduct(ctx context.Context, productID int64) ([]*domain.SalesProfile, error) {
	profiles, err := s.profiles.FindByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales profiles: %w", err)
	}
	return profiles, nil
}

// SaveProfile creates the profile when ID is zero and updates it otherwise.
// The weekday is stored in its canonical upper-case form. An update that
// moves the profile to another product invalidates both products.
func (s *SalesProfileService) SaveProfile(ctx context.Context, profile *domain.SalesProfile) (*domain.SalesProfile, error) {
	if profile == nil {
		return nil, domain.InvalidInputf("sales profile is required")
	}
	if profile.ProductID <= 0 {
		return nil, domain.InvalidInputf("product id must be positive, got %d", profile.ProductID)
	}
	day, ok := profile.Weekday()
	if !ok {
		return nil, domain.InvalidInputf("unknown day of week %q", profile.DayOfWeek)
	}
	if profile.QuantitySold < 0 {
		return nil, domain.InvalidInputf("quantity sold must not be negative, got %d", profile.QuantitySold)
	}

	var previousProductID int64
	if profile.ID != 0 {
		existing, err := s.find(ctx, profile.ID)
		if err != nil {
			return nil, err
		}
		previousProductID = existing.ProductID
	}

	normalized := *profile
	normalized.DayOfWeek = domain.DayOfWeekName(day)

	saved, err := s.profiles.Save(ctx, &normalized)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("%w: %d", domain.ErrSalesProfileNotFound, profile.ID)
		case errors.Is(err, repository.ErrMissingReference):
			return nil, domain.NewResolutionError(domain.ErrProductNotFound, profile.ProductID)
		}
		return nil, fmt.Errorf("failed to save sales profile: %w", err)
	}

	s.invalidate(ctx, saved.ProductID)
	if previousProductID != 0 && previousProductID != saved.ProductID {
		s.invalidate(ctx, previousProductID)
	}

	return saved, nil
}

func (s *SalesProfileService) DeleteProfile(ctx context.Context, id int64) error {
	profile, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.profiles.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %d", domain.ErrSalesProfileNotFound, id)
		}
		return fmt.Errorf("failed to delete sales profile: %w", err)
	}

	s.invalidate(ctx, profile.ProductID)
	return nil
}

func (s *SalesProfileService) find(ctx context.Context, id int64) (*domain.SalesProfile, error) {
	profile, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", domain.ErrSalesProfileNotFound, id)
		}
		return nil, fmt.Errorf("failed to load sales profile: %w", err)
	}
	return profile, nil
}

func (s *SalesProfileService) invalidate(ctx context.Context, productID int64) {
	if err := s.cache.InvalidateProduct(ctx, productID); err != nil {
		log.Warn().Err(err).Int64("product_id", productID).Msg("sales profile: cache invalidation failed")
	}
}
