package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/andresuchdata/stockopt/internal/domain"
	"github.com/andresuchdata/stockopt/internal/replenishment"
	"github.com/andresuchdata/stockopt/internal/repository"
	"github.com/rs/zerolog/log"
)

// ResolvedInputs is everything a simulation needs for one product.
type ResolvedInputs struct {
	Product    *domain.Product
	Parameters *domain.CalculationParameters
	Pattern    replenishment.DemandPattern
}

// InputResolver loads and checks a product, its parameters and its sales
// profiles before any simulation runs.
type InputResolver struct {
	products repository.ProductRepository
	params   repository.ParametersRepository
	profiles repository.SalesProfileRepository
}

func NewInputResolver(
	products repository.ProductRepository,
	params repository.ParametersRepository,
	profiles repository.SalesProfileRepository,
) *InputResolver {
	return &InputResolver{products: products, params: params, profiles: profiles}
}

// Resolve returns a *domain.ResolutionError when the product, its parameters
// or its sales profiles are missing.
func (r *InputResolver) Resolve(ctx context.Context, productID int64) (*ResolvedInputs, error) {
	product, err := r.Product(ctx, productID)
	if err != nil {
		return nil, err
	}

	params, err := r.params.FindByProductID(ctx, productID)
	if err != nil {
		return nil, resolutionFailure(err, domain.ErrParametersNotFound, productID)
	}
	if err := validateParameters(params.DeliveryLeadTime, params.OrderMultiple); err != nil {
		return nil, fmt.Errorf("stored parameters of product %d: %w", productID, err)
	}

	profiles, err := r.profiles.FindByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales profiles: %w", err)
	}

	pattern := buildPattern(productID, profiles)
	if pattern.IsEmpty() {
		return nil, domain.NewResolutionError(domain.ErrNoDemandPattern, productID)
	}

	return &ResolvedInputs{Product: product, Parameters: params, Pattern: pattern}, nil
}

// Product loads a single product, failing with a *domain.ResolutionError
// when it does not exist.
func (r *InputResolver) Product(ctx context.Context, productID int64) (*domain.Product, error) {
	product, err := r.products.FindByID(ctx, productID)
	if err != nil {
		return nil, resolutionFailure(err, domain.ErrProductNotFound, productID)
	}
	return product, nil
}

// Products lists every product.
func (r *InputResolver) Products(ctx context.Context) ([]*domain.Product, error) {
	products, err := r.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func resolutionFailure(err, reason error, productID int64) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewResolutionError(reason, productID)
	}
	return err
}

// buildPattern turns stored profiles into a demand pattern. Rows with an
// unknown weekday are skipped; duplicate weekdays keep the first row.
func buildPattern(productID int64, profiles []*domain.SalesProfile) replenishment.DemandPattern {
	records := make([]replenishment.DailyDemand, 0, len(profiles))
	for _, p := range profiles {
		day, ok := p.Weekday()
		if !ok {
			log.Warn().
				Int64("product_id", productID).
				Int64("profile_id", p.ID).
				Str("day_of_week", p.DayOfWeek).
				Msg("skipping sales profile with unknown weekday")
			continue
		}
		records = append(records, replenishment.DailyDemand{Weekday: day, Quantity: p.QuantitySold})
	}

	pattern := replenishment.NewDemandPattern(records)
	for _, dup := range pattern.Ignored() {
		log.Warn().
			Int64("product_id", productID).
			Str("day_of_week", domain.DayOfWeekName(dup.Weekday)).
			Int("quantity_sold", dup.Quantity).
			Msg("duplicate sales profile ignored, first record wins")
	}
	return pattern
}

func validateParameters(leadTime, multiple int) error {
	if leadTime < 0 {
		return domain.InvalidInputf("delivery lead time must not be negative, got %d", leadTime)
	}
	if multiple <= 0 {
		return domain.InvalidInputf("order multiple must be positive, got %d", multiple)
	}
	return nil
}
