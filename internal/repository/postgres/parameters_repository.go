package postgres

import (
	"context"
	"fmt"

	"github.com/andresuchdata/stockopt/internal/domain"
	"github.com/andresuchdata/stockopt/internal/repository"
)

type parametersRepository struct {
	db *DB
}

func NewParametersRepository(db *DB) repository.ParametersRepository {
	return &parametersRepository{db: db}
}

const parametersColumns = `id, product_id, delivery_lead_time, order_multiple`

func (r *parametersRepository) FindByID(ctx context.Context, id int64) (*domain.CalculationParameters, error) {
	query := `SELECT ` + parametersColumns + ` FROM calculation_parameters WHERE id = $1`

	var params domain.CalculationParameters
	if err := r.db.GetContext(ctx, &params, query, id); err != nil {
		return nil, fmt.Errorf("failed to get calculation parameters %d: %w", id, notFound(err))
	}

	return &params, nil
}

func (r *parametersRepository) FindByProductID(ctx context.Context, productID int64) (*domain.CalculationParameters, error) {
	query := `SELECT ` + parametersColumns + ` FROM calculation_parameters WHERE product_id = $1`

	var params domain.CalculationParameters
	if err := r.db.GetContext(ctx, &params, query, productID); err != nil {
		return nil, fmt.Errorf("failed to get calculation parameters for product %d: %w", productID, notFound(err))
	}

	return &params, nil
}

func (r *parametersRepository) List(ctx context.Context) ([]*domain.CalculationParameters, error) {
	query := `SELECT ` + parametersColumns + ` FROM calculation_parameters ORDER BY id`

	var params []*domain.CalculationParameters
	if err := r.db.SelectContext(ctx, &params, query); err != nil {
		return nil, fmt.Errorf("failed to list calculation parameters: %w", err)
	}

	return params, nil
}

func (r *parametersRepository) Save(ctx context.Context, params *domain.CalculationParameters) (*domain.CalculationParameters, error) {
	query := `
		INSERT INTO calculation_parameters (product_id, delivery_lead_time, order_multiple)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_id)
		DO UPDATE SET
			delivery_lead_time = EXCLUDED.delivery_lead_time,
			order_multiple = EXCLUDED.order_multiple
		RETURNING ` + parametersColumns

	var saved domain.CalculationParameters
	err := r.db.QueryRowxContext(ctx, query, params.ProductID, params.DeliveryLeadTime, params.OrderMultiple).
		StructScan(&saved)
	if err != nil {
		return nil, fmt.Errorf("failed to save calculation parameters: %w", missingReference(err))
	}

	return &saved, nil
}
