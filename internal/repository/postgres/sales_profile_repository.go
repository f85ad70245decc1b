package postgres

import (
	"context"
	"fmt"

	"github.com/andresuchdata/stockopt/internal/domain"
	"github.com/andresuchdata/stockopt/internal/repository"
)

type salesProfileRepository struct {
	db *DB
}

func NewSalesProfileRepository(db *DB) repository.SalesProfileRepository {
	return &salesProfileRepository{db: db}
}

const salesProfileColumns = `id, product_id, day_of_week, quantity_sold`

func (r *salesProfileRepository) FindByID(ctx context.Context, id int64) (*domain.SalesProfile, error) {
	query := `SELECT ` + salesProfileColumns + ` FROM sales_profiles WHERE id = $1`

	var profile domain.SalesProfile
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		return nil, fmt.Errorf("failed to get sales profile %d: %w", id, notFound(err))
	}

	return &profile, nil
}

// FindByProductID returns profiles in insertion order, which decides which
// record wins when a weekday is stored twice.
func (r *salesProfileRepository) FindByProductID(ctx context.Context, productID int64) ([]*domain.SalesProfile, error) {
	query := `SELECT ` + salesProfileColumns + ` FROM sales_profiles WHERE product_id = $1 ORDER BY id`

	var profiles []*domain.SalesProfile
	if err := r.db.SelectContext(ctx, &profiles, query, productID); err != nil {
		return nil, fmt.Errorf("failed to list sales profiles for product %d: %w", productID, err)
	}

	return profiles, nil
}

func (r *salesProfileRepository) Save(ctx context.Context, profile *domain.SalesProfile) (*domain.SalesProfile, error) {
	var saved domain.SalesProfile

	if profile.ID == 0 {
		query := `
			INSERT INTO sales_profiles (product_id, day_of_week, quantity_sold)
			VALUES ($1, $2, $3)
			RETURNING ` + salesProfileColumns
		err := r.db.QueryRowxContext(ctx, query, profile.ProductID, profile.DayOfWeek, profile.QuantitySold).
			StructScan(&saved)
		if err != nil {
			return nil, fmt.Errorf("failed to insert sales profile: %w", missingReference(err))
		}
		return &saved, nil
	}

	query := `
		UPDATE sales_profiles
		SET product_id = $2, day_of_week = $3, quantity_sold = $4
		WHERE id = $1
		RETURNING ` + salesProfileColumns
	err := r.db.QueryRowxContext(ctx, query, profile.ID, profile.ProductID, profile.DayOfWeek, profile.QuantitySold).
		StructScan(&saved)
	if err != nil {
		return nil, fmt.Errorf("failed to update sales profile %d: %w", profile.ID, missingReference(notFound(err)))
	}

	return &saved, nil
}

func (r *salesProfileRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sales_profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sales profile %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete sales profile %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("failed to delete sales profile %d: %w", id, repository.ErrNotFound)
	}

	return nil
}
