// internal/repository/repository.go
package repository

import (
	"context"
	"errors"

	"github.com/andresuchdata/stockopt/internal/domain"
)

var (
	// ErrNotFound is returned when a lookup by identifier matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrMissingReference is returned when a write points at a row that does not exist.
	ErrMissingReference = errors.New("referenced record does not exist")
)

type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
}

type ParametersRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.CalculationParameters, error)
	FindByProductID(ctx context.Context, productID int64) (*domain.CalculationParameters, error)
	List(ctx context.Context) ([]*domain.CalculationParameters, error)
	// Save inserts params or, when a row for the product exists, updates it.
	Save(ctx context.Context, params *domain.CalculationParameters) (*domain.CalculationParameters, error)
}

type SalesProfileRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.SalesProfile, error)
	FindByProductID(ctx context.Context, productID int64) ([]*domain.SalesProfile, error)
	Save(ctx context.Context, profile *domain.SalesProfile) (*domain.SalesProfile, error)
	Delete(ctx context.Context, id int64) error
}

type PurchaseOrderRepository interface {
	// SaveAll inserts the orders in one transaction and fills their IDs.
	SaveAll(ctx context.Context, orders []*domain.PurchaseOrder) error
	FindByProductID(ctx context.Context, productID int64) ([]*domain.PurchaseOrder, error)
}
