package postgres

import (
	"context"
	"fmt"

	"github.com/andresuchdata/stockopt/internal/domain"
	"github.com/andresuchdata/stockopt/internal/repository"
	"github.com/jmoiron/sqlx"
)

type purchaseOrderRepository struct {
	db *DB
}

func NewPurchaseOrderRepository(db *DB) repository.PurchaseOrderRepository {
	return &purchaseOrderRepository{db: db}
}

func (r *purchaseOrderRepository) SaveAll(ctx context.Context, orders []*domain.PurchaseOrder) error {
	if len(orders) == 0 {
		return nil
	}

	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO purchase_orders (product_id, order_date, quantity_ordered, delivery_date)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`

		stmt, err := tx.PreparexContext(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer stmt.Close()

		for _, order := range orders {
			err := stmt.QueryRowxContext(
				ctx,
				order.ProductID,
				order.OrderDate,
				order.QuantityOrdered,
				order.DeliveryDate,
			).Scan(&order.ID)
			if err != nil {
				return fmt.Errorf("failed to insert purchase order: %w", missingReference(err))
			}
		}

		return nil
	})
}

func (r *purchaseOrderRepository) FindByProductID(ctx context.Context, productID int64) ([]*domain.PurchaseOrder, error) {
	query := `
		SELECT id, product_id, order_date, quantity_ordered, delivery_date
		FROM purchase_orders
		WHERE product_id = $1
		ORDER BY order_date, id
	`

	var orders []*domain.PurchaseOrder
	if err := r.db.SelectContext(ctx, &orders, query, productID); err != nil {
		return nil, fmt.Errorf("failed to list purchase orders for product %d: %w", productID, err)
	}

	return orders, nil
}
