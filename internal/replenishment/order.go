package replenishment

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidOrder is returned by NewOrder when the order shape is impossible.
var ErrInvalidOrder = errors.New("invalid order")

// Parameters are the replenishment settings of a product.
type Parameters struct {
	LeadTimeDays  int
	OrderMultiple int
}

// Order is a replenishment order placed by the simulation.
type Order struct {
	OrderDate    time.Time
	DeliveryDate time.Time
	Quantity     int
}

// NewOrder validates and builds an order.
func NewOrder(orderDate, deliveryDate time.Time, quantity int) (Order, error) {
	if quantity < 0 {
		return Order{}, fmt.Errorf("%w: quantity cannot be negative (%d)", ErrInvalidOrder, quantity)
	}
	if deliveryDate.Before(orderDate) {
		return Order{}, fmt.Errorf("%w: delivery %s is before order %s", ErrInvalidOrder,
			deliveryDate.Format(time.DateOnly), orderDate.Format(time.DateOnly))
	}
	return Order{OrderDate: orderDate, DeliveryDate: deliveryDate, Quantity: quantity}, nil
}

// mustOrder is used inside the walk where rounding and lead-time arithmetic
// guarantee a valid shape; a failure there is a wiring defect.
func mustOrder(orderDate, deliveryDate time.Time, quantity int) Order {
	order, err := NewOrder(orderDate, deliveryDate, quantity)
	if err != nil {
		panic(err)
	}
	return order
}
