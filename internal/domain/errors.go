package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrParametersNotFound   = errors.New("calculation parameters not found")
	ErrNoDemandPattern      = errors.New("no sales profiles found")
	ErrSalesProfileNotFound = errors.New("sales profile not found")
	ErrInvalidInput         = errors.New("invalid input")
)

// ResolutionError reports which input of a product could not be resolved
// before running a simulation.
type ResolutionError struct {
	Reason    error
	ProductID int64
}

func (e *ResolutionError) Error() string {
	switch e.Reason {
	case ErrProductNotFound:
		return fmt.Sprintf("Product not found: %d", e.ProductID)
	case ErrParametersNotFound:
		return fmt.Sprintf("Calculation parameters not found for product: %d", e.ProductID)
	case ErrNoDemandPattern:
		return fmt.Sprintf("No sales profiles found for product: %d", e.ProductID)
	default:
		return fmt.Sprintf("%v: %d", e.Reason, e.ProductID)
	}
}

func (e *ResolutionError) Unwrap() error {
	return e.Reason
}

// NewResolutionError builds a ResolutionError for productID.
func NewResolutionError(reason error, productID int64) *ResolutionError {
	return &ResolutionError{Reason: reason, ProductID: productID}
}

// InvalidInputf formats a validation failure that wraps ErrInvalidInput.
func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
