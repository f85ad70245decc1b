// internal/domain/models.go
package domain

import "time"

// Product is an item whose stock is planned
type Product struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	InitialStock int       `json:"initialStock" db:"initial_stock"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// CalculationParameters holds the replenishment settings of one product
type CalculationParameters struct {
	ID               int64 `json:"id" db:"id"`
	ProductID        int64 `json:"productId" db:"product_id"`
	DeliveryLeadTime int   `json:"deliveryLeadTime" db:"delivery_lead_time"`
	OrderMultiple    int   `json:"orderMultiple" db:"order_multiple"`
}

// SalesProfile is the quantity of a product sold on one weekday
type SalesProfile struct {
	ID           int64  `json:"id" db:"id"`
	ProductID    int64  `json:"productId" db:"product_id"`
	DayOfWeek    string `json:"dayOfWeek" db:"day_of_week"`
	QuantitySold int    `json:"quantitySold" db:"quantity_sold"`
}

// Weekday parses DayOfWeek
func (p SalesProfile) Weekday() (time.Weekday, bool) {
	return ParseDayOfWeek(p.DayOfWeek)
}

// PurchaseOrder is a persisted replenishment order
type PurchaseOrder struct {
	ID              int64     `json:"id" db:"id"`
	ProductID       int64     `json:"productId" db:"product_id"`
	OrderDate       time.Time `json:"orderDate" db:"order_date"`
	QuantityOrdered int       `json:"quantityOrdered" db:"quantity_ordered"`
	DeliveryDate    time.Time `json:"deliveryDate" db:"delivery_date"`
}

// MonthlyStockStats is the per-month summary returned to clients
type MonthlyStockStats struct {
	Month        string  `json:"month"`
	AverageStock float64 `json:"averageStock"`
	MinStock     int     `json:"minStock"`
	MaxStock     int     `json:"maxStock"`
}

// ExportResult lists where an exported plan was written
type ExportResult struct {
	ProductID    int64     `json:"productId"`
	InitialStock int       `json:"initialStock"`
	Files        []string  `json:"files"`
	Objects      []string  `json:"objects,omitempty"`
	ExportedAt   time.Time `json:"exportedAt"`
}

// ExportedObject is one exported file held in object storage
type ExportedObject struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
}
