package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/andresuchdata/stockopt/internal/domain"
	"github.com/gin-gonic/gin"
)

// OptimizationService is implemented by *service.OptimizationService.
type OptimizationService interface {
	CalculateOrderPlan(ctx context.Context, productID int64, initialStock int) ([]*domain.PurchaseOrder, error)
	FindOptimalMultiple(ctx context.Context, productID int64, initialStock int) (int, error)
	CalculateMonthlyStockStats(ctx context.Context, productID int64, initialStock int) ([]domain.MonthlyStockStats, error)
	ExportPlan(ctx context.Context, productID int64, initialStock int) (*domain.ExportResult, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	ListOrders(ctx context.Context, productID int64) ([]*domain.PurchaseOrder, error)
	ListExports(ctx context.Context, productID int64) ([]domain.ExportedObject, error)
}

type OptimizationHandler struct {
	service             OptimizationService
	defaultInitialStock int
}

func NewOptimizationHandler(service OptimizationService, defaultInitialStock int) *OptimizationHandler {
	return &OptimizationHandler{service: service, defaultInitialStock: defaultInitialStock}
}

type planQuery struct {
	productID    int64
	initialStock int
}

// parsePlanQuery reads productId (required) and initialStock (optional). It
// writes a 400 response and returns false when either is malformed.
func (h *OptimizationHandler) parsePlanQuery(c *gin.Context) (planQuery, bool) {
	q := planQuery{initialStock: h.defaultInitialStock}

	productID, ok := requireProductID(c)
	if !ok {
		return q, false
	}
	q.productID = productID

	if raw := c.Query("initialStock"); raw != "" {
		stock, err := strconv.Atoi(raw)
		if err != nil || stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "initialStock must be a non-negative integer"})
			return q, false
		}
		q.initialStock = stock
	}

	return q, true
}

// CalculateOrderPlan handles POST /api/optimization/calculate
func (h *OptimizationHandler) CalculateOrderPlan(c *gin.Context) {
	q, ok := h.parsePlanQuery(c)
	if !ok {
		return
	}

	orders, err := h.service.CalculateOrderPlan(c.Request.Context(), q.productID, q.initialStock)
	if err != nil {
		respondError(c, err, "failed to calculate order plan")
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOptimalMultiple handles GET /api/optimization/optimal-multiple
func (h *OptimizationHandler) GetOptimalMultiple(c *gin.Context) {
	q, ok := h.parsePlanQuery(c)
	if !ok {
		return
	}

	multiple, err := h.service.FindOptimalMultiple(c.Request.Context(), q.productID, q.initialStock)
	if err != nil {
		respondError(c, err, "failed to find optimal multiple")
		return
	}

	c.JSON(http.StatusOK, multiple)
}

// GetMonthlyStockStats handles GET /api/optimization/monthly-stock-stats
func (h *OptimizationHandler) GetMonthlyStockStats(c *gin.Context) {
	q, ok := h.parsePlanQuery(c)
	if !ok {
		return
	}

	stats, err := h.service.CalculateMonthlyStockStats(c.Request.Context(), q.productID, q.initialStock)
	if err != nil {
		respondError(c, err, "failed to calculate monthly stock stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ExportPlan handles POST /api/optimization/export
func (h *OptimizationHandler) ExportPlan(c *gin.Context) {
	q, ok := h.parsePlanQuery(c)
	if !ok {
		return
	}

	result, err := h.service.ExportPlan(c.Request.Context(), q.productID, q.initialStock)
	if err != nil {
		respondError(c, err, "failed to export order plan")
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListProducts handles GET /api/products
func (h *OptimizationHandler) ListProducts(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// ListOrders handles GET /api/optimization/orders
func (h *OptimizationHandler) ListOrders(c *gin.Context) {
	productID, ok := requireProductID(c)
	if !ok {
		return
	}

	orders, err := h.service.ListOrders(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err, "failed to fetch purchase orders")
		return
	}

	c.JSON(http.StatusOK, orders)
}

// ListExports handles GET /api/optimization/exports
func (h *OptimizationHandler) ListExports(c *gin.Context) {
	productID, ok := requireProductID(c)
	if !ok {
		return
	}

	exports, err := h.service.ListExports(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err, "failed to fetch exports")
		return
	}

	c.JSON(http.StatusOK, exports)
}
