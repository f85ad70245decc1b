package handlers

import (
	"context"
	"net/http"

	"github.com/andresuchdata/stockopt/internal/domain"
	"github.com/gin-gonic/gin"
)

type SalesProfileService interface {
	ListByProduct(ctx context.Context, productID int64) ([]*domain.SalesProfile, error)
	SaveProfile(ctx context.Context, profile *domain.SalesProfile) (*domain.SalesProfile, error)
	DeleteProfile(ctx context.Context, id int64) error
}

type SalesProfileHandler struct {
	service SalesProfileService
}

func NewSalesProfileHandler(service SalesProfileService) *SalesProfileHandler {
	return &SalesProfileHandler{service: service}
}

func (h *SalesProfileHandler) List(c *gin.Context) {
	productID, ok := requireProductID(c)
	if !ok {
		return
	}

	profiles, err := h.service.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err, "failed to fetch sales profiles")
		return
	}

	c.JSON(http.StatusOK, profiles)
}

func (h *SalesProfileHandler) Save(c *gin.Context) {
	var req domain.SalesProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	saved, err := h.service.SaveProfile(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "failed to save sales profile")
		return
	}

	c.JSON(http.StatusOK, saved)
}

func (h *SalesProfileHandler) Delete(c *gin.Context) {
	id, ok := parsePositiveInt64(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return
	}

	if err := h.service.DeleteProfile(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete sales profile")
		return
	}

	c.Status(http.StatusNoContent)
}
