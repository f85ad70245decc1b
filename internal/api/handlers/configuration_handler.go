package handlers

import (
	"context"
	"net/http"

	"github.com/andresuchdata/stockopt/internal/domain"
	"github.com/gin-gonic/gin"
)

type ConfigurationService interface {
	ListParameters(ctx context.Context) ([]*domain.CalculationParameters, error)
	GetParameters(ctx context.Context, id int64) (*domain.CalculationParameters, error)
	SaveParameters(ctx context.Context, params *domain.CalculationParameters) (*domain.CalculationParameters, error)
}

type ConfigurationHandler struct {
	service ConfigurationService
}

func NewConfigurationHandler(service ConfigurationService) *ConfigurationHandler {
	return &ConfigurationHandler{service: service}
}

func (h *ConfigurationHandler) List(c *gin.Context) {
	params, err := h.service.ListParameters(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to fetch calculation parameters")
		return
	}

	c.JSON(http.StatusOK, params)
}

func (h *ConfigurationHandler) Get(c *gin.Context) {
	id, ok := parsePositiveInt64(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return
	}

	params, err := h.service.GetParameters(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to fetch calculation parameters")
		return
	}

	c.JSON(http.StatusOK, params)
}

func (h *ConfigurationHandler) Save(c *gin.Context) {
	var req domain.CalculationParameters
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	saved, err := h.service.SaveParameters(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "failed to save calculation parameters")
		return
	}

	c.JSON(http.StatusOK, saved)
}
