package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/andresuchdata/stockopt/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError maps service errors to status codes. Unknown errors are
// reported as 500 with message as the public error text.
func respondError(c *gin.Context, err error, message string) {
	var resErr *domain.ResolutionError

	switch {
	case errors.As(err, &resErr):
		c.JSON(http.StatusNotFound, gin.H{"error": resErr.Error()})
	case errors.Is(err, domain.ErrSalesProfileNotFound),
		errors.Is(err, domain.ErrParametersNotFound),
		errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(message)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message, "details": err.Error()})
	}
}

// requireProductID reads the productId query parameter, writing a 400
// response when it is missing or not positive.
func requireProductID(c *gin.Context) (int64, bool) {
	productID, ok := parsePositiveInt64(c.Query("productId"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId must be a positive integer"})
		return 0, false
	}
	return productID, true
}

func parsePositiveInt64(value string) (int64, bool) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
