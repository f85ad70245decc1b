// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/andresuchdata/stockopt/internal/api/handlers"
	"github.com/andresuchdata/stockopt/internal/api/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Optimization        handlers.OptimizationService
	Configuration       handlers.ConfigurationService
	SalesProfile        handlers.SalesProfileService
	DefaultInitialStock int
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api")

	if services != nil {
		if services.Optimization != nil {
			optimizationHandler := handlers.NewOptimizationHandler(services.Optimization, services.DefaultInitialStock)
			optimizationGroup := apiGroup.Group("/optimization")
			{
				optimizationGroup.POST("/calculate", optimizationHandler.CalculateOrderPlan)
				optimizationGroup.GET("/optimal-multiple", optimizationHandler.GetOptimalMultiple)
				optimizationGroup.GET("/monthly-stock-stats", optimizationHandler.GetMonthlyStockStats)
				optimizationGroup.POST("/export", optimizationHandler.ExportPlan)
				optimizationGroup.GET("/exports", optimizationHandler.ListExports)
				optimizationGroup.GET("/orders", optimizationHandler.ListOrders)
			}
			apiGroup.GET("/products", optimizationHandler.ListProducts)
		}

		if services.Configuration != nil {
			configurationHandler := handlers.NewConfigurationHandler(services.Configuration)
			apiGroup.GET("/config", configurationHandler.List)
			apiGroup.GET("/config/:id", configurationHandler.Get)
			apiGroup.POST("/config", configurationHandler.Save)
		}

		if services.SalesProfile != nil {
			salesProfileHandler := handlers.NewSalesProfileHandler(services.SalesProfile)
			salesProfileGroup := apiGroup.Group("/sales-profile")
			{
				salesProfileGroup.GET("", salesProfileHandler.List)
				salesProfileGroup.POST("", salesProfileHandler.Save)
				salesProfileGroup.DELETE("/:id", salesProfileHandler.Delete)
			}
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
