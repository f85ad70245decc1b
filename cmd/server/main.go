// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andresuchdata/stockopt/internal/api"
	"github.com/andresuchdata/stockopt/internal/cache"
	"github.com/andresuchdata/stockopt/internal/config"
	"github.com/andresuchdata/stockopt/internal/repository/postgres"
	"github.com/andresuchdata/stockopt/internal/service"
	"github.com/andresuchdata/stockopt/internal/storage"
	"github.com/andresuchdata/stockopt/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.Configure(cfg.Server.Mode, cfg.Server.LogLevel)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	optimizationCache, err := cache.NewOptimizationCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Redis unavailable, caching disabled")
		optimizationCache = cache.NewNoopOptimizationCache()
	}

	var objectStore storage.ObjectStorage
	if cfg.Storage.Enabled {
		s3Client, err := storage.NewS3Client(cfg.Storage)
		if err != nil {
			logger.Log.Fatal().Err(err).Msg("Failed to initialize object storage")
		}
		objectStore = s3Client
	}

	// Initialize repositories and services
	products := postgres.NewProductRepository(db)
	params := postgres.NewParametersRepository(db)
	profiles := postgres.NewSalesProfileRepository(db)
	orders := postgres.NewPurchaseOrderRepository(db)

	resolver := service.NewInputResolver(products, params, profiles)
	exporter := service.NewExporter(cfg.App.DataDir, objectStore, cfg.Storage.Prefix)

	services := &api.Services{
		Optimization:        service.NewOptimizationService(resolver, orders, optimizationCache, exporter),
		Configuration:       service.NewConfigurationService(params, optimizationCache),
		SalesProfile:        service.NewSalesProfileService(profiles, optimizationCache),
		DefaultInitialStock: cfg.App.DefaultInitialStock,
	}

	// Initialize HTTP server
	router := api.NewRouter(services, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
