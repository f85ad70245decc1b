package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/andresuchdata/stockopt/internal/cache"
	"github.com/andresuchdata/stockopt/internal/config"
	"github.com/andresuchdata/stockopt/internal/repository/postgres"
	"github.com/andresuchdata/stockopt/pkg/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

type contextKey string

const dbKey contextKey = "db"

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func initDB(c *cli.Context) error {
	// Initialize database connection
	sqlDB, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Test the connection
	if err := sqlDB.PingContext(c.Context); err != nil {
		sqlDB.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	// Store the database connection in the context
	c.Context = context.WithValue(c.Context, dbKey, postgres.Wrap(sqlx.NewDb(sqlDB, "pgx")))
	return nil
}

func closeDB(c *cli.Context) error {
	// Close the database connection when done
	if db, ok := c.Context.Value(dbKey).(*postgres.DB); ok && db != nil {
		return db.Close()
	}
	return nil
}

func dbFromContext(c *cli.Context) (*postgres.DB, error) {
	db, ok := c.Context.Value(dbKey).(*postgres.DB)
	if !ok || db == nil {
		return nil, fmt.Errorf("database connection not initialized")
	}
	return db, nil
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}
	logger.Configure("debug", os.Getenv("LOG_LEVEL"))

	app := &cli.App{
		Name:  "seed",
		Usage: "Create the schema and seed the default product",
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "Create tables and indexes",
				Flags:  []cli.Flag{newDBURLFlag()},
				Before: initDB,
				After:  closeDB,
				Action: runMigrate,
			},
			{
				Name:  "default",
				Usage: "Seed the default product, its parameters, sales profiles and demo purchase orders",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.BoolFlag{
						Name:  "migrate",
						Usage: "Create the schema before seeding",
						Value: true,
					},
				},
				Before: initDB,
				After:  closeDB,
				Action: runDefaultSeed,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
}

func runMigrate(c *cli.Context) error {
	db, err := dbFromContext(c)
	if err != nil {
		return err
	}

	if err := db.Migrate(c.Context); err != nil {
		return err
	}

	log.Info().Msg("schema is up to date")
	return nil
}

func runDefaultSeed(c *cli.Context) error {
	db, err := dbFromContext(c)
	if err != nil {
		return err
	}

	if c.Bool("migrate") {
		if err := db.Migrate(c.Context); err != nil {
			return err
		}
	}

	seeded, err := seedDefaultProduct(c.Context, postgresTxRunner(db))
	if err != nil {
		return fmt.Errorf("failed to seed default product: %w", err)
	}
	if !seeded {
		log.Info().Msg("products already present, skipping default seed")
		return nil
	}

	optimizationCache, err := cache.NewOptimizationCache(config.Load().Cache)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, cache not cleared")
		return nil
	}
	resetCache(c.Context, optimizationCache)
	return nil
}
