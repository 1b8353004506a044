package main

import (
	"context"
	"database/sql"
	"delivery-simulation-service/internal/adapters/dataset"
	"delivery-simulation-service/internal/adapters/repositories"
	"delivery-simulation-service/internal/config"
	"delivery-simulation-service/internal/platform/db"
	"delivery-simulation-service/internal/platform/obs"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// dbtool creates the dataset tables and seeds them from SEED_PATH.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	logger, err := obs.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	conn, dialect, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer conn.Close()

	if err := initAndSeed(context.Background(), conn, dialect, cfg.SeedPath); err != nil {
		logger.Fatal("init and seed", zap.Error(err))
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, dialect db.Dialect, seedPath string) error {
	zap.L().Info("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	src, err := dataset.OpenFile(seedPath)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	ds, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	zap.L().Info("seeding database",
		zap.String("seed_path", seedPath),
		zap.Int("warehouses", len(ds.Warehouses)),
		zap.Int("agents", len(ds.Agents)),
		zap.Int("packages", len(ds.Packages)),
	)
	if err := repositories.SeedDataset(ctx, conn, dialect, ds); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	zap.L().Info("seeding complete")

	return nil
}
