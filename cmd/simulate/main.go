package main

import (
	"context"
	"delivery-simulation-service/internal/adapters/dataset"
	"delivery-simulation-service/internal/adapters/repositories"
	"delivery-simulation-service/internal/config"
	"delivery-simulation-service/internal/domain"
	"delivery-simulation-service/internal/platform/db"
	"delivery-simulation-service/internal/platform/obs"
	"delivery-simulation-service/internal/ports"
	"delivery-simulation-service/internal/services"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	exitRuntimeError       = 1
	exitConfigurationError = 2
)

// main is the batch composition root: load, assign, simulate, report.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()

	logger, err := obs.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx, _ := obs.WithRunID(context.Background())

	if err := run(ctx, cfg, os.Stdout); err != nil {
		obs.Logger(ctx).Error("simulation failed", zap.Error(err))
		_ = logger.Sync()
		if domain.IsConfigurationError(err) {
			os.Exit(exitConfigurationError)
		}
		os.Exit(exitRuntimeError)
	}
}

func run(ctx context.Context, cfg config.Config, stdout io.Writer) error {
	source, closeSource, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	writer := dataset.NewJSONFileWriter(cfg.ReportPath)
	if _, err := services.RunSimulation(ctx, source, writer); err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Delivery simulation completed. Report generated.")
	return nil
}

// openSource reads from the SQL tables when DATABASE_URL is set, otherwise
// from the DATA_PATH file.
func openSource(cfg config.Config) (ports.DatasetSource, func(), error) {
	if cfg.DatabaseURL == "" {
		src, err := dataset.OpenFile(cfg.DataPath)
		if err != nil {
			return nil, nil, err
		}
		return src, func() {}, nil
	}

	conn, _, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return repositories.NewSQLDatasetRepository(conn), func() { _ = conn.Close() }, nil
}
