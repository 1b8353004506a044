package services

import (
	"context"
	"delivery-simulation-service/internal/domain"
	"delivery-simulation-service/internal/platform/obs"
	"delivery-simulation-service/internal/ports"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Simulate runs assignment, simulation and reporting over a loaded dataset.
// The dataset's agents are mutated; callers must not reuse it for another run.
func Simulate(ctx context.Context, ds *domain.Dataset) (*domain.Report, error) {
	if ds == nil {
		return nil, errors.New("simulate: dataset must be non-nil")
	}

	if err := AssignPackages(ctx, ds); err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	if err := SimulateDeliveries(ctx, ds); err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	return GenerateReport(ds.Agents), nil
}

// RunSimulation is the batch pipeline: load, assign, simulate, report, write.
func RunSimulation(
	ctx context.Context,
	source ports.DatasetSource,
	writer ports.ReportWriter,
) (_ *domain.Report, err error) {
	defer obs.Time(ctx, "services.RunSimulation")(&err)

	ds, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("run simulation: load dataset: %w", err)
	}

	obs.Logger(ctx).Info("dataset loaded",
		zap.Int("warehouses", len(ds.Warehouses)),
		zap.Int("agents", len(ds.Agents)),
		zap.Int("packages", len(ds.Packages)),
	)

	report, err := Simulate(ctx, ds)
	if err != nil {
		return nil, fmt.Errorf("run simulation: %w", err)
	}

	if err := writer.Write(ctx, report); err != nil {
		return nil, fmt.Errorf("run simulation: write report: %w", err)
	}

	best := "none"
	if report.BestAgent != nil {
		best = report.BestAgent.String()
	}
	obs.Logger(ctx).Info("report written", zap.String("best_agent", best))

	return report, nil
}
