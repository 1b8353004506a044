package ports

import (
	"context"
	"delivery-simulation-service/internal/domain"
)

// Port: a boundary for loading the dataset of one simulation run.
type DatasetSource interface {
	// Load returns a fresh Dataset; entities are never shared between calls.
	Load(ctx context.Context) (*domain.Dataset, error)
}
