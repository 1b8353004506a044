package services

import (
	"delivery-simulation-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func loc(x, y float64) domain.Location { return domain.Location{X: x, Y: y} }

func warehouse(id string, x, y float64) domain.Warehouse {
	return domain.Warehouse{ID: domain.StringID(id), Location: loc(x, y)}
}

func agent(id string, x, y float64) *domain.Agent {
	return domain.NewAgent(domain.StringID(id), loc(x, y))
}

func pkg(id, warehouseID string, x, y float64) *domain.Package {
	return &domain.Package{
		ID:          domain.StringID(id),
		WarehouseID: domain.StringID(warehouseID),
		Destination: loc(x, y),
	}
}

func newDataset(t *testing.T, ws []domain.Warehouse, as []*domain.Agent, ps []*domain.Package) *domain.Dataset {
	t.Helper()
	ds, err := domain.NewDataset(ws, as, ps)
	require.NoError(t, err)
	return ds
}
