package dto

import (
	"delivery-simulation-service/internal/domain"
	"fmt"
)

type WarehouseRecord struct {
	ID domain.ID `json:"id"`
	X  float64   `json:"x"`
	Y  float64   `json:"y"`
}

type AgentRecord struct {
	ID domain.ID `json:"id"`
	X  float64   `json:"x"`
	Y  float64   `json:"y"`
}

type PackageRecord struct {
	ID           domain.ID `json:"id"`
	WarehouseID  domain.ID `json:"warehouse_id"`
	DestinationX float64   `json:"destination_x"`
	DestinationY float64   `json:"destination_y"`
}

// DatasetRequest is the wire form of a simulation input.
type DatasetRequest struct {
	Warehouses []WarehouseRecord `json:"warehouses"`
	Agents     []AgentRecord     `json:"agents"`
	Packages   []PackageRecord   `json:"packages"`
}

// ToDomain converts the records into a fresh Dataset, preserving record order.
func (r DatasetRequest) ToDomain() (*domain.Dataset, error) {
	warehouses := make([]domain.Warehouse, 0, len(r.Warehouses))
	for i, w := range r.Warehouses {
		l := domain.Location{X: w.X, Y: w.Y}
		if !l.IsFinite() {
			return nil, fmt.Errorf("warehouses[%d] id=%s: non-finite coordinates: %w", i, w.ID, domain.ErrInvalidDataset)
		}
		warehouses = append(warehouses, domain.Warehouse{ID: w.ID, Location: l})
	}

	agents := make([]*domain.Agent, 0, len(r.Agents))
	for i, a := range r.Agents {
		l := domain.Location{X: a.X, Y: a.Y}
		if !l.IsFinite() {
			return nil, fmt.Errorf("agents[%d] id=%s: non-finite coordinates: %w", i, a.ID, domain.ErrInvalidDataset)
		}
		agents = append(agents, domain.NewAgent(a.ID, l))
	}

	packages := make([]*domain.Package, 0, len(r.Packages))
	for i, p := range r.Packages {
		l := domain.Location{X: p.DestinationX, Y: p.DestinationY}
		if !l.IsFinite() {
			return nil, fmt.Errorf("packages[%d] id=%s: non-finite destination: %w", i, p.ID, domain.ErrInvalidDataset)
		}
		packages = append(packages, &domain.Package{
			ID:          p.ID,
			WarehouseID: p.WarehouseID,
			Destination: l,
		})
	}

	return domain.NewDataset(warehouses, agents, packages)
}
