package services

import (
	"context"
	"delivery-simulation-service/internal/domain"
	"delivery-simulation-service/internal/platform/obs"
	"fmt"
	"math"
)

// AssignPackages binds every package to the agent nearest its warehouse.
//
// Packages are processed in load order. Only the packages' AssignedAgent
// references change; agent and warehouse state is read-only here. When several
// agents are equidistant the earliest one in agent order wins. An empty agent
// set is a configuration error as soon as there is a package to assign.
func AssignPackages(ctx context.Context, ds *domain.Dataset) (err error) {
	defer obs.Time(ctx, "services.AssignPackages")(&err)

	if len(ds.Agents) == 0 && len(ds.Packages) > 0 {
		return fmt.Errorf("assign packages: %w", domain.ErrNoAgents)
	}

	for _, pkg := range ds.Packages {
		w, err := ds.Warehouse(pkg.WarehouseID)
		if err != nil {
			return fmt.Errorf("assign packages: package %s: %w", pkg.ID, err)
		}

		pkg.AssignedAgent = NearestAgent(ds.Agents, w.Location)
	}

	return nil
}

// NearestAgent returns the agent closest to loc, or nil for an empty list.
// Ties resolve to the first agent encountered.
func NearestAgent(agents []*domain.Agent, loc domain.Location) *domain.Agent {
	var best *domain.Agent
	minDistance := math.Inf(1)

	for _, a := range agents {
		// Strict comparison keeps the earliest agent on equal distances.
		if d := a.Location().DistanceTo(loc); best == nil || d < minDistance {
			minDistance = d
			best = a
		}
	}

	return best
}
