package services

import (
	"context"
	"delivery-simulation-service/internal/domain"
	"delivery-simulation-service/internal/platform/obs"
	"fmt"
)

// SimulateDeliveries applies every package's delivery to its assigned agent.
//
// Deliveries run strictly in package load order: an agent's position after one
// delivery is the starting point of its next, so reordering changes the totals.
func SimulateDeliveries(ctx context.Context, ds *domain.Dataset) (err error) {
	defer obs.Time(ctx, "services.SimulateDeliveries")(&err)

	for _, pkg := range ds.Packages {
		if err := DeliverPackage(ds, pkg); err != nil {
			return fmt.Errorf("simulate deliveries: %w", err)
		}
	}

	return nil
}

// DeliverPackage moves the package's assigned agent through one delivery.
func DeliverPackage(ds *domain.Dataset, pkg *domain.Package) error {
	if pkg.AssignedAgent == nil {
		return fmt.Errorf("deliver package %s: %w", pkg.ID, domain.ErrUnassignedPackage)
	}

	w, err := ds.Warehouse(pkg.WarehouseID)
	if err != nil {
		return fmt.Errorf("deliver package %s: %w", pkg.ID, err)
	}

	pkg.AssignedAgent.Deliver(*w, *pkg)
	return nil
}
