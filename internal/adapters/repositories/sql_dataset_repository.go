package repositories

import (
	"context"
	"database/sql"
	"delivery-simulation-service/internal/domain"
	"delivery-simulation-service/internal/platform/obs"
	"errors"
	"fmt"
)

// SQL-backed implementation of the DatasetSource port.
// The queries carry no parameters, so one implementation serves SQLite and Postgres.
type SQLDatasetRepository struct{ DB *sql.DB }

func NewSQLDatasetRepository(db *sql.DB) *SQLDatasetRepository {
	return &SQLDatasetRepository{DB: db}
}

// Load reads all warehouses, agents and packages in stored order.
func (s *SQLDatasetRepository) Load(ctx context.Context) (_ *domain.Dataset, err error) {
	defer obs.Time(ctx, "dataset.sql.Load")(&err)

	if s.DB == nil {
		return nil, errors.New("sql dataset repository: DB is nil")
	}

	warehouses, err := s.listWarehouses(ctx)
	if err != nil {
		return nil, err
	}

	agents, err := s.listAgents(ctx)
	if err != nil {
		return nil, err
	}

	packages, err := s.listPackages(ctx)
	if err != nil {
		return nil, err
	}

	ds, err := domain.NewDataset(warehouses, agents, packages)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return ds, nil
}

func (s *SQLDatasetRepository) listWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	query := `
	SELECT
		id,
		id_numeric,
		x,
		y
	FROM warehouses
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: query warehouses table: %w", err)
	}
	defer rows.Close()

	warehouses := make([]domain.Warehouse, 0, 16)
	for rows.Next() {
		var id string
		var numeric int
		var x, y float64
		if err := rows.Scan(&id, &numeric, &x, &y); err != nil {
			return nil, fmt.Errorf("list warehouses: scan row: %w", err)
		}
		warehouses = append(warehouses, domain.Warehouse{
			ID:       domain.ParseID(id, numeric != 0),
			Location: domain.Location{X: x, Y: y},
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list warehouses: row iteration: %w", err)
	}

	return warehouses, nil
}

func (s *SQLDatasetRepository) listAgents(ctx context.Context) ([]*domain.Agent, error) {
	query := `
	SELECT
		id,
		id_numeric,
		x,
		y
	FROM agents
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list agents: query agents table: %w", err)
	}
	defer rows.Close()

	agents := make([]*domain.Agent, 0, 16)
	for rows.Next() {
		var id string
		var numeric int
		var x, y float64
		if err := rows.Scan(&id, &numeric, &x, &y); err != nil {
			return nil, fmt.Errorf("list agents: scan row: %w", err)
		}
		agents = append(agents, domain.NewAgent(domain.ParseID(id, numeric != 0), domain.Location{X: x, Y: y}))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list agents: row iteration: %w", err)
	}

	return agents, nil
}

func (s *SQLDatasetRepository) listPackages(ctx context.Context) ([]*domain.Package, error) {
	query := `
	SELECT
		id,
		id_numeric,
		warehouse_id,
		warehouse_id_numeric,
		destination_x,
		destination_y
	FROM packages
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list packages: query packages table: %w", err)
	}
	defer rows.Close()

	packages := make([]*domain.Package, 0, 64)
	for rows.Next() {
		var id, warehouseID string
		var idNumeric, warehouseNumeric int
		var x, y float64
		if err := rows.Scan(&id, &idNumeric, &warehouseID, &warehouseNumeric, &x, &y); err != nil {
			return nil, fmt.Errorf("list packages: scan row: %w", err)
		}
		packages = append(packages, &domain.Package{
			ID:          domain.ParseID(id, idNumeric != 0),
			WarehouseID: domain.ParseID(warehouseID, warehouseNumeric != 0),
			Destination: domain.Location{X: x, Y: y},
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list packages: row iteration: %w", err)
	}

	return packages, nil
}
