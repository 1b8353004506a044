package repositories

import (
	"context"
	"database/sql"
	"delivery-simulation-service/internal/domain"
	"delivery-simulation-service/internal/platform/db"
	"errors"
	"fmt"
	"strings"
)

// Initialize the dataset schema. The DDL is valid for both SQLite and Postgres.
// position preserves load order, which drives assignment and simulation.
func InitSchema(ctx context.Context, conn *sql.DB) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createWarehousesQuery := `
	CREATE TABLE IF NOT EXISTS warehouses (
		position INTEGER PRIMARY KEY,
		id TEXT NOT NULL,
		id_numeric INTEGER NOT NULL,
		x DOUBLE PRECISION NOT NULL,
		y DOUBLE PRECISION NOT NULL,
		UNIQUE (id, id_numeric)
	);
	`

	createAgentsQuery := `
	CREATE TABLE IF NOT EXISTS agents (
		position INTEGER PRIMARY KEY,
		id TEXT NOT NULL,
		id_numeric INTEGER NOT NULL,
		x DOUBLE PRECISION NOT NULL,
		y DOUBLE PRECISION NOT NULL
	);
	`

	createPackagesQuery := `
	CREATE TABLE IF NOT EXISTS packages (
		position INTEGER PRIMARY KEY,
		id TEXT NOT NULL,
		id_numeric INTEGER NOT NULL,
		warehouse_id TEXT NOT NULL,
		warehouse_id_numeric INTEGER NOT NULL,
		destination_x DOUBLE PRECISION NOT NULL,
		destination_y DOUBLE PRECISION NOT NULL
	);
	`

	statements := []string{
		createWarehousesQuery,
		createAgentsQuery,
		createPackagesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// SeedDataset replaces the stored dataset with ds, keeping its order.
func SeedDataset(ctx context.Context, conn *sql.DB, dialect db.Dialect, ds *domain.Dataset) error {
	if conn == nil {
		return errors.New("seed dataset: DB is nil")
	}
	if ds == nil {
		return errors.New("seed dataset: dataset is nil")
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed dataset: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"packages", "agents", "warehouses"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+";"); err != nil {
			return fmt.Errorf("seed dataset: clear %s: %w", table, err)
		}
	}

	warehouseStmt, err := tx.PrepareContext(ctx, insertQuery(dialect, "warehouses", "position", "id", "id_numeric", "x", "y"))
	if err != nil {
		return fmt.Errorf("seed dataset: prepare warehouse insert: %w", err)
	}
	defer warehouseStmt.Close()

	for i, w := range ds.OrderedWarehouses() {
		if _, err := warehouseStmt.ExecContext(ctx, i, w.ID.String(), flag(w.ID.IsNumeric()), w.Location.X, w.Location.Y); err != nil {
			return fmt.Errorf("seed dataset: insert warehouse id=%s: %w", w.ID, err)
		}
	}

	agentStmt, err := tx.PrepareContext(ctx, insertQuery(dialect, "agents", "position", "id", "id_numeric", "x", "y"))
	if err != nil {
		return fmt.Errorf("seed dataset: prepare agent insert: %w", err)
	}
	defer agentStmt.Close()

	for i, a := range ds.Agents {
		l := a.Location()
		if _, err := agentStmt.ExecContext(ctx, i, a.ID.String(), flag(a.ID.IsNumeric()), l.X, l.Y); err != nil {
			return fmt.Errorf("seed dataset: insert agent id=%s: %w", a.ID, err)
		}
	}

	packageStmt, err := tx.PrepareContext(ctx, insertQuery(dialect, "packages",
		"position", "id", "id_numeric", "warehouse_id", "warehouse_id_numeric", "destination_x", "destination_y"))
	if err != nil {
		return fmt.Errorf("seed dataset: prepare package insert: %w", err)
	}
	defer packageStmt.Close()

	for i, p := range ds.Packages {
		if _, err := packageStmt.ExecContext(ctx,
			i,
			p.ID.String(), flag(p.ID.IsNumeric()),
			p.WarehouseID.String(), flag(p.WarehouseID.IsNumeric()),
			p.Destination.X, p.Destination.Y,
		); err != nil {
			return fmt.Errorf("seed dataset: insert package id=%s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed dataset: commit tx: %w", err)
	}

	return nil
}

// insertQuery builds an INSERT with the dialect's placeholder style.
// Only table and column names are interpolated; values stay parameterized.
func insertQuery(dialect db.Dialect, table string, columns ...string) string {
	ph := make([]string, len(columns))
	for i := range columns {
		if dialect == db.Postgres {
			ph[i] = fmt.Sprintf("$%d", i+1)
		} else {
			ph[i] = "?"
		}
	}

	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s);",
		table, strings.Join(columns, ", "), strings.Join(ph, ", "),
	)
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
