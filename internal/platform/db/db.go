package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect selects SQL placeholder and upsert syntax.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// DialectOf infers the dialect from a DATABASE_URL value.
// postgres:// and postgresql:// URLs select Postgres; anything else is a SQLite path.
func DialectOf(databaseURL string) Dialect {
	u := strings.ToLower(strings.TrimSpace(databaseURL))
	if strings.HasPrefix(u, "postgres://") || strings.HasPrefix(u, "postgresql://") {
		return Postgres
	}
	return SQLite
}

// Open connects to Postgres or SQLite depending on databaseURL.
func Open(databaseURL string) (*sql.DB, Dialect, error) {
	dialect := DialectOf(databaseURL)
	if dialect == Postgres {
		db, err := OpenPostgres(databaseURL)
		return db, dialect, err
	}
	db, err := OpenSqlite(databaseURL)
	return db, dialect, err
}

func OpenPostgres(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("openDB: open postgres database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("openDB: verify postgres connection: %w", err)
	}

	return db, nil
}

func OpenSqlite(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
