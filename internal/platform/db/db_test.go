package db

import "testing"

func TestDialectOf(t *testing.T) {
	tests := map[string]Dialect{
		"postgres://u:p@localhost:5432/sim":    Postgres,
		"POSTGRESQL://localhost/sim":           Postgres,
		"data/sim.db":                          SQLite,
		"file:sim.db?mode=memory&cache=shared": SQLite,
	}

	for in, want := range tests {
		if got := DialectOf(in); got != want {
			t.Errorf("DialectOf(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestOpenSqliteInMemory(t *testing.T) {
	db, dialect, err := Open(":memory:")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer db.Close()

	if dialect != SQLite {
		t.Fatalf("dialect = %v, want SQLite", dialect)
	}
}
