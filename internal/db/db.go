package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory ledger.
const MemoryPath = ":memory:"

// ledgerPragmas are per-connection settings. run_reasons relies on
// foreign_keys for its ON DELETE CASCADE.
var ledgerPragmas = []struct{ name, stmt string }{
	{"journal mode", "PRAGMA journal_mode = WAL"},
	{"foreign keys", "PRAGMA foreign_keys = ON"},
	{"busy timeout", "PRAGMA busy_timeout = 5000"},
}

// OpenDB opens the run ledger at path, creating its directory when needed,
// and applies the schema. The pool is pinned to one connection so the pragmas
// hold for every statement and an in-memory ledger stays a single database.
func OpenDB(path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	ledger, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	ledger.SetMaxOpenConns(1)

	for _, p := range ledgerPragmas {
		if _, err := ledger.Exec(p.stmt); err != nil {
			ledger.Close()
			return nil, fmt.Errorf("setting %s: %w", p.name, err)
		}
	}
	if err := Migrate(ledger); err != nil {
		ledger.Close()
		return nil, fmt.Errorf("migrating ledger: %w", err)
	}
	return ledger, nil
}
