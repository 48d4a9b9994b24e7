package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run on
// every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN is not idempotent in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id               TEXT PRIMARY KEY,
		kind             TEXT NOT NULL CHECK(kind IN ('simulate','optimize')),
		target_quality   REAL,
		risk_technical   REAL NOT NULL DEFAULT 0,
		risk_business    REAL NOT NULL DEFAULT 0,
		risk_scope       REAL NOT NULL DEFAULT 0,
		iterations       INTEGER NOT NULL DEFAULT 0,
		quality          REAL NOT NULL,
		std_dev          REAL NOT NULL DEFAULT 0,
		success          INTEGER NOT NULL DEFAULT 0,
		delays           TEXT,
		total_delay_days INTEGER NOT NULL DEFAULT 0,
		estimated_cost   REAL NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_kind ON runs(kind)`,

	`CREATE TABLE IF NOT EXISTS run_reasons (
		run_id   TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		reason   TEXT NOT NULL,
		PRIMARY KEY (run_id, position)
	)`,
}
