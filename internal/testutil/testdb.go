package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/golive/internal/db"
)

// NewTestDB opens a migrated in-memory run ledger that is closed with the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("opening test ledger: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// NewTestLedger returns a fresh in-memory ledger and a unit of work over it.
func NewTestLedger(t *testing.T) (*sql.DB, db.UnitOfWork) {
	t.Helper()
	database := NewTestDB(t)
	return database, NewTestUoW(database)
}
