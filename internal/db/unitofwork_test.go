package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/golive/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertRun = `INSERT INTO runs (id, kind, quality, created_at) VALUES (?, 'optimize', ?, '2026-01-01T00:00:00Z')`

func openLedger(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func countRuns(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n))
	return n
}

func TestWithinTx_CommitsRunAndReasons(t *testing.T) {
	database, uow := openLedger(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertRun, "r1", 86.3); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO run_reasons (run_id, position, reason) VALUES ('r1', 0, 'blocked')`)
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, 1, countRuns(t, database))
	var reason string
	require.NoError(t, database.QueryRow(`SELECT reason FROM run_reasons WHERE run_id = 'r1'`).Scan(&reason))
	assert.Equal(t, "blocked", reason)
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	database, uow := openLedger(t)
	boom := errors.New("reason insert failed")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertRun, "r2", 70.0); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, countRuns(t, database))
}

func TestWithinTx_RollsBackOnConstraintViolation(t *testing.T) {
	database, uow := openLedger(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertRun, "r3", 90.0); err != nil {
			return err
		}
		// Reason for a run that does not exist.
		_, err := tx.ExecContext(ctx, `INSERT INTO run_reasons (run_id, position, reason) VALUES ('missing', 0, 'x')`)
		return err
	})
	require.Error(t, err)
	assert.Zero(t, countRuns(t, database))
}

func TestWithinTx_RollsBackOnPanic(t *testing.T) {
	database, uow := openLedger(t)

	assert.PanicsWithValue(t, "boom", func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, insertRun, "r4", 91.0)
			panic("boom")
		})
	})
	assert.Zero(t, countRuns(t, database))
}

func TestWithinTx_CanceledContextDoesNotRun(t *testing.T) {
	_, uow := openLedger(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := uow.WithinTx(ctx, func(context.Context, db.DBTX) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
