package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/golive/internal/db"
	"github.com/alexanderramin/golive/internal/domain"
)

// SQLiteRunRepo implements RunRepo using a SQLite database.
type SQLiteRunRepo struct {
	db db.DBTX
}

// NewSQLiteRunRepo creates a new SQLiteRunRepo. Pass a transaction to make
// the run and its reasons land atomically.
func NewSQLiteRunRepo(conn db.DBTX) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: conn}
}

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const runColumns = `id, kind, target_quality, risk_technical, risk_business, risk_scope,
	iterations, quality, std_dev, success, delays, total_delay_days, estimated_cost, created_at`

func (r *SQLiteRunRepo) Create(ctx context.Context, run *domain.Run) error {
	delays, err := delaysToValue(run.Delays)
	if err != nil {
		return err
	}

	query := `INSERT INTO runs (` + runColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		run.ID,
		string(run.Kind),
		nullableFloatToValue(run.TargetQuality),
		run.Risk.Technical,
		run.Risk.Business,
		run.Risk.Scope,
		run.Iterations,
		run.Quality,
		run.StdDev,
		boolToInt(run.Success),
		delays,
		run.TotalDelayDays,
		run.EstimatedCost,
		run.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	for i, reason := range run.Reasons {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO run_reasons (run_id, position, reason) VALUES (?, ?, ?)`,
			run.ID, i, reason)
		if err != nil {
			return fmt.Errorf("inserting run reason %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteRunRepo) GetByID(ctx context.Context, id string) (*domain.Run, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if err != nil {
		return nil, err
	}
	if run.Reasons, err = r.listReasons(ctx, run.ID); err != nil {
		return nil, err
	}
	return run, nil
}

// List returns runs newest first.
func (r *SQLiteRunRepo) List(ctx context.Context, filter RunFilter) ([]*domain.Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs`
	var args []any
	if filter.Kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(filter.Kind))
	}
	query += ` ORDER BY created_at DESC, id`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	runs, err := scanRuns(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	// Reasons are loaded after the cursor is closed; the ledger runs on a
	// single connection.
	for _, run := range runs {
		if run.Reasons, err = r.listReasons(ctx, run.ID); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func (r *SQLiteRunRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteRunRepo) listReasons(ctx context.Context, runID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT reason FROM run_reasons WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing run reasons: %w", err)
	}
	defer rows.Close()

	var reasons []string
	for rows.Next() {
		var reason string
		if err := rows.Scan(&reason); err != nil {
			return nil, fmt.Errorf("scanning run reason: %w", err)
		}
		reasons = append(reasons, reason)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run reasons: %w", err)
	}
	return reasons, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.Run, error) {
	var (
		run          domain.Run
		kind         string
		target       sql.NullFloat64
		success      int
		delays       sql.NullString
		createdAtStr string
	)
	err := row.Scan(
		&run.ID, &kind, &target,
		&run.Risk.Technical, &run.Risk.Business, &run.Risk.Scope,
		&run.Iterations, &run.Quality, &run.StdDev, &success,
		&delays, &run.TotalDelayDays, &run.EstimatedCost, &createdAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("run: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	run.Kind = domain.RunKind(kind)
	run.TargetQuality = parseNullableFloat(target)
	run.Success = intToBool(success)
	if run.Delays, err = parseDelays(delays); err != nil {
		return nil, fmt.Errorf("run %s: %w", run.ID, err)
	}
	if run.CreatedAt, err = time.Parse(timeLayout, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing run created_at: %w", err)
	}
	return &run, nil
}

func scanRuns(rows *sql.Rows) ([]*domain.Run, error) {
	var runs []*domain.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}
