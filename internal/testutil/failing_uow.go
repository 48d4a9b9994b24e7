package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/golive/internal/db"
)

// FailOnNthExecUoW is a UnitOfWork whose transaction fails the FailOn-th
// ExecContext call (1-based) with Err. Reads are not counted. Recording a
// run issues one exec for the run row and one per reason, so FailOn 2 fails
// the first reason insert after the run row has been written.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	wrap := func(tx *sql.Tx) db.DBTX {
		return &execFaultTx{DBTX: tx, failOn: u.FailOn, err: u.Err}
	}
	return db.RunTx(ctx, u.DB, wrap, fn)
}

type execFaultTx struct {
	db.DBTX
	execs  atomic.Int32
	failOn int32
	err    error
}

func (f *execFaultTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.execs.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
