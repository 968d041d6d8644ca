package sqlkit

import (
	"context"
	"database/sql"
)

// SQLExecutor is the minimal statement-execution surface. *sql.DB, *sql.Tx
// and *sql.Conn all satisfy it, so executors can run against a pool or an
// open transaction without caring which.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Querier is the minimal row-query surface.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

var _ SQLExecutor = (*sql.DB)(nil)
var _ SQLExecutor = (*sql.Tx)(nil)
var _ SQLExecutor = (*sql.Conn)(nil)

var _ Querier = (*sql.DB)(nil)
var _ Querier = (*sql.Tx)(nil)
var _ Querier = (*sql.Conn)(nil)
