package store

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database operations the stores need. It is
// implemented by both *sql.DB and *sql.Tx, so a store can run against a
// plain connection or inside a transaction via WithTx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Both the raw connection and a transaction satisfy DBTX, which is what
// lets WithTx rebind a store onto an open transaction.
var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
