// Package dbx holds the tiny DB abstraction shared by local repositories:
// a minimal interface (DBTX) implemented by both *sql.DB and *sql.Tx, so a
// repository can run against a plain handle or inside a transaction without
// knowing which.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the local cache repository.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
