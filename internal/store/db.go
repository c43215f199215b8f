package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the database access layer. It is satisfied by both
// *sql.DB and *sql.Tx, so store implementations can run against either a
// plain connection pool or an in-flight transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
