package adapters

import (
	"context"
	"errors"
)

// ErrNoRows is returned by DBRow.Scan when the query matched nothing.
var ErrNoRows = errors.New("no rows in result set")

// DBAdapter defines the database operations needed by the user store.
type DBAdapter interface {
	QueryRow(ctx context.Context, query string) DBRow
	Exec(ctx context.Context, query string) (int64, error)
}

// DBRow is a single result row.
type DBRow interface {
	Scan(dest ...any) error
}
