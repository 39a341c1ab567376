package adapters

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// SQLAdapter implements DBAdapter for sql.DB.
type SQLAdapter struct {
	db *sql.DB
}

// NewSQLAdapter creates a new SQL adapter.
func NewSQLAdapter(db *sql.DB) *SQLAdapter {
	return &SQLAdapter{db: db}
}

func (s *SQLAdapter) QueryRow(ctx context.Context, query string) DBRow {
	return &stdRow{row: s.db.QueryRowContext(ctx, query)}
}

func (s *SQLAdapter) Exec(ctx context.Context, query string) (int64, error) {
	return execStd(s.db.ExecContext(ctx, query))
}

// SQLXAdapter implements DBAdapter for sqlx.DB.
type SQLXAdapter struct {
	db *sqlx.DB
}

// NewSQLXAdapter creates a new SQLX adapter.
func NewSQLXAdapter(db *sqlx.DB) *SQLXAdapter {
	return &SQLXAdapter{db: db}
}

func (s *SQLXAdapter) QueryRow(ctx context.Context, query string) DBRow {
	return &stdRow{row: s.db.QueryRowxContext(ctx, query)}
}

func (s *SQLXAdapter) Exec(ctx context.Context, query string) (int64, error) {
	return execStd(s.db.ExecContext(ctx, query))
}

// stdRow wraps sql.Row or sqlx.Row and translates sql.ErrNoRows.
type stdRow struct {
	row interface{ Scan(dest ...any) error }
}

func (r *stdRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoRows
	}

	return err
}

func execStd(result sql.Result, err error) (int64, error) {
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
