package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGXAdapter implements DBAdapter for pgxpool.Pool.
type PGXAdapter struct {
	pool *pgxpool.Pool
}

// NewPGXAdapter creates a new PGX adapter.
func NewPGXAdapter(pool *pgxpool.Pool) *PGXAdapter {
	return &PGXAdapter{pool: pool}
}

func (p *PGXAdapter) QueryRow(ctx context.Context, query string) DBRow {
	return &pgxRow{row: p.pool.QueryRow(ctx, query)}
}

func (p *PGXAdapter) Exec(ctx context.Context, query string) (int64, error) {
	tag, err := p.pool.Exec(ctx, query)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

// pgxRow wraps pgx.Row and translates pgx.ErrNoRows.
type pgxRow struct {
	row pgx.Row
}

func (p *pgxRow) Scan(dest ...any) error {
	err := p.row.Scan(dest...)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNoRows
	}

	return err
}
