package config

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
)

const driverName = "postgres"

type connectionPool interface {
	SetMaxOpenConns(n int)
	SetMaxIdleConns(n int)
	SetConnMaxLifetime(d time.Duration)
	SetConnMaxIdleTime(d time.Duration)
	PingContext(ctx context.Context) error
	Close() error
}

// OpenPostgresSQLX opens a configured *sqlx.DB for dsn and pings it.
func OpenPostgresSQLX(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, errors.Join(ErrConnectingFailed, err)
	}

	if err = configureAndPing(ctx, db); err != nil {
		return nil, err
	}

	return db, nil
}

// OpenPostgresSQLDB opens a configured *sql.DB for dsn and pings it.
func OpenPostgresSQLDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, errors.Join(ErrConnectingFailed, err)
	}

	if err = configureAndPing(ctx, db); err != nil {
		return nil, err
	}

	return db, nil
}

func configureAndPing(ctx context.Context, db connectionPool) error {
	db.SetMaxOpenConns(defaultMaxConnections)
	db.SetMaxIdleConns(defaultMinConnections)
	db.SetConnMaxLifetime(defaultMaxConnLifetime)
	db.SetConnMaxIdleTime(defaultMaxConnIdleTime)

	if pingErr := db.PingContext(ctx); pingErr != nil {
		_ = db.Close()
		return errors.Join(ErrPingingFailed, pingErr)
	}

	return nil
}
