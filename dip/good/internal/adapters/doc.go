// Package adapters provide database adapter implementations for the PostgreSQL user store.
//
// pgxpool.Pool, sql.DB and sqlx.DB are wrapped behind the DBAdapter interface so that the
// store only ever sees SQL strings, rows and affected-row counts. Each adapter maps its
// library's "no rows" error to ErrNoRows.
package adapters
