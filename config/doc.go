// Package config provides PostgreSQL connection configuration for the user persistence examples.
//
// It builds connections for the three adapters the examples support (pgxpool.Pool, sql.DB
// and sqlx.DB) from a DSN, applying the same pool settings to each.
package config
