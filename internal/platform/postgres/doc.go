// Package postgres provides PostgreSQL implementations of the store
// interfaces defined in internal/store, together with the embedded schema
// migrations for that backend. Connections are opened through the pgx
// database/sql driver.
package postgres
