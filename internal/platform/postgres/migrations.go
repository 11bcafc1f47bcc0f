package postgres

import (
	"embed"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Dialect is the goose dialect for this backend.
const Dialect = goose.DialectPostgres

// Migrations returns the embedded schema migrations rooted at the
// migrations directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		// ALLOW-PANIC: the directory is embedded at compile time
		panic(err)
	}
	return sub
}
