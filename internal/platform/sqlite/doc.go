// Package sqlite provides embedded SQLite implementations of the store
// interfaces, backed by the pure-Go modernc.org/sqlite driver. It serves
// local development and in-process tests.
package sqlite
