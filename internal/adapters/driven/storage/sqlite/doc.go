// Package sqlite provides a SQLite-backed implementation of the
// search-history driven port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in
// the migrations/ directory as numbered .up.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.wayfarer/data/history.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
