// Package sqlite provides the SQLite-backed implementation of the driven store ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO. It implements every store interface through a single database handle:
//
//   - UserStore: Account persistence
//   - SessionStore: The single current-user slot
//   - ProductStore: Owner-scoped product persistence
//
// # Schema
//
// The baseline schema lives in the migrations/ directory and is applied with
// goose when the store is initialised. Every table is created with
// IF NOT EXISTS, so databases written by earlier builds are adopted as-is.
//
// # Data Location
//
// By default, the database is stored at ~/.shopdesk/data/shopdesk.db
//
// # Thread Safety
//
// One mutex serialises every operation on the handle, reads included.
// The connection pool is capped at a single connection.
package sqlite
