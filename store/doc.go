// Package store persists the history of estimation runs in SQLite.
//
// This package is responsible for:
//   - Opening the database file and applying the embedded goose migrations (`db.go`).
//   - Mapping Record values to the `runs` table and back (`runs.go`), storing
//     timestamps as unix milliseconds and durations as nanoseconds.
//   - Generating UUIDv7 run ids so that ids sort by creation time.
//
// Only run summaries are stored; individual points never reach the database.
package store
