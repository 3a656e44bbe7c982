// Package sqliteexternal provides the optional CGO SQLite driver.
//
// To use the CGO driver (github.com/mattn/go-sqlite3):
//
//	import _ "github.com/FocuswithJustin/babcal/contrib/sqlite-external"
//
// Build with:
//
//	CGO_ENABLED=1 go build -tags cgo_sqlite
//
// Without the tag, github.com/FocuswithJustin/babcal/core/sqlite registers
// the pure Go modernc.org/sqlite driver and this package is empty.
package sqliteexternal
