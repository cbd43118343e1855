// Package migrations embeds the SQL schema for the SQLite store.
package migrations

import "embed"

// FS contains the goose-annotated SQL files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
