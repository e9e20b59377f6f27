// Package migrations embeds the SQL schema migrations for the outcome store.
package migrations

import "embed"

// FS holds all *.sql migration files.
//
//go:embed *.sql
var FS embed.FS
