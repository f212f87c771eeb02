// Package migrations embeds the schema migration files so the binary and the
// tests bootstrap the exact same schema.
package migrations

import "embed"

// FS holds the numbered up/down migration files.
//
//go:embed *.sql
var FS embed.FS
