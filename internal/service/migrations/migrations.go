// Package migrations embeds the SQL schema migrations applied by goose.
// The statements are written to the portable subset of SQL accepted by both
// PostgreSQL and SQLite, so one migration set serves both backends.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
