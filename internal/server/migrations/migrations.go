// Package migrations embeds the goose migrations for the PostgreSQL catalog.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
