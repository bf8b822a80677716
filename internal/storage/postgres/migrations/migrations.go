// Package migrations embeds the goose migrations for the remote
// ledgers collection.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
