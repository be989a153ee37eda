// Package migrations embeds the goose SQL migrations so the server and the
// test helpers apply the same schema.
package migrations

import "embed"

// FS holds the *.sql migration files.
//
//go:embed *.sql
var FS embed.FS
