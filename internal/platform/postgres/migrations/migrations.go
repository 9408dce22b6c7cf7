// Package migrations embeds the goose SQL migrations that define the
// applicant challenge schema.
package migrations

import "embed"

// FS holds the embedded migration files, applied with goose at startup.
//
//go:embed *.sql
var FS embed.FS
