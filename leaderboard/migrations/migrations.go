// Package migrations embeds the leaderboard schema
package migrations

import "embed"

// FS holds the ordered .sql migration files
//
//go:embed *.sql
var FS embed.FS
