// Package ontrack exposes files embedded at the module root.
package ontrack

import "embed"

// Migrations holds the goose SQL migrations.
//
//go:embed migrations/*.sql
var Migrations embed.FS
