package postgres

import "embed"

// MigrationsFS embeds the SQL migration files so the server binary can
// bring a fresh database up to the current schema without shipping the
// migration directory alongside it.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
