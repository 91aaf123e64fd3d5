// Package sqlmigrate is a schema-migration and seed-data runner for embedded
// SQL databases, built for long-running stateful services that persist through
// restarts and upgrades.
//
// Migrations are ordered (id, SQL batch) pairs applied exactly once, all
// pending ones inside a single transaction. Seeds are ordered (id, func) pairs
// running arbitrary logic, applied exactly once, each inside its own
// transaction. Both are tracked in ledger tables created lazily on first use.
//
// The typical flow embeds the migrations directory and applies it at startup:
//
//	//go:embed migrations/*.sql
//	var embedMigrations embed.FS
//
//	migrations, err := sqlmigrate.CollectMigrations(embedMigrations, "migrations")
//	if err != nil { ... }
//	if err := sqlmigrate.Migrate(ctx, db, migrations); err != nil { ... }
//	if err := sqlmigrate.ApplySeeds(ctx, db, sqlmigrate.RegisteredSeeds()); err != nil { ... }
package sqlmigrate

import (
	"context"
	"database/sql"

	"github.com/statefold/sqlmigrate/database"
)

// Migrate applies pending migrations against a SQLite database using the
// default ledger table. See [Provider.Migrate] for semantics; construct a
// [Provider] for other dialects or options.
func Migrate(ctx context.Context, db *sql.DB, migrations []*Migration) error {
	p, err := NewProvider(database.DialectSQLite3, db)
	if err != nil {
		return err
	}
	return p.Migrate(ctx, migrations)
}

// ApplySeeds applies pending seeds against a SQLite database using the default
// ledger table. See [Provider.Seed] for semantics.
func ApplySeeds(ctx context.Context, db *sql.DB, seeds []*Seed) error {
	p, err := NewProvider(database.DialectSQLite3, db)
	if err != nil {
		return err
	}
	return p.Seed(ctx, seeds)
}
