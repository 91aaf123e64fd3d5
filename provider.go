package sqlmigrate

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/statefold/sqlmigrate/database"
)

const (
	// DefaultMigrationsTablename is the ledger table recording applied
	// migration IDs. The name is part of the on-disk compatibility contract.
	DefaultMigrationsTablename = "_migrations"
	// DefaultSeedsTablename is the ledger table recording applied seed IDs.
	DefaultSeedsTablename = "_seeds"
)

// Provider applies migrations and seeds against a database and keeps the
// ledgers of what has been applied. It holds no state between calls: the
// pending set is recomputed from the ledger on every invocation, so a single
// Provider may be reused across a process's lifetime (at startup, again after
// an upgrade) or rebuilt each time.
//
// The *sql.DB is exclusively owned by the caller for the duration of a call;
// the Provider performs no locking beyond what the underlying transaction
// mechanism provides, and never closes the database.
type Provider struct {
	db             *sql.DB
	migrationStore database.Store
	seedStore      database.Store
	cfg            config
}

// NewProvider returns a new provider for the given dialect and database
// connection.
//
// Use [database.DialectCustom] together with [WithStores] to run against a
// database the package has no built-in dialect for.
func NewProvider(dialect database.Dialect, db *sql.DB, opts ...ProviderOption) (*Provider, error) {
	if db == nil {
		return nil, errors.New("db must not be nil")
	}
	cfg := config{
		migrationsTablename: DefaultMigrationsTablename,
		seedsTablename:      DefaultSeedsTablename,
		logger:              log,
	}
	for _, opt := range opts {
		if err := opt.apply(&cfg); err != nil {
			return nil, err
		}
	}
	migrationStore, seedStore := cfg.migrationStore, cfg.seedStore
	switch {
	case dialect == "" && migrationStore == nil:
		return nil, errors.New("dialect must not be empty")
	case dialect == database.DialectCustom && migrationStore == nil:
		return nil, errors.New("custom dialect requires: WithStores")
	case dialect != database.DialectCustom && migrationStore != nil:
		return nil, fmt.Errorf("dialect must be custom when using WithStores, got %q", dialect)
	case dialect != database.DialectCustom:
		var err error
		migrationStore, err = database.NewStore(dialect, cfg.migrationsTablename)
		if err != nil {
			return nil, err
		}
		seedStore, err = database.NewStore(dialect, cfg.seedsTablename)
		if err != nil {
			return nil, err
		}
	}
	return &Provider{
		db:             db,
		migrationStore: migrationStore,
		seedStore:      seedStore,
		cfg:            cfg,
	}, nil
}

func (p *Provider) printf(format string, v ...any) {
	if p.cfg.verbose {
		p.cfg.logger.Printf(format, v...)
	}
}
