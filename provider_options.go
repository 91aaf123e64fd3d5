package sqlmigrate

import (
	"errors"

	"github.com/statefold/sqlmigrate/database"
)

// ProviderOption is a configuration option for a provider.
type ProviderOption interface {
	apply(*config) error
}

type config struct {
	migrationsTablename string
	seedsTablename      string

	migrationStore database.Store
	seedStore      database.Store

	logger  Logger
	verbose bool
	envSub  bool
}

type configFunc func(*config) error

func (f configFunc) apply(cfg *config) error { return f(cfg) }

// WithMigrationsTablename sets the name of the ledger table recording applied
// migrations.
//
// Default: [DefaultMigrationsTablename]
func WithMigrationsTablename(name string) ProviderOption {
	return configFunc(func(cfg *config) error {
		if name == "" {
			return errors.New("migrations tablename must not be empty")
		}
		cfg.migrationsTablename = name
		return nil
	})
}

// WithSeedsTablename sets the name of the ledger table recording applied
// seeds.
//
// Default: [DefaultSeedsTablename]
func WithSeedsTablename(name string) ProviderOption {
	return configFunc(func(cfg *config) error {
		if name == "" {
			return errors.New("seeds tablename must not be empty")
		}
		cfg.seedsTablename = name
		return nil
	})
}

// WithStores supplies caller-implemented ledger stores. Must be used with
// [database.DialectCustom], and overrides the tablename options.
func WithStores(migrations, seeds database.Store) ProviderOption {
	return configFunc(func(cfg *config) error {
		if migrations == nil || seeds == nil {
			return errors.New("stores must not be nil")
		}
		if migrations.Tablename() == "" || seeds.Tablename() == "" {
			return errors.New("stores must have a tablename")
		}
		if migrations.Tablename() == seeds.Tablename() {
			return errors.New("migration and seed stores must use distinct tablenames")
		}
		cfg.migrationStore = migrations
		cfg.seedStore = seeds
		return nil
	})
}

// WithLogger sets the logger this provider writes to.
//
// Default: the package logger, see [SetLogger].
func WithLogger(l Logger) ProviderOption {
	return configFunc(func(cfg *config) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}
		cfg.logger = l
		return nil
	})
}

// WithVerbose enables per-item logging of applied migrations and seeds.
func WithVerbose(b bool) ProviderOption {
	return configFunc(func(cfg *config) error {
		cfg.verbose = b
		return nil
	})
}

// WithEnvSubstitution expands ${ENV_VAR} references in migration SQL before
// execution, using the process environment. Substitution failures abort the
// run before any statement from the offending migration is executed.
func WithEnvSubstitution() ProviderOption {
	return configFunc(func(cfg *config) error {
		cfg.envSub = true
		return nil
	})
}
