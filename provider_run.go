package sqlmigrate

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/mfridman/interpolate"
	"github.com/statefold/sqlmigrate/database"
	"github.com/statefold/sqlmigrate/internal/sqlparser"
	"go.uber.org/multierr"
)

// Migrate applies every migration in the slice that is not yet recorded in the
// migrations ledger, in slice order, inside a single transaction spanning the
// whole pending set. If any migration fails, the entire batch is rolled back
// and a [*MigrationError] identifies the offending migration; migrations
// committed by previous runs are untouched.
//
// If nothing is pending, Migrate returns nil without opening a transaction.
// Calling Migrate twice with the same list is a no-op the second time.
func (p *Provider) Migrate(ctx context.Context, migrations []*Migration) (retErr error) {
	if err := validateMigrations(migrations); err != nil {
		return err
	}
	if err := p.migrationStore.CreateTable(ctx, p.db); err != nil {
		return err
	}
	applied, err := p.appliedSet(ctx, p.migrationStore)
	if err != nil {
		return err
	}
	var pending []*Migration
	for _, m := range migrations {
		if !applied[m.ID] {
			pending = append(pending, m)
		}
	}
	if len(pending) == 0 {
		p.printf("no pending migrations")
		return nil
	}

	// One transaction spans all pending migrations: either every pending
	// migration lands, or none do.
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if retErr != nil {
			retErr = multierr.Append(retErr, tx.Rollback())
		}
	}()
	for _, m := range pending {
		start := time.Now()
		if err := p.applyMigration(ctx, tx, m); err != nil {
			return &MigrationError{ID: m.ID, Err: err}
		}
		p.printf("OK   %s (%s)", m.ID, time.Since(start).Round(time.Microsecond))
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (p *Provider) applyMigration(ctx context.Context, tx database.DBTxConn, m *Migration) error {
	body := m.SQL
	if p.cfg.envSub {
		expanded, err := interpolate.Interpolate(interpolate.NewSliceEnv(os.Environ()), body)
		if err != nil {
			return fmt.Errorf("failed to substitute environment variables: %w", err)
		}
		body = expanded
	}
	for _, stmt := range sqlparser.Split(body) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return p.migrationStore.InsertApplied(ctx, tx, m.ID)
}

// Seed applies every seed in the slice that is not yet recorded in the seeds
// ledger, in slice order, each inside its own transaction. If a seed fails,
// only that seed's transaction is rolled back and a [*SeedError] identifies
// it; seeds committed earlier in the same run remain applied, and seeds after
// the failing one are not attempted.
//
// If nothing is pending, Seed returns nil without opening a transaction.
func (p *Provider) Seed(ctx context.Context, seeds []*Seed) error {
	if err := validateSeeds(seeds); err != nil {
		return err
	}
	if err := p.seedStore.CreateTable(ctx, p.db); err != nil {
		return err
	}
	applied, err := p.appliedSet(ctx, p.seedStore)
	if err != nil {
		return err
	}
	var pending []*Seed
	for _, s := range seeds {
		if !applied[s.ID] {
			pending = append(pending, s)
		}
	}
	if len(pending) == 0 {
		p.printf("no pending seeds")
		return nil
	}
	for _, s := range pending {
		start := time.Now()
		if err := p.applySeed(ctx, s); err != nil {
			return err
		}
		p.printf("OK   %s (%s)", s.ID, time.Since(start).Round(time.Microsecond))
	}
	return nil
}

func (p *Provider) applySeed(ctx context.Context, s *Seed) (retErr error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if retErr != nil {
			retErr = multierr.Append(retErr, tx.Rollback())
		}
	}()
	if err := s.Run(ctx, tx); err != nil {
		return &SeedError{ID: s.ID, Err: err}
	}
	if err := p.seedStore.InsertApplied(ctx, tx, s.ID); err != nil {
		return &SeedError{ID: s.ID, Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &SeedError{ID: s.ID, Err: fmt.Errorf("failed to commit transaction: %w", err)}
	}
	return nil
}

// AppliedMigrations returns the IDs recorded in the migrations ledger, sorted
// lexicographically. The ledger table is created if absent.
func (p *Provider) AppliedMigrations(ctx context.Context) ([]string, error) {
	return p.applied(ctx, p.migrationStore)
}

// AppliedSeeds returns the IDs recorded in the seeds ledger, sorted
// lexicographically. The ledger table is created if absent.
func (p *Provider) AppliedSeeds(ctx context.Context) ([]string, error) {
	return p.applied(ctx, p.seedStore)
}

func (p *Provider) applied(ctx context.Context, store database.Store) ([]string, error) {
	if err := store.CreateTable(ctx, p.db); err != nil {
		return nil, err
	}
	ids, err := store.ListApplied(ctx, p.db)
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}

func (p *Provider) appliedSet(ctx context.Context, store database.Store) (map[string]bool, error) {
	ids, err := store.ListApplied(ctx, p.db)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
