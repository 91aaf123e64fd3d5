package sqlmigrate

import (
	"context"
	"database/sql"
	"fmt"
)

// SeedFunc is an idempotent data-seeding action. It receives the transaction
// opened for this seed and must perform all writes through it; opening a
// separate connection or transaction inside a SeedFunc breaks the exactly-once
// guarantee.
type SeedFunc func(ctx context.Context, tx *sql.Tx) error

// Seed pairs a unique identifier with an executable seeding action. Unlike a
// [Migration], the payload is arbitrary logic rather than a fixed SQL batch:
// seeds may run multi-statement inserts, conditional fixups, or anything else
// expressible against the transaction handle.
//
// Seeds are tracked in their own ledger, independent of migrations.
type Seed struct {
	// ID uniquely identifies the seed. Recorded in the seeds ledger once
	// applied.
	ID string
	// Run is the seeding action, invoked at most once per database.
	Run SeedFunc
}

// NewSeed returns a new seed with the given ID and action.
func NewSeed(id string, fn SeedFunc) *Seed {
	return &Seed{ID: id, Run: fn}
}

func validateSeeds(seeds []*Seed) error {
	seen := make(map[string]bool, len(seeds))
	for i, s := range seeds {
		if s == nil {
			return fmt.Errorf("seed at index %d must not be nil", i)
		}
		if s.ID == "" {
			return fmt.Errorf("seed at index %d: %w", i, errEmptyID)
		}
		if s.Run == nil {
			return fmt.Errorf("seed %q: run function must not be nil", s.ID)
		}
		if seen[s.ID] {
			return fmt.Errorf("seed %q: %w", s.ID, errDuplicateID)
		}
		seen[s.ID] = true
	}
	return nil
}
