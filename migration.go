package sqlmigrate

import (
	"errors"
	"fmt"
)

// Migration is a single schema change: a unique, stable identifier and the SQL
// batch to execute. The batch may contain multiple statements (DDL and DML)
// separated by semicolons.
//
// Migrations are immutable once constructed and are applied in the order they
// appear in the slice passed to [Provider.Migrate]. The engine never reorders;
// callers are responsible for naming migrations so that lexicographic ID order
// matches the intended dependency order (numeric-prefixed filenames, e.g.
// "001_create_users").
type Migration struct {
	// ID uniquely identifies the migration, typically derived from the source
	// filename stem. Recorded in the migrations ledger once applied.
	ID string
	// SQL is the batch of statements to execute.
	SQL string
}

// NewMigration returns a new migration with the given ID and SQL batch.
func NewMigration(id, sql string) *Migration {
	return &Migration{ID: id, SQL: sql}
}

func validateMigrations(migrations []*Migration) error {
	seen := make(map[string]bool, len(migrations))
	for i, m := range migrations {
		if m == nil {
			return fmt.Errorf("migration at index %d must not be nil", i)
		}
		if m.ID == "" {
			return fmt.Errorf("migration at index %d: %w", i, errEmptyID)
		}
		if seen[m.ID] {
			return fmt.Errorf("migration %q: %w", m.ID, errDuplicateID)
		}
		seen[m.ID] = true
	}
	return nil
}

var (
	errEmptyID     = errors.New("id must not be empty")
	errDuplicateID = errors.New("duplicate id")
)
