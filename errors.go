package sqlmigrate

import "fmt"

// MigrationError is returned by [Provider.Migrate] when a migration's SQL
// batch or its ledger insert fails. The entire pending batch is rolled back;
// previously committed runs are untouched.
type MigrationError struct {
	// ID is the identifier of the migration that failed.
	ID string
	// Err is the underlying database error.
	Err error
}

func (e *MigrationError) Error() string {
	return fmt.Sprintf("migration %q failed: %v", e.ID, e.Err)
}

func (e *MigrationError) Unwrap() error { return e.Err }

// SeedError is returned by [Provider.Seed] when a seed's action or its ledger
// insert fails. Only the failing seed's transaction is rolled back; seeds
// committed earlier in the same run remain applied.
type SeedError struct {
	// ID is the identifier of the seed that failed.
	ID string
	// Err is the underlying error returned by the seed function or driver.
	Err error
}

func (e *SeedError) Error() string {
	return fmt.Sprintf("seed %q failed: %v", e.ID, e.Err)
}

func (e *SeedError) Unwrap() error { return e.Err }
