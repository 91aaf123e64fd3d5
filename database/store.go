package database

import (
	"context"
)

// Store is an interface that defines methods for bookkeeping applied
// migrations and seeds. By defining a Store interface, we can support multiple
// databases with consistent functionality.
//
// Each database dialect requires a specific implementation of this interface.
// A dialect represents the set of SQL statements specific to a particular
// database system.
type Store interface {
	// Tablename is the ledger table used to record applied IDs. Must not be
	// empty.
	Tablename() string

	// CreateTable creates the ledger table if it does not already exist. It
	// must be safe to call on every startup, including against an
	// already-initialized database, and must have no side effect when the
	// table exists.
	CreateTable(ctx context.Context, db DBTxConn) error

	// InsertApplied records an ID as applied. When called with a *sql.Tx the
	// row becomes durable only if that transaction commits, which is how the
	// engine keeps the ledger in lockstep with payload execution.
	InsertApplied(ctx context.Context, db DBTxConn, id string) error

	// ListApplied retrieves every recorded ID. Used for membership testing
	// only; order is not specified. If there are no applied IDs, it returns an
	// empty slice with no error.
	ListApplied(ctx context.Context, db DBTxConn) ([]string, error)
}
