package dialectquery

// Querier is the interface that wraps the basic methods to create a dialect
// specific query for the applied-ID ledger table.
type Querier interface {
	// CreateTable returns the SQL query string to create the ledger table.
	// The query must be a no-op when the table already exists.
	CreateTable(tableName string) string

	// InsertApplied returns the SQL query string to record an applied ID.
	// The query takes the ID as its single parameter; the applied_at column
	// defaults to the current timestamp.
	InsertApplied(tableName string) string

	// ListApplied returns the SQL query string to list all applied IDs.
	//
	// The query should return the id column only.
	ListApplied(tableName string) string
}
