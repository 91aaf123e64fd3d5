package dialectquery

// Turso speaks the same SQL as SQLite; the dialect exists so callers can be
// explicit about the backend they are targeting.
type Turso struct {
	Sqlite3
}

var _ Querier = (*Turso)(nil)
