package dialectquery

import "fmt"

type Sqlite3 struct{}

var _ Querier = (*Sqlite3)(nil)

func (s *Sqlite3) CreateTable(tableName string) string {
	q := `CREATE TABLE IF NOT EXISTS %s (
		id TEXT PRIMARY KEY,
		applied_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`
	return fmt.Sprintf(q, tableName)
}

func (s *Sqlite3) InsertApplied(tableName string) string {
	q := `INSERT INTO %s (id) VALUES (?)`
	return fmt.Sprintf(q, tableName)
}

func (s *Sqlite3) ListApplied(tableName string) string {
	q := `SELECT id FROM %s`
	return fmt.Sprintf(q, tableName)
}
