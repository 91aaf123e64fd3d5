package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/statefold/sqlmigrate/internal/dialectquery"
)

// Dialect is the type of database dialect.
type Dialect string

const (
	// DialectSQLite3 targets an in-process SQLite database file, the
	// synchronous execution model: every operation is ordinary blocking I/O on
	// the calling goroutine.
	DialectSQLite3 Dialect = "sqlite3"

	// DialectTurso targets a libsql/Turso database over the network, the
	// cooperative execution model: every operation is a suspension point. The
	// engine's sequencing is identical in both models.
	DialectTurso Dialect = "turso"

	// DialectCustom is a special dialect that allows users to provide their
	// own [Store] implementations when constructing a provider.
	DialectCustom Dialect = "custom"
)

// NewStore returns a new [Store] backed by the given dialect, recording
// applied IDs in tablename.
func NewStore(dialect Dialect, tablename string) (Store, error) {
	if tablename == "" {
		return nil, errors.New("tablename must not be empty")
	}
	if dialect == "" {
		return nil, errors.New("dialect must not be empty")
	}
	if dialect == DialectCustom {
		return nil, errors.New("dialect must not be custom")
	}
	lookup := map[Dialect]dialectquery.Querier{
		DialectSQLite3: &dialectquery.Sqlite3{},
		DialectTurso:   &dialectquery.Turso{},
	}
	querier, ok := lookup[dialect]
	if !ok {
		return nil, fmt.Errorf("unknown dialect: %q", dialect)
	}
	return &store{
		tablename: tablename,
		querier:   querier,
	}, nil
}

type store struct {
	tablename string
	querier   dialectquery.Querier
}

var _ Store = (*store)(nil)

func (s *store) Tablename() string {
	return s.tablename
}

func (s *store) CreateTable(ctx context.Context, db DBTxConn) error {
	q := s.querier.CreateTable(s.tablename)
	if _, err := db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("failed to create ledger table %q: %w", s.tablename, err)
	}
	return nil
}

func (s *store) InsertApplied(ctx context.Context, db DBTxConn, id string) error {
	q := s.querier.InsertApplied(s.tablename)
	if _, err := db.ExecContext(ctx, q, id); err != nil {
		return fmt.Errorf("failed to insert id %q: %w", id, err)
	}
	return nil
}

func (s *store) ListApplied(ctx context.Context, db DBTxConn) ([]string, error) {
	q := s.querier.ListApplied(s.tablename)
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list applied ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan applied id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
