package sqlmigrate

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// CollectMigrations reads every .sql file directly under dir in fsys and
// returns them as migrations sorted lexicographically by ID, where the ID is
// the filename with the extension stripped. Numeric-prefixed filenames
// ("001_create_users.sql", "002_add_email.sql") therefore apply in prefix
// order.
//
// The returned slice is the ordered sequence [Provider.Migrate] consumes; it
// is typically built once at startup from an embed.FS and treated as
// immutable. If dir does not exist the result is an empty slice, not an
// error: migrations are optional.
func CollectMigrations(fsys fs.FS, dir string) ([]*Migration, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations directory %q: %w", dir, err)
	}
	if len(files) == 0 {
		// Glob does not distinguish a missing directory from an empty one,
		// which is exactly the contract: both mean no migrations.
		return nil, nil
	}
	migrations := make([]*Migration, 0, len(files))
	seen := make(map[string]bool, len(files))
	for _, file := range files {
		id := strings.TrimSuffix(path.Base(file), path.Ext(file))
		if id == "" {
			return nil, fmt.Errorf("invalid migration filename %q: %w", file, errEmptyID)
		}
		if seen[id] {
			return nil, fmt.Errorf("migration %q: %w", id, errDuplicateID)
		}
		seen[id] = true
		body, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %q: %w", file, err)
		}
		migrations = append(migrations, NewMigration(id, string(body)))
	}
	sort.Slice(migrations, func(i, j int) bool { return migrations[i].ID < migrations[j].ID })
	return migrations, nil
}
