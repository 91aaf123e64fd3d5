package sqlmigrate

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterSeed(t *testing.T) {
	// Not parallel: mutates the global registry.
	t.Cleanup(ResetRegisteredSeeds)
	ResetRegisteredSeeds()

	nop := func(ctx context.Context, tx *sql.Tx) error { return nil }

	RegisterSeed("002_more", nop)
	RegisterSeed("001_base", nop)

	seeds := RegisteredSeeds()
	require.Len(t, seeds, 2)
	require.Equal(t, "001_base", seeds[0].ID)
	require.Equal(t, "002_more", seeds[1].ID)

	require.PanicsWithValue(t, `sqlmigrate: seed "001_base" already registered`, func() {
		RegisterSeed("001_base", nop)
	})
	require.Panics(t, func() { RegisterSeed("", nop) })
	require.Panics(t, func() { RegisterSeed("003_nil", nil) })
}
