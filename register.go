package sqlmigrate

import (
	"fmt"
	"sort"
)

// registeredSeeds is a global map of all seeds registered via [RegisterSeed].
var registeredSeeds = make(map[string]*Seed)

// RegisterSeed adds a seed to the global registry, keyed by ID. It is intended
// to be called from an init function in the file defining the seed, one file
// per seed, so registration order does not matter: [RegisteredSeeds] sorts by
// ID before the runner ever sees the list.
//
// RegisterSeed panics if the ID is empty, the function is nil, or the ID was
// already registered.
func RegisterSeed(id string, fn SeedFunc) {
	if id == "" {
		panic("sqlmigrate: seed id must not be empty")
	}
	if fn == nil {
		panic(fmt.Sprintf("sqlmigrate: seed %q: run function must not be nil", id))
	}
	if _, ok := registeredSeeds[id]; ok {
		panic(fmt.Sprintf("sqlmigrate: seed %q already registered", id))
	}
	registeredSeeds[id] = NewSeed(id, fn)
}

// RegisteredSeeds returns all globally registered seeds sorted
// lexicographically by ID, ready to be passed to [Provider.Seed].
func RegisteredSeeds() []*Seed {
	seeds := make([]*Seed, 0, len(registeredSeeds))
	for _, s := range registeredSeeds {
		seeds = append(seeds, s)
	}
	sort.Slice(seeds, func(i, j int) bool { return seeds[i].ID < seeds[j].ID })
	return seeds
}

// ResetRegisteredSeeds clears the global seed registry. Intended for tests.
func ResetRegisteredSeeds() {
	registeredSeeds = make(map[string]*Seed)
}
