package i

import (
	"context"

	dmn "github.com/gridcarve/carver-api/domain"
)

// ProgramCache stores finished motion programs keyed by their generation
// parameters, so identical seeded requests are served without re-carving.
type ProgramCache interface {
	// Fetch returns the cached program for a key, or nil on a miss.
	Fetch(ctx context.Context, key string) (*dmn.Program, error)

	// Store caches a program under a key with the cache's TTL.
	Store(ctx context.Context, key string, program *dmn.Program) error

	// Guard runs fn while holding a distributed lock for the key, so only
	// one instance generates a given program at a time.
	Guard(ctx context.Context, key string, fn func(ctx context.Context) error) error
}
