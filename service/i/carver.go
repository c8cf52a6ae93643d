package i

import (
	"context"

	"github.com/google/uuid"
	dmn "github.com/gridcarve/carver-api/domain"
)

// CarveRequest holds the parameters for one carve job.
type CarveRequest struct {
	Rows int
	Cols int

	// Seed makes the maze reproducible and the result cacheable. Zero asks
	// for a one-off random maze.
	Seed int64

	// StepSizeMM overrides the default cell pitch when positive.
	StepSizeMM float64
}

// Carver turns carve requests into persisted carvings.
type Carver interface {
	// Carve generates a maze, plans its toolpaths, emits the program and
	// persists the result for the owner.
	Carve(ctx context.Context, ownerID uuid.UUID, req CarveRequest) (*dmn.Carving, error)

	// ByID retrieves a carving by ID.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Carving, error)

	// ByOwner lists a user's carvings.
	ByOwner(ctx context.Context, ownerID uuid.UUID) ([]*dmn.Carving, error)
}
