package i

import (
	"github.com/google/uuid"
	dmn "github.com/gridcarve/carver-api/domain"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*dmn.User, error)
}

// CarvingRepo defines the interface for carving persistence operations.
type CarvingRepo interface {
	// Save inserts a carving. Carvings are write-once, so there is no
	// update path.
	Save(carving *dmn.Carving) error

	// ByID retrieves a carving by its unique ID.
	ByID(id uuid.UUID) (*dmn.Carving, error)

	// ByOwner retrieves every carving created by a user, newest first.
	ByOwner(ownerID uuid.UUID) ([]*dmn.Carving, error)
}
