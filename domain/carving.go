package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Carving is the persisted result of one carve job: the maze parameters
// that produced it plus the finished motion program. Write-once; the
// program is never edited after generation.
type Carving struct {
	ID            uuid.UUID `bson:"_id"`
	OwnerID       uuid.UUID `bson:"ownerId"`
	Rows          int       `bson:"rows"`
	Cols          int       `bson:"cols"`
	Seed          int64     `bson:"seed"`
	StepSizeMM    float64   `bson:"stepSizeMm"`
	ToolpathCount int       `bson:"toolpathCount"`
	Program       []string  `bson:"program"`
	CreatedAt     time.Time `bson:"createdAt"`
}

// CarvingConfig holds parameters for creating a Carving.
type CarvingConfig struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Rows          int
	Cols          int
	Seed          int64
	StepSizeMM    float64
	ToolpathCount int
	Program       []string
}

// NewCarving creates a Carving from a finished generation run.
func NewCarving(config CarvingConfig) (*Carving, error) {
	if config.ID == uuid.Nil || config.OwnerID == uuid.Nil {
		return nil, errors.New("carving requires an id and an owner")
	}
	if len(config.Program) == 0 {
		return nil, errors.New("carving requires a program")
	}

	return &Carving{
		ID:            config.ID,
		OwnerID:       config.OwnerID,
		Rows:          config.Rows,
		Cols:          config.Cols,
		Seed:          config.Seed,
		StepSizeMM:    config.StepSizeMM,
		ToolpathCount: config.ToolpathCount,
		Program:       config.Program,
		CreatedAt:     time.Now().UTC(),
	}, nil
}
