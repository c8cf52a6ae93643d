// Package carveapi provides structures and utilities for managing carve
// requests and responses.
package carveapi

import (
	"time"

	dmn "github.com/gridcarve/carver-api/domain"
)

// CarveRequest represents a request to carve a new maze.
type CarveRequest struct {
	Rows int `json:"rows" binding:"required,min=1,max=512"`
	Cols int `json:"cols" binding:"required,min=1,max=512"`

	// Seed makes the maze reproducible. Omit for a one-off random maze.
	Seed int64 `json:"seed"`

	// StepSizeMM overrides the default cell pitch.
	StepSizeMM float64 `json:"step_size_mm" binding:"omitempty,gt=0"`
}

// CarvingResponse describes a stored carving without its program body.
type CarvingResponse struct {
	ID            string    `json:"id"`
	Rows          int       `json:"rows"`
	Cols          int       `json:"cols"`
	Seed          int64     `json:"seed"`
	StepSizeMM    float64   `json:"step_size_mm"`
	ToolpathCount int       `json:"toolpath_count"`
	ProgramLines  int       `json:"program_lines"`
	CreatedAt     time.Time `json:"created_at"`
}

func toCarvingResponse(c *dmn.Carving) CarvingResponse {
	return CarvingResponse{
		ID:            c.ID.String(),
		Rows:          c.Rows,
		Cols:          c.Cols,
		Seed:          c.Seed,
		StepSizeMM:    c.StepSizeMM,
		ToolpathCount: c.ToolpathCount,
		ProgramLines:  len(c.Program),
		CreatedAt:     c.CreatedAt,
	}
}
