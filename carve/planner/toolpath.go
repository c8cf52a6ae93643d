package planner

import "github.com/gridcarve/carver-api/carve/maze"

// Step is a straight run of cell moves in one direction. Consecutive moves
// in the same direction coalesce into a single step so a long corridor
// becomes one cut segment instead of many one-cell segments.
type Step struct {
	Direction string
	Length    int
}

// Toolpath is one continuous tool-down cutting motion: a start cell plus an
// ordered list of straight runs. Reaching the start cell costs one tool-up
// travel move, which the emitter supplies.
type Toolpath struct {
	Start maze.CellPosition
	Steps []Step
}

// addStep appends one cell move, extending the last step when the
// direction repeats.
func (t *Toolpath) addStep(direction string) {
	if n := len(t.Steps); n > 0 && t.Steps[n-1].Direction == direction {
		t.Steps[n-1].Length++
		return
	}
	t.Steps = append(t.Steps, Step{Direction: direction, Length: 1})
}

// CellCount returns the number of cell moves in the path, which equals the
// number of corridor edges it cuts.
func (t *Toolpath) CellCount() int {
	total := 0
	for _, s := range t.Steps {
		total += s.Length
	}
	return total
}

// Cells expands the coalesced steps back into the full cell sequence,
// starting at the path's start cell.
func (t *Toolpath) Cells() []maze.CellPosition {
	cells := make([]maze.CellPosition, 0, t.CellCount()+1)
	cells = append(cells, t.Start)

	curr := t.Start
	for _, s := range t.Steps {
		delta := maze.Delta(s.Direction)
		for i := 0; i < s.Length; i++ {
			curr = maze.CellPosition{Row: curr.Row + delta.Row, Col: curr.Col + delta.Col}
			cells = append(cells, curr)
		}
	}
	return cells
}
