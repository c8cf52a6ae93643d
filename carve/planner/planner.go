/*
Package planner converts a maze's corridor graph into an ordered list of
toolpaths.

The corridor graph of a generated maze is a tree, so a depth-first walk
visits every open edge exactly once. The walk keeps extending the current
toolpath while it can move forward through an uncut corridor; when it dead
ends it backtracks, and the first backtracked-to cell that still has an
uncut corridor becomes the start of the next toolpath. Everything between
two toolpaths is a tool lift plus a travel move, which the emitter pays for,
so fewer toolpaths means less wasted air time.
*/
package planner

import (
	"errors"
	"fmt"

	"github.com/gridcarve/carver-api/carve/maze"
)

// ErrIncompleteTraversal reports that the walk terminated without covering
// every open corridor. The walk covers any spanning tree completely, so
// hitting this means the input maze was not one.
var ErrIncompleteTraversal = errors.New("toolpath walk did not cover every corridor")

// Plan walks the maze's corridors and groups them into toolpaths. Every
// open edge is cut exactly once, never a wall, and the result is
// deterministic for a given maze: corridors are probed in the maze's fixed
// direction order.
func Plan(m *maze.Maze) ([]Toolpath, error) {
	visited := make([][]bool, m.Rows)
	for i := range visited {
		visited[i] = make([]bool, m.Cols)
	}

	stack := []maze.CellPosition{m.Start}
	visited[m.Start.Row][m.Start.Col] = true

	var paths []Toolpath
	var current *Toolpath
	covered := 0

	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		next, ok := nextCorridor(m, visited, curr)
		if !ok {
			stack = stack[:len(stack)-1]
			if current != nil {
				paths = append(paths, *current)
				current = nil
			}
			continue
		}

		if current == nil {
			current = &Toolpath{Start: curr}
		}
		current.addStep(next.Direction)
		visited[next.To.Row][next.To.Col] = true
		covered++
		stack = append(stack, next.To)
	}

	if covered != m.OpenEdgeCount() {
		return nil, fmt.Errorf("%w: covered %d of %d open edges",
			ErrIncompleteTraversal, covered, m.OpenEdgeCount())
	}
	return paths, nil
}

// nextCorridor returns the first open move out of a cell that leads to a
// cell the walk has not reached yet.
func nextCorridor(m *maze.Maze, visited [][]bool, pos maze.CellPosition) (maze.Move, bool) {
	for _, mv := range m.Openings(pos) {
		if !visited[mv.To.Row][mv.To.Col] {
			return mv, true
		}
	}
	return maze.Move{}, false
}
