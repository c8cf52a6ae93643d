/*
Package maze provides tools for creating and querying rectangular mazes.

It defines the `Maze` structure, composed of `Cell` objects carrying wall
configurations. Mazes are generated with a randomized depth-first
backtracker driven by an explicit stack, so the corridor graph is always a
spanning tree of the grid: every cell reachable, no loops, exactly
rows*cols-1 open edges.

Utility functions enable neighbor detection, corridor queries, and ASCII
visualization of the maze.
*/
package maze

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

// Direction names. All direction-ordered operations probe in the order of
// the Directions slice so that a fixed seed always yields the same maze.
const (
	North = "North"
	South = "South"
	East  = "East"
	West  = "West"
)

// Directions lists the four compass directions with their row/col deltas,
// in probing order. A slice rather than a map: iteration order matters for
// reproducibility.
var Directions = []struct {
	Name  string
	Delta CellPosition
}{
	{North, CellPosition{Row: -1, Col: 0}},
	{South, CellPosition{Row: 1, Col: 0}},
	{East, CellPosition{Row: 0, Col: 1}},
	{West, CellPosition{Row: 0, Col: -1}},
}

var (
	ErrInvalidDimension = errors.New("maze dimensions must be positive")
	ErrInvalidStart     = errors.New("start cell outside the grid")
)

// CellPosition identifies a cell by its grid coordinates.
type CellPosition struct {
	Row int
	Col int
}

// Move describes a transition between two adjacent cells.
type Move struct {
	From      CellPosition
	To        CellPosition
	Direction string
}

// Delta returns the row/col offset for a direction name.
func Delta(direction string) CellPosition {
	for _, d := range Directions {
		if d.Name == direction {
			return d.Delta
		}
	}
	return CellPosition{}
}

// Config holds the parameters for generating a maze.
type Config struct {
	Rows int
	Cols int

	// Seed drives the pseudo-random wall removal. Zero means seed from the
	// clock; any other value makes the maze reproducible.
	Seed int64

	// Start is the cell the backtracker grows from. Nil defaults to the
	// top-left corner.
	Start *CellPosition
}

// Maze represents a rectangular maze consisting of cells with walls.
type Maze struct {
	Rows  int // Number of rows in the maze
	Cols  int // Number of columns in the maze
	Start CellPosition
	Grid  [][]*Cell // 2D grid of cells forming the maze
}

// New initializes a maze of the given dimensions and carves its corridors.
func New(cfg Config) (*Maze, error) {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, ErrInvalidDimension
	}

	grid := make([][]*Cell, cfg.Rows)
	for i := range grid {
		grid[i] = make([]*Cell, cfg.Cols)
		for j := range grid[i] {
			grid[i][j] = &Cell{
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	start := CellPosition{}
	if cfg.Start != nil {
		start = *cfg.Start
	}

	m := &Maze{
		Rows:  cfg.Rows,
		Cols:  cfg.Cols,
		Start: start,
		Grid:  grid,
	}
	if !m.InBounds(start) {
		return nil, ErrInvalidStart
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m.generate(rand.New(rand.NewSource(seed)))
	return m, nil
}

// InBounds reports whether a position lies inside the grid.
func (m *Maze) InBounds(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < m.Rows && pos.Col >= 0 && pos.Col < m.Cols
}

// Neighbors finds all in-bounds moves from a given cell position, in
// probing order.
func (m *Maze) Neighbors(pos CellPosition) []Move {
	var result []Move
	for _, d := range Directions {
		neighbor := CellPosition{Row: pos.Row + d.Delta.Row, Col: pos.Col + d.Delta.Col}
		if m.InBounds(neighbor) {
			result = append(result, Move{From: pos, To: neighbor, Direction: d.Name})
		}
	}
	return result
}

// Openings returns the moves out of a cell whose connecting wall is down,
// in probing order. This is the corridor query the path planner walks.
func (m *Maze) Openings(pos CellPosition) []Move {
	var result []Move
	for _, mv := range m.Neighbors(pos) {
		if !m.wallUp(mv) {
			result = append(result, mv)
		}
	}
	return result
}

// OpenEdgeCount returns the number of open edges between adjacent cells.
// For a freshly generated maze this is always rows*cols-1.
func (m *Maze) OpenEdgeCount() int {
	count := 0
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			if r+1 < m.Rows && !m.Grid[r][c].SouthWall {
				count++
			}
			if c+1 < m.Cols && !m.Grid[r][c].EastWall {
				count++
			}
		}
	}
	return count
}

// wallUp reports whether the wall crossed by a move is still standing.
func (m *Maze) wallUp(mv Move) bool {
	cell := m.Grid[mv.From.Row][mv.From.Col]
	switch mv.Direction {
	case North:
		return cell.NorthWall
	case South:
		return cell.SouthWall
	case East:
		return cell.EastWall
	case West:
		return cell.WestWall
	}
	return true
}

// openWall removes the wall between two adjacent cells in the specified direction.
func (m *Maze) openWall(mv Move) {
	switch mv.Direction {
	case North:
		m.Grid[mv.From.Row][mv.From.Col].NorthWall = false
		m.Grid[mv.To.Row][mv.To.Col].SouthWall = false
	case South:
		m.Grid[mv.From.Row][mv.From.Col].SouthWall = false
		m.Grid[mv.To.Row][mv.To.Col].NorthWall = false
	case East:
		m.Grid[mv.From.Row][mv.From.Col].EastWall = false
		m.Grid[mv.To.Row][mv.To.Col].WestWall = false
	case West:
		m.Grid[mv.From.Row][mv.From.Col].WestWall = false
		m.Grid[mv.To.Row][mv.To.Col].EastWall = false
	}
}

// generate carves the corridors with a randomized depth-first backtracker.
// Each wall opening connects a previously unreached cell, so the open-edge
// graph is a spanning tree by construction. The stack is explicit; depth is
// bounded by rows*cols.
func (m *Maze) generate(rng *rand.Rand) {
	visited := make([][]bool, m.Rows)
	for i := range visited {
		visited[i] = make([]bool, m.Cols)
	}

	stack := []CellPosition{m.Start}
	visited[m.Start.Row][m.Start.Col] = true

	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		candidates := make([]Move, 0, 4)
		for _, mv := range m.Neighbors(curr) {
			if !visited[mv.To.Row][mv.To.Col] {
				candidates = append(candidates, mv)
			}
		}

		if len(candidates) == 0 {
			// dead end, backtrack
			stack = stack[:len(stack)-1]
			continue
		}

		mv := candidates[rng.Intn(len(candidates))]
		m.openWall(mv)
		visited[mv.To.Row][mv.To.Col] = true
		stack = append(stack, mv.To)
	}
}

// String renders the maze as ASCII art.
func (m *Maze) String() string {
	var output string

	// Top boundary
	output += "+" + strings.Repeat("---+", m.Cols) + "\n"

	for row := 0; row < m.Rows; row++ {
		// Cell rows
		cellRow := "|"
		for col := 0; col < m.Cols; col++ {
			cell := m.Grid[row][col]
			if !cell.EastWall {
				cellRow += "    "
			} else {
				cellRow += "   |"
			}
		}
		output += cellRow + "\n"

		// Wall rows
		wallRow := "+"
		for col := 0; col < m.Cols; col++ {
			cell := m.Grid[row][col]
			if !cell.SouthWall {
				wallRow += "   +"
			} else {
				wallRow += "---+"
			}
		}
		output += wallRow + "\n"
	}

	return output
}
