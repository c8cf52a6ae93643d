package planner

import (
	"fmt"
	"testing"

	"github.com/gridcarve/carver-api/carve/maze"
	"github.com/stretchr/testify/assert"
)

// edgeKey normalizes an edge between two adjacent cells so both traversal
// directions map to the same key.
func edgeKey(a, b maze.CellPosition) string {
	if b.Row < a.Row || (b.Row == a.Row && b.Col < a.Col) {
		a, b = b, a
	}
	return fmt.Sprintf("%d,%d-%d,%d", a.Row, a.Col, b.Row, b.Col)
}

// openEdges collects the maze's open-edge set.
func openEdges(m *maze.Maze) map[string]bool {
	edges := make(map[string]bool)
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			pos := maze.CellPosition{Row: r, Col: c}
			for _, mv := range m.Openings(pos) {
				edges[edgeKey(mv.From, mv.To)] = true
			}
		}
	}
	return edges
}

// cutEdges replays every toolpath's cell sequence and collects the edges
// it cuts, failing on any duplicate coverage.
func cutEdges(t *testing.T, paths []Toolpath) map[string]bool {
	t.Helper()
	edges := make(map[string]bool)
	for _, p := range paths {
		cells := p.Cells()
		for i := 1; i < len(cells); i++ {
			key := edgeKey(cells[i-1], cells[i])
			assert.False(t, edges[key], "edge %s cut twice", key)
			edges[key] = true
		}
	}
	return edges
}

func TestPlan_CoversEveryCorridorExactlyOnce(t *testing.T) {
	cases := []struct {
		name string
		rows int
		cols int
		seed int64
	}{
		{"small square", 3, 3, 7},
		{"rectangle", 5, 9, 21},
		{"tall", 12, 4, 99},
		{"large", 16, 16, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := maze.New(maze.Config{Rows: tc.rows, Cols: tc.cols, Seed: tc.seed})
			assert.NoError(t, err)

			paths, err := Plan(m)
			assert.NoError(t, err)

			// round trip: replaying the toolpaths reproduces the maze's
			// open-edge set, nothing more, nothing less
			assert.Equal(t, openEdges(m), cutEdges(t, paths))

			total := 0
			for _, p := range paths {
				assert.NotEmpty(t, p.Steps)
				total += p.CellCount()
			}
			assert.Equal(t, m.OpenEdgeCount(), total)
		})
	}
}

func TestPlan_SingleCellYieldsNoToolpaths(t *testing.T) {
	m, err := maze.New(maze.Config{Rows: 1, Cols: 1, Seed: 1})
	assert.NoError(t, err)

	paths, err := Plan(m)
	assert.NoError(t, err)
	assert.Empty(t, paths)
}

func TestPlan_SingleRowIsOneStraightCut(t *testing.T) {
	m, err := maze.New(maze.Config{Rows: 1, Cols: 5, Seed: 3})
	assert.NoError(t, err)

	paths, err := Plan(m)
	assert.NoError(t, err)

	// one corridor, one toolpath, no lifts
	assert.Len(t, paths, 1)
	assert.Equal(t, maze.CellPosition{Row: 0, Col: 0}, paths[0].Start)
	// four collinear moves coalesce into a single straight segment
	assert.Equal(t, []Step{{Direction: maze.East, Length: 4}}, paths[0].Steps)
}

func TestPlan_SingleColumnIsOneStraightCut(t *testing.T) {
	m, err := maze.New(maze.Config{Rows: 4, Cols: 1, Seed: 3})
	assert.NoError(t, err)

	paths, err := Plan(m)
	assert.NoError(t, err)
	assert.Len(t, paths, 1)
	assert.Equal(t, []Step{{Direction: maze.South, Length: 3}}, paths[0].Steps)
}

func TestPlan_Deterministic(t *testing.T) {
	m, err := maze.New(maze.Config{Rows: 6, Cols: 6, Seed: 555})
	assert.NoError(t, err)

	first, err := Plan(m)
	assert.NoError(t, err)
	second, err := Plan(m)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPlan_FixedSeedSmallSquare(t *testing.T) {
	m, err := maze.New(maze.Config{Rows: 3, Cols: 3, Seed: 1})
	assert.NoError(t, err)

	paths, err := Plan(m)
	assert.NoError(t, err)

	// a 3x3 perfect maze always has exactly 8 corridors
	assert.Equal(t, 8, m.OpenEdgeCount())
	assert.Len(t, cutEdges(t, paths), 8)

	// the same seed reproduces the same toolpaths
	again, err := maze.New(maze.Config{Rows: 3, Cols: 3, Seed: 1})
	assert.NoError(t, err)
	againPaths, err := Plan(again)
	assert.NoError(t, err)
	assert.Equal(t, paths, againPaths)
}

func TestPlan_RejectsNonTreeInput(t *testing.T) {
	m, err := maze.New(maze.Config{Rows: 3, Cols: 3, Seed: 9})
	assert.NoError(t, err)

	// knock out an extra wall to introduce a cycle; the walk cannot cover
	// the added edge and must refuse to emit a partial program
	opened := false
	for r := 0; r < m.Rows && !opened; r++ {
		for c := 0; c < m.Cols && !opened; c++ {
			if c+1 < m.Cols && m.Grid[r][c].EastWall {
				m.Grid[r][c].EastWall = false
				m.Grid[r][c+1].WestWall = false
				opened = true
			} else if r+1 < m.Rows && m.Grid[r][c].SouthWall {
				m.Grid[r][c].SouthWall = false
				m.Grid[r+1][c].NorthWall = false
				opened = true
			}
		}
	}
	assert.True(t, opened)

	_, err = Plan(m)
	assert.ErrorIs(t, err, ErrIncompleteTraversal)
}

func TestToolpath_Cells(t *testing.T) {
	path := Toolpath{
		Start: maze.CellPosition{Row: 2, Col: 1},
		Steps: []Step{
			{Direction: maze.East, Length: 2},
			{Direction: maze.North, Length: 1},
		},
	}

	assert.Equal(t, []maze.CellPosition{
		{Row: 2, Col: 1},
		{Row: 2, Col: 2},
		{Row: 2, Col: 3},
		{Row: 1, Col: 3},
	}, path.Cells())
	assert.Equal(t, 3, path.CellCount())
}
