package gcode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gridcarve/carver-api/carve/maze"
	"github.com/gridcarve/carver-api/carve/planner"
	"github.com/stretchr/testify/assert"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.OriginCentre = false
	return opts
}

func countPrefix(program []string, prefix string) int {
	count := 0
	for _, line := range program {
		if strings.HasPrefix(line, prefix) {
			count++
		}
	}
	return count
}

func TestGenerate_InvalidOptions(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Options)
	}{
		{"zero step size", func(o *Options) { o.StepSizeMM = 0 }},
		{"negative clearance", func(o *Options) { o.ClearanceHeightMM = -1 }},
		{"zero spindle speed", func(o *Options) { o.SpindleRPM = 0 }},
		{"zero cut feed", func(o *Options) { o.CutFeed = 0 }},
		{"negative plunge feed", func(o *Options) { o.PlungeFeed = -10 }},
		{"no depth passes", func(o *Options) { o.DepthPasses = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := testOptions()
			tc.mutate(&opts)
			program, err := Generate(3, 3, nil, opts)
			assert.Nil(t, program)
			assert.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestGenerate_SingleCorridor(t *testing.T) {
	path := planner.Toolpath{
		Start: maze.CellPosition{Row: 0, Col: 0},
		Steps: []planner.Step{{Direction: maze.East, Length: 4}},
	}

	program, err := Generate(1, 5, []planner.Toolpath{path}, testOptions())
	assert.NoError(t, err)

	assert.Equal(t, []string{
		"G21",
		"G90",
		"G0 X0 Y0 Z2",
		"M3 S8200",
		"G90",
		"G0 Z2",
		"G0 X0 Y0",
		"G1 Z0.5 F300",
		"G91",
		"F300",
		"G1 X20",
		"G90",
		"G0 Z2",
		"M0",
		"G90",
		"G0 Z2",
		"G0 X0 Y0",
		"M5",
		"M30",
	}, program)
}

func TestGenerate_NoToolpathsIsNoOp(t *testing.T) {
	program, err := Generate(1, 1, nil, testOptions())
	assert.NoError(t, err)

	// preamble, pass pause and park only: nothing plunges, nothing cuts
	assert.Equal(t, "G21", program[0])
	assert.Equal(t, "M30", program[len(program)-1])
	assert.Equal(t, 0, countPrefix(program, "G1 "))
	assert.NotContains(t, program, "G91")
}

func TestGenerate_OnePlungePerPathPerPass(t *testing.T) {
	m, err := maze.New(maze.Config{Rows: 5, Cols: 5, Seed: 11})
	assert.NoError(t, err)
	paths, err := planner.Plan(m)
	assert.NoError(t, err)

	opts := testOptions()
	opts.DepthPasses = []float64{0.5, 1}

	program, err := Generate(m.Rows, m.Cols, paths, opts)
	assert.NoError(t, err)

	assert.Equal(t, 2*len(paths), countPrefix(program, "G1 Z"))
	assert.Equal(t, 2, countPrefix(program, "M0"))
}

func TestGenerate_CentreOrigin(t *testing.T) {
	path := planner.Toolpath{
		Start: maze.CellPosition{Row: 0, Col: 0},
		Steps: []planner.Step{{Direction: maze.South, Length: 2}},
	}

	opts := testOptions()
	opts.OriginCentre = true

	program, err := Generate(3, 3, []planner.Toolpath{path}, opts)
	assert.NoError(t, err)

	// top-left cell of a 3x3 maze at 5mm pitch sits 5mm up-left of centre
	assert.Contains(t, program, "G0 X-5 Y-5")
}

func TestRelMove(t *testing.T) {
	assert.Equal(t, "Y-15", relMove(maze.North, 15))
	assert.Equal(t, "Y15", relMove(maze.South, 15))
	assert.Equal(t, "X7.5", relMove(maze.East, 7.5))
	assert.Equal(t, "X-7.5", relMove(maze.West, 7.5))
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, 1, 1, nil, testOptions())
	assert.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "G21\nG90\n"))
	assert.True(t, strings.HasSuffix(out, "M5\nM30\n"))
}
