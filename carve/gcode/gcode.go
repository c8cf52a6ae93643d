/*
Package gcode turns an ordered list of toolpaths into a G-code program for
a CNC router.

Corridors are cut as open paths with the tool itself, not rendered as wall
polygons. Each toolpath costs one rapid travel at clearance height, one
plunge at plunge feed, then one relative G1 per straight run. The whole set
of toolpaths may be cut in several depth passes, with an M0 pause after
each pass for dust clearance.
*/
package gcode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gridcarve/carver-api/carve/maze"
	"github.com/gridcarve/carver-api/carve/planner"
)

var ErrInvalidOptions = errors.New("invalid gcode options")

// Options holds the machine parameters for a carve. Distances are mm,
// feeds are mm/min.
type Options struct {
	// StepSizeMM is the physical distance between adjacent cell centers.
	StepSizeMM float64

	// ClearanceHeightMM is the Z height for tool-up travel moves.
	ClearanceHeightMM float64

	// SpindleRPM is the spindle speed set by M3.
	SpindleRPM int

	// PlungeFeed is the feed rate for Z plunges.
	PlungeFeed float64

	// CutFeed is the feed rate for XY cutting moves.
	CutFeed float64

	// DepthPasses lists the Z depth of each cutting pass. Every toolpath is
	// cut once per entry, shallowest first by convention.
	DepthPasses []float64

	// OriginCentre shifts all coordinates so the program origin sits at the
	// centre of the maze rather than its top-left cell.
	OriginCentre bool
}

// DefaultOptions returns machine parameters suitable for a small router:
// 5mm cells, a single 0.5mm-deep pass at 300mm/min.
func DefaultOptions() Options {
	return Options{
		StepSizeMM:        5,
		ClearanceHeightMM: 2,
		SpindleRPM:        8200,
		PlungeFeed:        300,
		CutFeed:           300,
		DepthPasses:       []float64{0.5},
		OriginCentre:      true,
	}
}

func (o Options) validate() error {
	switch {
	case o.StepSizeMM <= 0:
		return fmt.Errorf("%w: step size must be positive", ErrInvalidOptions)
	case o.ClearanceHeightMM <= 0:
		return fmt.Errorf("%w: clearance height must be positive", ErrInvalidOptions)
	case o.SpindleRPM <= 0:
		return fmt.Errorf("%w: spindle speed must be positive", ErrInvalidOptions)
	case o.PlungeFeed <= 0 || o.CutFeed <= 0:
		return fmt.Errorf("%w: feed rates must be positive", ErrInvalidOptions)
	case len(o.DepthPasses) == 0:
		return fmt.Errorf("%w: at least one depth pass required", ErrInvalidOptions)
	}
	return nil
}

// Generate produces the motion program for a set of toolpaths, one
// instruction per line. Rows and cols are the maze dimensions, needed to
// place the centre origin. A maze with no toolpaths yields preamble and
// park moves only.
func Generate(rows, cols int, paths []planner.Toolpath, opts Options) ([]string, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	var originX, originY float64
	if opts.OriginCentre {
		originX = float64(cols-1) / 2.0 * opts.StepSizeMM
		originY = float64(rows-1) / 2.0 * opts.StepSizeMM
	}

	program := []string{
		"G21",
		"G90",
		fmt.Sprintf("G0 X0 Y0 Z%s", num(opts.ClearanceHeightMM)),
		fmt.Sprintf("M3 S%d", opts.SpindleRPM),
	}

	for _, depth := range opts.DepthPasses {
		for _, p := range paths {
			program = append(program, encodePath(p, depth, originX, originY, opts)...)
		}
		// pause for dust clearance and quality checking
		program = append(program, "M0")
	}

	// park neatly
	program = append(program,
		"G90",
		fmt.Sprintf("G0 Z%s", num(opts.ClearanceHeightMM)),
		"G0 X0 Y0",
		"M5",
		"M30",
	)
	return program, nil
}

// Write generates the program and writes it line by line to w.
func Write(w io.Writer, rows, cols int, paths []planner.Toolpath, opts Options) error {
	program, err := Generate(rows, cols, paths, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, strings.Join(program, "\n")+"\n")
	return err
}

// encodePath emits one toolpath: travel to its start at clearance height,
// plunge, cut each straight run as a single relative move, retract.
func encodePath(p planner.Toolpath, depth, originX, originY float64, opts Options) []string {
	if len(p.Steps) == 0 {
		return nil
	}

	x := float64(p.Start.Col)*opts.StepSizeMM - originX
	y := float64(p.Start.Row)*opts.StepSizeMM - originY

	lines := []string{
		"G90",
		fmt.Sprintf("G0 Z%s", num(opts.ClearanceHeightMM)),
		fmt.Sprintf("G0 X%s Y%s", num(x), num(y)),
		fmt.Sprintf("G1 Z%s F%s", num(depth), num(opts.PlungeFeed)),
		"G91",
		fmt.Sprintf("F%s", num(opts.CutFeed)),
	}
	for _, s := range p.Steps {
		lines = append(lines, "G1 "+relMove(s.Direction, float64(s.Length)*opts.StepSizeMM))
	}
	return append(lines,
		"G90",
		fmt.Sprintf("G0 Z%s", num(opts.ClearanceHeightMM)),
	)
}

// relMove formats a relative XY move. Increasing row is increasing Y, so
// north travels in -Y.
func relMove(direction string, length float64) string {
	switch direction {
	case maze.North:
		return "Y-" + num(length)
	case maze.South:
		return "Y" + num(length)
	case maze.East:
		return "X" + num(length)
	case maze.West:
		return "X-" + num(length)
	}
	return ""
}

// num formats a coordinate without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
