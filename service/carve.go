package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/gridcarve/carver-api/carve/gcode"
	"github.com/gridcarve/carver-api/carve/maze"
	"github.com/gridcarve/carver-api/carve/planner"
	dmn "github.com/gridcarve/carver-api/domain"
	"github.com/gridcarve/carver-api/service/i"
)

// program cache key string format
const programKeyFmt = "carver:program:%dx%d:seed_%d:step_%s"

// CarveOptions configures the carve service.
type CarveOptions struct {
	// Machine holds the default machine parameters. Zero value means
	// gcode.DefaultOptions().
	Machine gcode.Options
}

// Carve runs the maze -> toolpath -> gcode pipeline, caches deterministic
// programs and persists the results.
type Carve struct {
	carvingRepo i.CarvingRepo
	cache       i.ProgramCache
	logger      i.Logger
	machine     gcode.Options
}

// NewCarveService creates a Carve service with the given dependencies.
func NewCarveService(carvingRepo i.CarvingRepo, cache i.ProgramCache, logger i.Logger, opts *CarveOptions) (*Carve, error) {
	if carvingRepo == nil || cache == nil || logger == nil {
		return nil, errors.New("carve service requires a carving repo, a program cache and a logger")
	}

	machine := gcode.DefaultOptions()
	if opts != nil && opts.Machine.StepSizeMM > 0 {
		machine = opts.Machine
	}

	return &Carve{
		carvingRepo: carvingRepo,
		cache:       cache,
		logger:      logger,
		machine:     machine,
	}, nil
}

// Carve generates a maze, plans its toolpaths, emits the program and
// persists the result for the owner. Seeded requests are served from the
// program cache when possible; seedless requests always carve a fresh maze.
func (c *Carve) Carve(ctx context.Context, ownerID uuid.UUID, req i.CarveRequest) (*dmn.Carving, error) {
	machine := c.machine
	if req.StepSizeMM > 0 {
		machine.StepSizeMM = req.StepSizeMM
	}

	var program *dmn.Program
	var err error

	if req.Seed != 0 {
		program, err = c.cachedProgram(ctx, req, machine)
	} else {
		program, err = c.generate(req, machine)
	}
	if err != nil {
		return nil, err
	}

	carving, err := dmn.NewCarving(dmn.CarvingConfig{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Rows:          req.Rows,
		Cols:          req.Cols,
		Seed:          req.Seed,
		StepSizeMM:    machine.StepSizeMM,
		ToolpathCount: program.ToolpathCount,
		Program:       program.Lines,
	})
	if err != nil {
		return nil, err
	}

	if err := c.carvingRepo.Save(carving); err != nil {
		return nil, err
	}

	c.logger.Info(fmt.Sprintf("carved %dx%d maze %s: %d toolpaths, %d lines",
		req.Rows, req.Cols, carving.ID, carving.ToolpathCount, len(carving.Program)))
	return carving, nil
}

// ByID retrieves a carving by ID.
func (c *Carve) ByID(_ context.Context, id uuid.UUID) (*dmn.Carving, error) {
	return c.carvingRepo.ByID(id)
}

// ByOwner lists a user's carvings.
func (c *Carve) ByOwner(_ context.Context, ownerID uuid.UUID) ([]*dmn.Carving, error) {
	return c.carvingRepo.ByOwner(ownerID)
}

// cachedProgram serves a seeded request from the cache, generating and
// filling it under a per-key lock on a miss. Cache failures degrade to
// plain generation.
func (c *Carve) cachedProgram(ctx context.Context, req i.CarveRequest, machine gcode.Options) (*dmn.Program, error) {
	key := programKey(req, machine)

	cached, err := c.cache.Fetch(ctx, key)
	if err != nil {
		c.logger.Warning(fmt.Sprintf("program cache fetch for %s: %v", key, err))
	}
	if cached != nil {
		return cached, nil
	}

	var program *dmn.Program
	err = c.cache.Guard(ctx, key, func(ctx context.Context) error {
		// another instance may have filled the cache while we waited
		if cached, err := c.cache.Fetch(ctx, key); err == nil && cached != nil {
			program = cached
			return nil
		}

		var genErr error
		program, genErr = c.generate(req, machine)
		if genErr != nil {
			return genErr
		}

		if storeErr := c.cache.Store(ctx, key, program); storeErr != nil {
			c.logger.Warning(fmt.Sprintf("program cache store for %s: %v", key, storeErr))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return program, nil
}

// generate runs the full pipeline: maze, toolpaths, gcode.
func (c *Carve) generate(req i.CarveRequest, machine gcode.Options) (*dmn.Program, error) {
	m, err := maze.New(maze.Config{Rows: req.Rows, Cols: req.Cols, Seed: req.Seed})
	if err != nil {
		return nil, err
	}

	paths, err := planner.Plan(m)
	if err != nil {
		return nil, err
	}

	lines, err := gcode.Generate(m.Rows, m.Cols, paths, machine)
	if err != nil {
		return nil, err
	}

	return &dmn.Program{Lines: lines, ToolpathCount: len(paths)}, nil
}

func programKey(req i.CarveRequest, machine gcode.Options) string {
	step := strconv.FormatFloat(machine.StepSizeMM, 'f', -1, 64)
	return fmt.Sprintf(programKeyFmt, req.Rows, req.Cols, req.Seed, step)
}
