// Package life implements Conway's Game of Life on a fixed-size toroidal grid.
package life

import (
	"errors"
	"fmt"
	"strconv"

	"gol-torus/internal/core"
	pcore "gol-torus/pkg/core"
)

const (
	// DefaultRows is the grid height used when no size is configured.
	DefaultRows = 50
	// DefaultCols is the grid width used when no size is configured.
	DefaultCols = 80
)

var (
	// ErrInvalidPattern is returned by Reset for an unregistered pattern id.
	ErrInvalidPattern = errors.New("life: invalid pattern")
	// ErrNoRandomSource is returned when random seeding has no source.
	ErrNoRandomSource = errors.New("life: no random source")
)

// Source supplies uniform values in [0, 1).
type Source = pcore.Float64er

// Engine owns a toroidal grid and advances it one generation per Tick.
// Engine is not safe for concurrent use; callers serialise Reset and Tick.
type Engine struct {
	cur, nxt *core.Grid
	rng      Source

	pattern    PatternID
	generation int
}

// New returns an engine with an all-dead rows x cols grid. rng is only
// consulted by the random pattern and may be nil otherwise.
func New(rows, cols int, rng Source) *Engine {
	cur := core.NewGrid(rows, cols)
	return &Engine{
		cur: cur,
		nxt: core.NewGrid(cur.Rows(), cur.Cols()),
		rng: rng,
	}
}

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{Rows: e.cur.Rows(), Cols: e.cur.Cols()} }

// Grid returns a read-only view of the current generation. The view is valid
// until the next Tick or Reset.
func (e *Engine) Grid() core.View { return e.cur.ReadOnly() }

// Pattern returns the id used by the last successful Reset.
func (e *Engine) Pattern() PatternID { return e.pattern }

// Generation counts ticks since the last successful Reset.
func (e *Engine) Generation() int { return e.generation }

// Population counts live cells in the current generation.
func (e *Engine) Population() int { return e.cur.Population() }

// Reset clears the grid and seeds it with the pattern registered under id.
// On error the previous grid is kept.
func (e *Engine) Reset(id PatternID) error {
	seed, ok := seeders[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPattern, id)
	}

	// Seed into the spare buffer so a failing seeder leaves cur intact.
	e.cur, e.nxt = e.nxt, e.cur
	e.cur.Clear()
	if err := seed(e); err != nil {
		e.cur, e.nxt = e.nxt, e.cur
		return fmt.Errorf("reset %q: %w", id, err)
	}
	e.pattern = id
	e.generation = 0
	return nil
}

// Place stamps p into the grid, wrapping offsets that cross an edge.
func (e *Engine) Place(p Placement) {
	if p.Pattern == nil {
		return
	}
	for _, off := range p.Pattern.Cells {
		e.cur.Set(p.Row+off[0], p.Col+off[1], true)
	}
}

func (e *Engine) randomize(p float64) error {
	if e.rng == nil {
		return ErrNoRandomSource
	}
	pcore.FillBernoulli(e.rng, e.cur.Cells(), p)
	return nil
}

// Tick advances the simulation by one generation.
func (e *Engine) Tick() {
	rows, cols := e.cur.Rows(), e.cur.Cols()
	cur, nxt := e.cur.Cells(), e.nxt.Cells()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			neighbors := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr := (r + dr + rows) % rows
					nc := (c + dc + cols) % cols
					if cur[nr*cols+nc] {
						neighbors++
					}
				}
			}
			idx := r*cols + c
			nxt[idx] = (cur[idx] && neighbors == 2) || neighbors == 3
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.generation++
}

// Parameters exposes the engine state for status displays.
func (e *Engine) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("rows", "Rows", e.cur.Rows()),
				intParam("cols", "Cols", e.cur.Cols()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				{Key: "pattern", Label: "Pattern", Type: core.ParamTypeString, Value: string(e.pattern)},
				intParam("generation", "Generation", e.generation),
				intParam("population", "Population", e.Population()),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
