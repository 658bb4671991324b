// Package scheduler drives an engine at a configurable cadence and forwards
// each generation to a renderer.
package scheduler

import (
	"context"
	"sync"
	"time"

	"gol-torus/internal/core"
	"gol-torus/internal/ctxlog"
	"gol-torus/internal/life"
)

// Engine is the part of life.Engine the scheduler drives.
type Engine interface {
	Reset(id life.PatternID) error
	Tick()
	Grid() core.View
	Pattern() life.PatternID
	Generation() int
	Population() int
	Parameters() core.ParameterSnapshot
}

// Status is a point-in-time summary for status displays.
type Status struct {
	Pattern    life.PatternID
	Generation int
	Population int
	Speed      string
	Interval   time.Duration
	Paused     bool
}

// Scheduler serialises every engine call behind one mutex, so Tick and Reset
// never overlap and renderers never observe a half-updated grid.
type Scheduler struct {
	mu       sync.Mutex
	engine   Engine
	renderer core.Renderer
	cadence  *core.Cadence
	paused   bool

	wake chan struct{}
}

// New returns a paused scheduler. Call Restart to seed the engine and start
// ticking. A nil cadence uses the default interval table.
func New(engine Engine, renderer core.Renderer, cadence *core.Cadence) *Scheduler {
	if cadence == nil {
		cadence = core.NewCadence(nil, core.DefaultSpeed)
	}
	if renderer == nil {
		renderer = core.MultiRenderer(nil)
	}
	return &Scheduler{
		engine:   engine,
		renderer: renderer,
		cadence:  cadence,
		paused:   true,
		wake:     make(chan struct{}, 1),
	}
}

func (s *Scheduler) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Paused reports whether periodic ticking is stopped.
func (s *Scheduler) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Pause stops periodic ticking.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
	s.notify()
}

// Resume restarts periodic ticking with a fresh period.
func (s *Scheduler) Resume() {
	s.mu.Lock()
	s.paused = false
	s.cadence.Reset()
	s.mu.Unlock()
	s.notify()
}

// TogglePause flips between paused and running and returns the new state.
func (s *Scheduler) TogglePause() bool {
	s.mu.Lock()
	s.paused = !s.paused
	if !s.paused {
		s.cadence.Reset()
	}
	paused := s.paused
	s.mu.Unlock()
	s.notify()
	return paused
}

// SpeedUp shortens the tick interval by one step.
func (s *Scheduler) SpeedUp() {
	s.mu.Lock()
	s.cadence.SpeedUp()
	s.mu.Unlock()
	s.notify()
}

// SpeedDown lengthens the tick interval by one step.
func (s *Scheduler) SpeedDown() {
	s.mu.Lock()
	s.cadence.SpeedDown()
	s.mu.Unlock()
	s.notify()
}

// Restart reseeds the engine with id, renders it and resumes ticking. If the
// engine rejects id nothing changes and the error is returned.
func (s *Scheduler) Restart(ctx context.Context, id life.PatternID) error {
	s.mu.Lock()
	if err := s.engine.Reset(id); err != nil {
		s.mu.Unlock()
		return err
	}
	s.renderer.Render(s.engine.Grid())
	s.paused = false
	s.cadence.Reset()
	args := s.engine.Parameters().LogArgs()
	s.mu.Unlock()
	s.notify()

	ctxlog.FromContext(ctx).Debug("restart", args...)
	return nil
}

// Step advances exactly one generation, paused or not.
func (s *Scheduler) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advance()
}

func (s *Scheduler) advance() {
	s.engine.Tick()
	s.renderer.Render(s.engine.Grid())
}

// Poll advances as many generations as the cadence says are due at now and
// returns how many ran. It is meant for hosts that already run a frame loop;
// intervals shorter than the frame period yield several ticks per call.
func (s *Scheduler) Poll(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paused {
		return 0
	}
	n := s.cadence.Due(now)
	for i := 0; i < n; i++ {
		s.engine.Tick()
	}
	if n > 0 {
		s.renderer.Render(s.engine.Grid())
	}
	return n
}

// Render pushes the current grid to the renderer without ticking.
func (s *Scheduler) Render() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderer.Render(s.engine.Grid())
}

// Status reports the current engine and cadence state.
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		Pattern:    s.engine.Pattern(),
		Generation: s.engine.Generation(),
		Population: s.engine.Population(),
		Speed:      s.cadence.Label(),
		Interval:   s.cadence.Interval(),
		Paused:     s.paused,
	}
}

func (s *Scheduler) timing() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cadence.Interval(), s.paused
}

// Run ticks the engine on a fixed-rate ticker until ctx is cancelled. Ticks
// are spaced by the interval alone, not by interval plus tick time. Pause,
// speed changes and restarts re-arm the ticker immediately.
func (s *Scheduler) Run(ctx context.Context) error {
	log := ctxlog.FromContext(ctx)
	ticker := time.NewTicker(time.Hour)
	ticker.Stop()
	defer ticker.Stop()

	arm := func() <-chan time.Time {
		interval, paused := s.timing()
		if paused {
			ticker.Stop()
			return nil
		}
		ticker.Reset(interval)
		return ticker.C
	}

	log.Debug("scheduler started")
	fire := arm()
	for {
		select {
		case <-ctx.Done():
			log.Debug("scheduler stopped", "reason", ctx.Err())
			return ctx.Err()
		case <-s.wake:
			fire = arm()
		case <-fire:
			s.mu.Lock()
			if !s.paused {
				s.advance()
			}
			s.mu.Unlock()
		}
	}
}
