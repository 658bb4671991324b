//go:build ebiten

// Package app adapts the scheduler to the ebiten.Game interface.
package app

import (
	"context"
	"time"

	"gol-torus/internal/core"
	"gol-torus/internal/ctxlog"
	"gol-torus/internal/input"
	"gol-torus/internal/life"
	"gol-torus/internal/render"
	"gol-torus/internal/scheduler"
	"gol-torus/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyCommands = []struct {
	key ebiten.Key
	cmd input.Command
}{
	{ebiten.KeySpace, input.Command{Action: input.TogglePause}},
	{ebiten.KeyR, input.Command{Action: input.Restart}},
	{ebiten.KeyArrowUp, input.Command{Action: input.SpeedUp}},
	{ebiten.KeyArrowDown, input.Command{Action: input.SpeedDown}},
	{ebiten.KeyN, input.Command{Action: input.Step}},
	{ebiten.KeyQ, input.Command{Action: input.Quit}},
	{ebiten.KeyEscape, input.Command{Action: input.Quit}},
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game drives the scheduler from ebiten's frame loop.
type Game struct {
	ctx     context.Context
	sched   *scheduler.Scheduler
	session *input.Session
	painter *render.GridPainter
	hud     *ui.HUD

	gridW, gridH int
	scale        int
}

// New wires engine to a painter and scheduler and seeds it with pattern.
func New(ctx context.Context, engine *life.Engine, pattern life.PatternID, speed, scale int) (*Game, error) {
	size := engine.Size()
	painter := render.NewGridPainter(size.Rows, size.Cols)
	sched := scheduler.New(engine, painter, core.NewCadence(nil, speed))
	if err := sched.Restart(ctx, pattern); err != nil {
		return nil, err
	}
	return &Game{
		ctx:     ctx,
		sched:   sched,
		session: input.NewSession(sched, pattern),
		painter: painter,
		hud:     ui.NewHUD(),
		gridW:   size.Cols * scale,
		gridH:   size.Rows * scale,
		scale:   scale,
	}, nil
}

func pressedCommands() []input.Command {
	var cmds []input.Command
	for _, kc := range keyCommands {
		if inpututil.IsKeyJustPressed(kc.key) {
			cmds = append(cmds, kc.cmd)
		}
	}
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			cmds = append(cmds, input.FromRune(rune('1'+i)))
		}
	}
	return cmds
}

// Update handles input and advances the simulation when a tick is due.
func (g *Game) Update() error {
	for _, cmd := range pressedCommands() {
		quit, err := g.session.Dispatch(g.ctx, cmd)
		if err != nil {
			ctxlog.FromContext(g.ctx).Warn("command failed", "action", cmd.Action, "err", err)
		}
		if quit {
			return ebiten.Termination
		}
	}
	g.sched.Poll(time.Now())
	return nil
}

// Draw renders the current generation and the status bar.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.scale)
	g.hud.Draw(screen, g.sched.Status(), g.gridW, g.gridH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridW, g.gridH + ui.BarHeight
}
