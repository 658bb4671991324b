// Package tui renders the grid in a terminal with tcell and turns key events
// into input commands.
package tui

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"gol-torus/internal/core"
	"gol-torus/internal/ctxlog"
	"gol-torus/internal/input"
	"gol-torus/internal/scheduler"
	"gol-torus/internal/ui"
)

const aliveRune = '█'

// Terminal draws one grid cell per terminal column with a two-line status
// area underneath.
type Terminal struct {
	screen tcell.Screen
	alive  tcell.Style
	dead   tcell.Style
	status tcell.Style
	help   tcell.Style

	mu   sync.Mutex
	rows int
}

// New wraps an initialised screen.
func New(screen tcell.Screen) *Terminal {
	base := tcell.StyleDefault
	return &Terminal{
		screen: screen,
		alive:  base.Foreground(tcell.ColorWhite),
		dead:   base,
		status: base.Bold(true),
		help:   base.Foreground(tcell.ColorGray),
	}
}

// Render draws v and asks the event loop to refresh the status line. It may
// be called from the scheduler goroutine.
func (t *Terminal) Render(v core.View) {
	for r := 0; r < v.Rows(); r++ {
		for c := 0; c < v.Cols(); c++ {
			if v.Alive(r, c) {
				t.screen.SetContent(c, r, aliveRune, nil, t.alive)
			} else {
				t.screen.SetContent(c, r, ' ', nil, t.dead)
			}
		}
	}
	t.mu.Lock()
	t.rows = v.Rows()
	t.mu.Unlock()
	// Status lookups take the scheduler lock, which is held while rendering,
	// so the status line is drawn from the event loop instead.
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// DrawStatus writes st under the grid and flushes the screen.
func (t *Terminal) DrawStatus(st scheduler.Status) {
	t.mu.Lock()
	row := t.rows
	t.mu.Unlock()

	t.drawLine(row, ui.StatusLine(st), t.status)
	t.drawLine(row+1, ui.KeyHelp, t.help)
	t.screen.Show()
}

func (t *Terminal) drawLine(row int, s string, style tcell.Style) {
	w, _ := t.screen.Size()
	x := 0
	for _, r := range s {
		if x >= w {
			break
		}
		t.screen.SetContent(x, row, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		t.screen.SetContent(x, row, ' ', nil, t.dead)
	}
}

// Command translates a key event into an input command.
func Command(ev *tcell.EventKey) input.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.Command{Action: input.SpeedUp}
	case tcell.KeyDown:
		return input.Command{Action: input.SpeedDown}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Command{Action: input.Quit}
	case tcell.KeyRune:
		return input.FromRune(ev.Rune())
	}
	return input.Command{}
}

// Loop handles terminal events until the user quits or ctx is cancelled. It
// returns nil on quit and ctx.Err() on cancellation.
func (t *Terminal) Loop(ctx context.Context, sched *scheduler.Scheduler, session *input.Session) error {
	log := ctxlog.FromContext(ctx)
	go func() {
		<-ctx.Done()
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(ctx))
	}()

	t.DrawStatus(sched.Status())
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			cmd := Command(ev)
			if cmd.Action == input.None {
				continue
			}
			quit, err := session.Dispatch(ctx, cmd)
			if err != nil {
				log.Warn("command failed", "action", cmd.Action, "err", err)
			}
			if quit {
				return nil
			}
			t.DrawStatus(sched.Status())
		case *tcell.EventResize:
			t.screen.Sync()
			sched.Render()
		case *tcell.EventInterrupt:
			t.DrawStatus(sched.Status())
		}
	}
}
