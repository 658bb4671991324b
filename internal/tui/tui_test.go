package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gol-torus/internal/core"
	"gol-torus/internal/input"
	"gol-torus/internal/life"
	"gol-torus/internal/scheduler"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.SimulationScreen, row, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := s.GetContent(x, row)
		b.WriteRune(r)
	}
	return b.String()
}

func TestRenderDrawsCells(t *testing.T) {
	s := newSimScreen(t, 10, 6)
	term := New(s)

	g := core.NewGrid(3, 4)
	g.Set(0, 0, true)
	g.Set(2, 3, true)
	term.Render(g.ReadOnly())

	assert.Equal(t, "█   ", rowText(s, 0, 4))
	assert.Equal(t, "    ", rowText(s, 1, 4))
	assert.Equal(t, "   █", rowText(s, 2, 4))
}

func TestDrawStatusBelowGrid(t *testing.T) {
	s := newSimScreen(t, 60, 6)
	term := New(s)
	term.Render(core.NewGrid(3, 4).ReadOnly())

	term.DrawStatus(scheduler.Status{Pattern: life.Oscillators, Speed: "3 / 7", Generation: 4, Population: 9, Paused: true})

	assert.True(t, strings.HasPrefix(rowText(s, 3, 60), "oscillators | speed 3 / 7 | gen 4 | pop 9 | PAUSED"))
	assert.True(t, strings.HasPrefix(rowText(s, 4, 60), "space pause"))
}

func TestCommand(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want input.Command
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.Command{Action: input.SpeedUp}},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), input.Command{Action: input.SpeedDown}},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), input.Command{Action: input.Quit}},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), input.Command{Action: input.Quit}},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), input.Command{Action: input.TogglePause}},
		{tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone), input.Command{Action: input.Select, Pattern: life.Spaceships}},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), input.Command{}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Command(tc.ev), tc.ev.Name())
	}
}

func TestLoopDispatchesUntilQuit(t *testing.T) {
	// --- Arrange ---
	s := newSimScreen(t, 90, 60)
	term := New(s)
	engine := life.New(life.DefaultRows, life.DefaultCols, nil)
	sched := scheduler.New(engine, term, nil)
	require.NoError(t, sched.Restart(context.Background(), life.Oscillators))
	session := input.NewSession(sched, life.Oscillators)

	s.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	s.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, '2', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Act ---
	err := term.Loop(ctx, sched, session)

	// --- Assert ---
	require.NoError(t, err)
	st := sched.Status()
	assert.Equal(t, "4 / 7", st.Speed)
	assert.Equal(t, life.Spaceships, st.Pattern)
	assert.Equal(t, life.Spaceships, session.Pattern())
	assert.Zero(t, st.Generation, "selecting a pattern restarts the run")
	assert.False(t, st.Paused, "restart resumes ticking")
}

func TestLoopReturnsOnCancel(t *testing.T) {
	s := newSimScreen(t, 90, 60)
	term := New(s)
	engine := life.New(10, 10, nil)
	sched := scheduler.New(engine, term, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := term.Loop(ctx, sched, input.NewSession(sched, life.Random))
	assert.ErrorIs(t, err, context.Canceled)
}
