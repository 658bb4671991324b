package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"gol-torus/internal/config"
	"gol-torus/internal/core"
	"gol-torus/internal/ctxlog"
	"gol-torus/internal/input"
	"gol-torus/internal/life"
	"gol-torus/internal/render"
	"gol-torus/internal/scheduler"
	"gol-torus/internal/tui"
	"gol-torus/internal/ui"
	pcore "gol-torus/pkg/core"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("life-term failed", "err", err)
		os.Exit(1)
	}
}

// run parses args and starts either the headless printer or the terminal UI.
func run(ctx context.Context, out, errOut io.Writer, args []string) error {
	fs := flag.NewFlagSet("life-term", flag.ContinueOnError)
	fs.SetOutput(errOut)
	headless := fs.Bool("headless", false, "print text frames to stdout instead of opening the terminal UI")
	generations := fs.Int("generations", 10, "generations to print in headless mode")

	cfg, err := config.Parse(fs, args)
	if err != nil {
		return err
	}
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
	ctx = ctxlog.WithLogger(ctx, logger)

	pattern, err := cfg.Validate()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	engine := life.New(cfg.Rows, cfg.Cols, pcore.NewRNG(cfg.Seed))

	if *headless {
		return runHeadless(ctx, out, engine, pattern, *generations)
	}
	return runTerminal(ctx, engine, pattern, cfg.Speed)
}

func runHeadless(ctx context.Context, out io.Writer, engine *life.Engine, pattern life.PatternID, generations int) error {
	if generations < 0 {
		return fmt.Errorf("generations %d must not be negative", generations)
	}
	text := render.NewText(out)
	sched := scheduler.New(engine, text, nil)
	if err := sched.Restart(ctx, pattern); err != nil {
		return err
	}
	for i := 0; i < generations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		sched.Step()
	}
	if err := text.Err(); err != nil {
		return fmt.Errorf("write frames: %w", err)
	}
	_, err := fmt.Fprintln(out, ui.StatusLine(sched.Status()))
	return err
}

func runTerminal(ctx context.Context, engine *life.Engine, pattern life.PatternID, speed int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	term := tui.New(screen)
	sched := scheduler.New(engine, term, core.NewCadence(nil, speed))
	if err := sched.Restart(ctx, pattern); err != nil {
		return err
	}
	session := input.NewSession(sched, pattern)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return term.Loop(gctx, sched, session)
	})
	g.Go(func() error {
		return sched.Run(gctx)
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
