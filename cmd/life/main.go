//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"gol-torus/internal/app"
	"gol-torus/internal/config"
	"gol-torus/internal/ctxlog"
	"gol-torus/internal/life"
	"gol-torus/internal/ui"
	pcore "gol-torus/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		slog.Error("parse flags", "err", err)
		os.Exit(2)
	}
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	pattern, err := cfg.Validate()
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	ctx := ctxlog.WithLogger(context.Background(), logger)
	engine := life.New(cfg.Rows, cfg.Cols, pcore.NewRNG(cfg.Seed))
	game, err := app.New(ctx, engine, pattern, cfg.Speed, cfg.Scale)
	if err != nil {
		logger.Error("start", "err", err)
		os.Exit(1)
	}

	ebiten.SetWindowTitle("gol-torus — " + string(pattern))
	ebiten.SetWindowSize(cfg.Cols*cfg.Scale, cfg.Rows*cfg.Scale+ui.BarHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("run", "err", err)
		os.Exit(1)
	}
}
