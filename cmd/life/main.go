//go:build ebiten

package main

import (
	"errors"
	"flag"

	"mad-life/internal/app"
	"mad-life/internal/control"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	closer, err := app.SetupLogging(cfg.LogFile, log.InfoLevel, cli.Default)
	if err != nil {
		log.WithError(err).Fatal("logging")
	}
	defer closer.Close()

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	rows, cols := cfg.GridDims()
	ctl := control.New(cfg.Settings(rows, cols), cfg.Seed)
	game := app.New(ctl, cfg.CellSize)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.WindowSize())

	log.WithFields(log.Fields{"rows": rows, "cols": cols, "cell": cfg.CellSize}).Info("starting")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("run")
	}
}
