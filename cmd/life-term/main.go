package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"mad-life/internal/app"
	"mad-life/internal/control"
	"mad-life/internal/term"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/gdamore/tcell/v2"
)

// loadConfig parses and validates the command line. Errors are returned
// rather than logged because no log handler is installed yet.
func loadConfig(args []string, stderr io.Writer) (*app.Config, error) {
	cfg := app.NewConfig()
	cfg.Interval = 100 * time.Millisecond
	fs := flag.NewFlagSet("life-term", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func fail(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}

func main() {
	cfg, err := loadConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fail(2, "life-term: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fail(1, "life-term: creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		fail(1, "life-term: initializing screen: %v", err)
	}

	// The terminal owns stdout from here on, so logs only go to -log when given.
	closer, err := app.SetupLogging(cfg.LogFile, log.DebugLevel, discard.Default)
	if err != nil {
		screen.Fini()
		fail(1, "life-term: %v", err)
	}
	defer closer.Close()

	screen.EnableMouse()
	screen.HideCursor()

	w, h := screen.Size()
	maxRows, maxCols := cfg.GridDims()
	rows, cols := term.FitDims(w, h, maxRows, maxCols)
	ctl := control.New(cfg.Settings(rows, cols), cfg.Seed)
	log.WithFields(log.Fields{"rows": rows, "cols": cols}).Info("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = term.New(screen, ctl, time.Second/time.Duration(max(cfg.TPS, 1))).Run(ctx)
	screen.Fini()
	stop()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("run")
		closer.Close()
		fail(1, "life-term: %v", err)
	}
}
