package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"mad-life/internal/control"
	"mad-life/internal/core"
	"mad-life/pkg/life"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Width    int
	Height   int
	CellSize int
	Interval time.Duration
	Percent  int
	Seeder   string
	Seed     int64
	Workers  int
	TPS      int
	LogFile  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    800,
		Height:   600,
		CellSize: 5,
		Percent:  20,
		Seeder:   "random",
		Workers:  1,
		TPS:      60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "screen width in pixels (terminal: caps columns at width/cell)")
	fs.IntVar(&c.Height, "height", c.Height, "screen height in pixels (terminal: caps rows at height/cell)")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "pixels per cell")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "delay between generations (0 steps every frame)")
	fs.IntVar(&c.Percent, "percent", c.Percent, "chance in percent that a cell starts alive with the random seeder")
	fs.StringVar(&c.Seeder, "seeder", c.Seeder, "initial population: "+strings.Join(life.SeederNames(), ", "))
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random seeder (0 picks one from the clock)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used to compute a generation")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the window")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write logs to this file")
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.Width, c.Height))
	}
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell size %d must be positive", c.CellSize))
	}
	if c.Percent < 0 || c.Percent > 100 {
		errs = append(errs, fmt.Errorf("percent %d outside [0, 100]", c.Percent))
	}
	if c.Interval < 0 {
		errs = append(errs, fmt.Errorf("interval %v is negative", c.Interval))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d is negative", c.Workers))
	}
	if _, ok := life.Seeders()[c.Seeder]; !ok {
		errs = append(errs, fmt.Errorf("unknown seeder %q", c.Seeder))
	}
	return errors.Join(errs...)
}

// GridDims returns the grid rows and columns that fit on the configured screen.
func (c *Config) GridDims() (rows, cols int) {
	return core.GridDims(core.Size{W: c.Width, H: c.Height}, c.CellSize)
}

// Settings converts the configuration into controller settings for a grid of
// the given dimensions.
func (c *Config) Settings(rows, cols int) control.Settings {
	return control.Settings{
		Rows:     rows,
		Cols:     cols,
		Percent:  c.Percent,
		Seeder:   c.Seeder,
		Interval: c.Interval,
		Workers:  c.Workers,
	}
}
