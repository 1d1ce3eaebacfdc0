package app

import (
	"flag"
	"testing"
	"time"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	rows, cols := cfg.GridDims()
	if rows != 120 || cols != 160 {
		t.Fatalf("GridDims() = %d,%d want 120,160", rows, cols)
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-width", "100", "-height", "50", "-cell", "10", "-interval", "250ms", "-percent", "35", "-seeder", "blank", "-seed", "9", "-workers", "4"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	s := cfg.Settings(cfg.GridDims())
	if s.Rows != 5 || s.Cols != 10 {
		t.Fatalf("dims = %dx%d, want 5x10", s.Rows, s.Cols)
	}
	if s.Interval != 250*time.Millisecond || s.Percent != 35 || s.Seeder != "blank" || s.Workers != 4 {
		t.Fatalf("settings = %+v", s)
	}
	if cfg.Seed != 9 {
		t.Fatalf("seed = %d", cfg.Seed)
	}
}

func TestConfigValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"width":    func(c *Config) { c.Width = 0 },
		"cell":     func(c *Config) { c.CellSize = -1 },
		"percent":  func(c *Config) { c.Percent = 101 },
		"interval": func(c *Config) { c.Interval = -time.Second },
		"workers":  func(c *Config) { c.Workers = -2 },
		"seeder":   func(c *Config) { c.Seeder = "glider-gun" },
	}
	for name, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
