package control

import (
	"fmt"
	"strconv"
	"time"

	"github.com/apex/log"

	"mad-life/internal/core"
	pcore "mad-life/pkg/core"
	"mad-life/pkg/life"
)

// Mode is the interaction state of the host loop.
type Mode int

const (
	// ModePaint waits for the user to draw the initial population.
	ModePaint Mode = iota
	// ModeRunning advances a generation every interval.
	ModeRunning
	// ModePaused holds the current generation; painting is allowed.
	ModePaused
)

func (m Mode) String() string {
	switch m {
	case ModePaint:
		return "paint"
	case ModeRunning:
		return "running"
	case ModePaused:
		return "paused"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Parameter keys understood by SetIntParameter.
const (
	KeyPercent  = "percent"
	KeyInterval = "interval_ms"
)

// Settings configures the grid a Controller builds on every restart.
type Settings struct {
	Rows     int
	Cols     int
	Percent  int
	Seeder   string
	Interval time.Duration
	Workers  int
}

// View is the read-only face of the grid handed to renderers.
type View interface {
	Rows() int
	Cols() int
	Alive(row, col int) bool
	Stats() life.Stats
	Population() int
}

// Controller owns the running grid and the play/pause/paint state around it.
// It is not safe for concurrent use; frontends call it from one goroutine.
type Controller struct {
	settings Settings
	rng      *pcore.RNG
	timer    *core.FixedStep
	grid     *life.Grid
	mode     Mode

	tickOnce bool
	stroke   [2]int
	stroking bool
}

// New builds a controller and its first grid. A zero seed draws one from the
// wall clock.
func New(settings Settings, seed int64) *Controller {
	if _, ok := life.Seeders()[settings.Seeder]; !ok {
		settings.Seeder = "blank"
	}
	settings.Percent = min(max(settings.Percent, 0), 100)
	c := &Controller{
		settings: settings,
		rng:      pcore.NewRNG(seed),
		timer:    core.NewFixedStep(settings.Interval),
	}
	c.Restart()
	return c
}

// Grid exposes the current generation for rendering.
func (c *Controller) Grid() View { return c.grid }

// Mode returns the current interaction mode.
func (c *Controller) Mode() Mode { return c.mode }

// Settings returns the active configuration.
func (c *Controller) Settings() Settings { return c.settings }

// Restart discards the grid and seeds a fresh one. The blank seeder enters
// paint mode, every other seeder starts running immediately.
func (c *Controller) Restart() {
	factory := life.Seeders()[c.settings.Seeder]
	c.grid = life.New(c.settings.Rows, c.settings.Cols, factory(c.settings.Percent, c.rng))
	c.tickOnce = false
	c.stroking = false
	if c.settings.Seeder == "blank" {
		c.setMode(ModePaint)
	} else {
		c.setMode(ModeRunning)
	}
	log.WithFields(log.Fields{
		"rows":    c.settings.Rows,
		"cols":    c.settings.Cols,
		"seeder":  c.settings.Seeder,
		"percent": c.settings.Percent,
		"alive":   c.grid.Population(),
	}).Info("grid restarted")
}

// Clear replaces the grid with an empty one and enters paint mode without
// changing the configured seeder.
func (c *Controller) Clear() {
	c.grid = life.New(c.settings.Rows, c.settings.Cols, life.AllDead)
	c.tickOnce = false
	c.stroking = false
	c.setMode(ModePaint)
}

// Start resumes or begins the simulation.
func (c *Controller) Start() { c.setMode(ModeRunning) }

// Pause stops stepping. It has no effect while painting.
func (c *Controller) Pause() {
	if c.mode == ModeRunning {
		c.setMode(ModePaused)
	}
}

// TogglePause flips between running and paused; in paint mode it starts.
func (c *Controller) TogglePause() {
	if c.mode == ModeRunning {
		c.setMode(ModePaused)
		return
	}
	c.setMode(ModeRunning)
}

// StepOnce requests a single generation on the next Tick while not running.
func (c *Controller) StepOnce() {
	if c.mode != ModeRunning {
		c.tickOnce = true
	}
}

// CanPaint reports whether painting is currently accepted.
func (c *Controller) CanPaint() bool { return c.mode != ModeRunning }

// PaintAt toggles the cell under the pointer. Repeated calls for the same cell
// within one stroke toggle it only once.
func (c *Controller) PaintAt(row, col int) bool {
	if !c.CanPaint() {
		return false
	}
	pos := [2]int{row, col}
	if c.stroking && c.stroke == pos {
		return false
	}
	c.stroke = pos
	c.stroking = true
	if row < 0 || row >= c.grid.Rows() || col < 0 || col >= c.grid.Cols() {
		return false
	}
	c.grid.ToggleAt(row, col)
	return true
}

// EndStroke marks the pointer as released.
func (c *Controller) EndStroke() { c.stroking = false }

// Tick advances one generation when running or when a single step was
// requested. It reports whether a step happened.
func (c *Controller) Tick() bool {
	if c.mode != ModeRunning && !c.tickOnce {
		return false
	}
	c.tickOnce = false
	if c.settings.Workers > 1 {
		c.grid.StepParallel(c.settings.Workers)
	} else {
		c.grid.Step()
	}
	return true
}

// Update steps the grid when the configured interval has elapsed at now, or
// immediately for a pending single step.
func (c *Controller) Update(now time.Time) bool {
	if c.tickOnce {
		return c.Tick()
	}
	if c.mode != ModeRunning {
		return false
	}
	if !c.timer.ShouldStep(now) {
		return false
	}
	return c.Tick()
}

// Parameters reports the tunables and read-only status values.
func (c *Controller) Parameters() core.ParameterSnapshot {
	stats := c.grid.Stats()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				stringParam("mode", "Mode", c.mode.String()),
				intParam("generation", "Generation", stats.Generation),
				intParam("alive", "Alive", c.grid.Population()),
			},
		},
		{
			Name: "Settings",
			Params: []core.Parameter{
				stringParam("seeder", "Seeder", c.settings.Seeder),
				intParam(KeyPercent, "Alive %", c.settings.Percent),
				intParam(KeyInterval, "Interval ms", int(c.settings.Interval/time.Millisecond)),
			},
		},
	}}
}

// ParameterControls lists the values adjustable from the HUD.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: KeyPercent, Label: "Alive %", Step: 5, Min: 0, Max: 100, HasMin: true, HasMax: true},
		{Key: KeyInterval, Label: "Interval ms", Step: 10, Min: 0, Max: 2000, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates a tunable. Percent applies from the next restart,
// the interval applies immediately.
func (c *Controller) SetIntParameter(key string, value int) bool {
	for _, ctrl := range c.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case KeyPercent:
			c.settings.Percent = value
		case KeyInterval:
			c.settings.Interval = time.Duration(value) * time.Millisecond
			c.timer.SetInterval(c.settings.Interval)
		}
		log.WithField(key, value).Debug("parameter changed")
		return true
	}
	return false
}

func (c *Controller) setMode(m Mode) {
	if c.mode == m && c.grid != nil {
		return
	}
	c.mode = m
	log.WithField("mode", m.String()).Debug("mode changed")
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
