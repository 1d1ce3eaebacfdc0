// Package term runs the simulation inside a terminal using tcell. Each cell
// takes two terminal columns so it appears roughly square; the bottom line
// holds the status bar.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/gdamore/tcell/v2"

	"mad-life/internal/control"
)

// cellWidth is the number of terminal columns per grid cell.
const cellWidth = 2

// GridDims returns how many rows and columns fit on a screen of w x h
// characters, leaving one line for the status bar.
func GridDims(w, h int) (rows, cols int) {
	return max(h-1, 0), max(w/cellWidth, 0)
}

// FitDims is GridDims capped at maxRows x maxCols, so the -width, -height
// and -cell flags bound the board inside a larger terminal.
func FitDims(w, h, maxRows, maxCols int) (rows, cols int) {
	rows, cols = GridDims(w, h)
	return min(rows, max(maxRows, 0)), min(cols, max(maxCols, 0))
}

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorWhite)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
)

// UI couples a controller with a tcell screen.
type UI struct {
	screen tcell.Screen
	ctl    *control.Controller
	frame  time.Duration
}

// New returns a UI that redraws every frame interval.
func New(screen tcell.Screen, ctl *control.Controller, frame time.Duration) *UI {
	if frame <= 0 {
		frame = 16 * time.Millisecond
	}
	return &UI{screen: screen, ctl: ctl, frame: frame}
}

// Run processes input and advances the simulation until the user quits or ctx
// is cancelled. The screen must already be initialised.
func (u *UI) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go u.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(u.frame)
	defer ticker.Stop()

	u.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !u.Handle(ev) {
				return nil
			}
			u.Draw()
		case now := <-ticker.C:
			if u.ctl.Update(now) {
				u.Draw()
			}
		}
	}
}

// Handle applies one input event. It returns false when the user asked to
// quit.
func (u *UI) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return u.handleKey(ev)
	case *tcell.EventMouse:
		u.handleMouse(ev)
	case *tcell.EventResize:
		u.screen.Sync()
	}
	return true
}

func (u *UI) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}
	switch ev.Rune() {
	case 'q':
		return false
	case ' ':
		u.ctl.TogglePause()
	case 'n':
		u.ctl.StepOnce()
	case 'r':
		u.ctl.Restart()
	case 'c':
		u.ctl.Clear()
	case '+':
		u.adjustInterval(10)
	case '-':
		u.adjustInterval(-10)
	}
	return true
}

func (u *UI) adjustInterval(deltaMS int) {
	current := int(u.ctl.Settings().Interval / time.Millisecond)
	u.ctl.SetIntParameter(control.KeyInterval, current+deltaMS)
}

func (u *UI) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		u.ctl.EndStroke()
		return
	}
	x, y := ev.Position()
	if u.ctl.PaintAt(y, x/cellWidth) {
		log.WithFields(log.Fields{"row": y, "col": x / cellWidth}).Debug("painted")
	}
}

// Draw renders the grid and the status bar.
func (u *UI) Draw() {
	g := u.ctl.Grid()
	rows, cols := g.Rows(), g.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			style := deadStyle
			if g.Alive(r, c) {
				style = aliveStyle
			}
			for i := 0; i < cellWidth; i++ {
				u.screen.SetContent(c*cellWidth+i, r, ' ', nil, style)
			}
		}
	}
	u.drawStatus(rows)
	u.screen.Show()
}

// Status formats the status bar text.
func (u *UI) Status() string {
	g := u.ctl.Grid()
	s := g.Stats()
	return fmt.Sprintf(" %s | gen %d | alive %d | %v | space run/pause  n step  r restart  c clear  +/- speed  q quit",
		u.ctl.Mode(), s.Generation, g.Population(), u.ctl.Settings().Interval)
}

func (u *UI) drawStatus(row int) {
	w, _ := u.screen.Size()
	status := []rune(u.Status())
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(status) {
			ch = status[x]
		}
		u.screen.SetContent(x, row, ch, nil, statusStyle)
	}
}
