//go:build ebiten

package app

import (
	"image/color"
	"time"

	"mad-life/internal/control"
	"mad-life/internal/core"
	"mad-life/internal/render"
	"mad-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the life controller to the ebiten.Game interface.
type Game struct {
	ctl     *control.Controller
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	cellSize int
}

// New constructs a Game around the provided controller.
func New(ctl *control.Controller, cellSize int) *Game {
	g := ctl.Grid()
	return &Game{
		ctl:      ctl,
		painter:  render.NewGridPainter(g.Rows(), g.Cols()),
		overlay:  ui.NewOverlay(cellSize),
		hud:      ui.NewHUD(ctl, ui.PanelWidth),
		onColor:  color.White,
		offColor: color.Black,
		cellSize: cellSize,
	}
}

// WindowSize returns the window size needed for the grid plus the HUD.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctl.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctl.Clear()
	}

	grid := g.ctl.Grid()
	offset := grid.Cols() * g.cellSize
	onPanel := g.hud.Update(offset)
	g.overlay.Update(g.ctl.CanPaint())

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !onPanel {
		x, y := ebiten.CursorPosition()
		if x < offset {
			g.ctl.PaintAt(core.CellAt(x, y, g.cellSize))
		}
	} else {
		g.ctl.EndStroke()
	}

	g.ctl.Update(time.Now())
	return nil
}

// Draw renders the current generation, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.ctl.Grid()
	g.painter.Blit(screen, grid, g.onColor, g.offColor, g.cellSize)
	g.overlay.Draw(screen, g.painter)
	g.hud.Draw(screen, grid.Cols()*g.cellSize, grid.Rows()*g.cellSize)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.ctl.Grid()
	return grid.Cols()*g.cellSize + g.hud.Width(), grid.Rows() * g.cellSize
}
