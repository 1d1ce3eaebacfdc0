//go:build ebiten

package ui

import (
	"image/color"

	"mad-life/internal/core"
	"mad-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws grid lines and the cell under the cursor on top of the board.
type Overlay struct {
	cellSize int
	showGrid bool
	hover    bool
	row, col int
}

// NewOverlay constructs a new overlay for the given cell size.
func NewOverlay(cellSize int) *Overlay {
	return &Overlay{cellSize: cellSize}
}

// Update toggles grid lines and tracks the hovered cell while painting is
// allowed.
func (o *Overlay) Update(canPaint bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	o.hover = canPaint
	if o.hover {
		x, y := ebiten.CursorPosition()
		o.row, o.col = core.CellAt(x, y, o.cellSize)
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, painter *render.GridPainter) {
	if painter == nil {
		return
	}
	if o.showGrid {
		painter.DrawGridLines(screen, color.RGBA{R: 40, G: 40, B: 48, A: 255}, o.cellSize)
	}
	if o.hover {
		painter.Highlight(screen, o.row, o.col, o.cellSize, color.RGBA{R: 90, G: 200, B: 120, A: 255})
	}
}
