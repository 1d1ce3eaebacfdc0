//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads the grid into a one-pixel-per-cell image and scales it
// onto the screen.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
	line       *ebiten.Image
}

// NewGridPainter allocates a painter for a rows x cols grid.
func NewGridPainter(rows, cols int) *GridPainter {
	gp := &GridPainter{rows: rows, cols: cols, buf: make([]byte, 4*rows*cols)}
	if rows > 0 && cols > 0 {
		gp.img = ebiten.NewImage(cols, rows)
	}
	gp.line = ebiten.NewImage(1, 1)
	gp.line.Fill(color.White)
	return gp
}

// Blit draws the cells at the given scale. Grids of another size are skipped;
// restarts keep the dimensions, so one painter serves the whole run.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells CellReader, on, off color.Color, scale int) {
	if gp.img == nil || cells.Rows() != gp.rows || cells.Cols() != gp.cols {
		return
	}
	fillCellsRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// DrawGridLines draws separators between cells.
func (gp *GridPainter) DrawGridLines(dst *ebiten.Image, col color.Color, scale int) {
	width := float64(gp.cols * scale)
	height := float64(gp.rows * scale)
	for _, x := range gridLines(gp.cols, scale) {
		gp.fillRect(dst, float64(x), 0, 1, height, col)
	}
	for _, y := range gridLines(gp.rows, scale) {
		gp.fillRect(dst, 0, float64(y), width, 1, col)
	}
}

// Highlight outlines a single cell.
func (gp *GridPainter) Highlight(dst *ebiten.Image, row, col, scale int, c color.Color) {
	if row < 0 || row >= gp.rows || col < 0 || col >= gp.cols {
		return
	}
	x := float64(col * scale)
	y := float64(row * scale)
	s := float64(scale)
	gp.fillRect(dst, x, y, s, 1, c)
	gp.fillRect(dst, x, y+s-1, s, 1, c)
	gp.fillRect(dst, x, y, 1, s, c)
	gp.fillRect(dst, x+s-1, y, 1, s, c)
}

func (gp *GridPainter) fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(gp.line, op)
}

// Size returns the grid dimensions the painter was built for.
func (gp *GridPainter) Size() (rows, cols int) { return gp.rows, gp.cols }
