package render

import "image/color"

// CellReader is the part of a grid the painters need.
type CellReader interface {
	Rows() int
	Cols() int
	Alive(row, col int) bool
}

// fillCellsRGBA writes one RGBA pixel per cell into buf in row-major order.
// buf must hold at least 4*rows*cols bytes.
func fillCellsRGBA(buf []byte, cells CellReader, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	rows, cols := cells.Rows(), cells.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			base := (r*cols + c) * 4
			if cells.Alive(r, c) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}

// gridLines returns the pixel offsets of the lines separating cells along an
// axis of n cells, excluding the outer border.
func gridLines(n, cellSize int) []int {
	if n <= 1 || cellSize <= 1 {
		return nil
	}
	lines := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		lines = append(lines, i*cellSize)
	}
	return lines
}
