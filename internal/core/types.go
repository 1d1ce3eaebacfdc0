package core

// Size describes two-dimensional dimensions, in pixels or cells.
type Size struct {
	W int
	H int
}

// GridDims returns how many rows and columns of cellSize pixels fit on the
// screen. Partial cells are dropped.
func GridDims(screen Size, cellSize int) (rows, cols int) {
	if cellSize <= 0 || screen.W <= 0 || screen.H <= 0 {
		return 0, 0
	}
	return screen.H / cellSize, screen.W / cellSize
}

// CellAt converts a pixel position into grid coordinates. Positions left of
// or above the origin map to -1 so callers can discard them as out of range.
func CellAt(x, y, cellSize int) (row, col int) {
	if cellSize <= 0 {
		return -1, -1
	}
	return floorDiv(y, cellSize), floorDiv(x, cellSize)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return max(q, -1)
}
