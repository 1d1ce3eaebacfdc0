package life

// Stats summarises the simulation progress.
type Stats struct {
	Generation int
	Alive      int
}

// Grid implements Conway's Game of Life on a bounded board. Cells beyond the
// edges do not exist and never count as neighbours.
type Grid struct {
	rows, cols int
	cur        []Cell
	nxt        []Cell
	stats      Stats
}

// New builds a rows x cols grid. Each cell starts dead when seed reports true
// for its position; a nil seed leaves the whole board dead.
func New(rows, cols int, seed Seeder) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	if seed == nil {
		seed = AllDead
	}
	cells := make([]Cell, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells[r*cols+c] = NewCell(seed(r, c))
		}
	}
	return &Grid{rows: rows, cols: cols, cur: cells, nxt: make([]Cell, len(cells))}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Stats returns the generation number and the alive count of the last step.
func (g *Grid) Stats() Stats { return g.stats }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cell at (row, col). Positions outside the grid read as Dead.
func (g *Grid) At(row, col int) Cell {
	if !g.inBounds(row, col) {
		return Dead
	}
	return g.cur[row*g.cols+col]
}

// Alive reports whether the cell at (row, col) is alive.
func (g *Grid) Alive(row, col int) bool { return g.At(row, col).IsAlive() }

// Population counts the live cells of the current generation.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		if c.IsAlive() {
			n++
		}
	}
	return n
}

// Snapshot returns a row-major copy of the current generation.
func (g *Grid) Snapshot() []Cell {
	return append([]Cell(nil), g.cur...)
}

// ToggleAt flips the cell at (row, col). Out of range positions are ignored.
func (g *Grid) ToggleAt(row, col int) {
	if !g.inBounds(row, col) {
		return
	}
	g.cur[row*g.cols+col].Toggle()
}

// NeighborCount returns the number of live cells surrounding (row, col).
func (g *Grid) NeighborCount(row, col int) int {
	if !g.inBounds(row, col) {
		return 0
	}
	r0, r1 := max(row-1, 0), min(row+1, g.rows-1)
	c0, c1 := max(col-1, 0), min(col+1, g.cols-1)
	n := 0
	for r := r0; r <= r1; r++ {
		base := r * g.cols
		for c := c0; c <= c1; c++ {
			if r == row && c == col {
				continue
			}
			if g.cur[base+c].IsAlive() {
				n++
			}
		}
	}
	return n
}

// Step advances the simulation by one generation.
func (g *Grid) Step() Stats {
	alive := g.stepRows(0, g.rows)
	return g.commit(alive)
}

// stepRows writes the next state of rows [lo, hi) into the back buffer and
// returns how many of them are alive. It only reads the current generation.
func (g *Grid) stepRows(lo, hi int) int {
	alive := 0
	for r := lo; r < hi; r++ {
		base := r * g.cols
		for c := 0; c < g.cols; c++ {
			idx := base + c
			next := NewCell(NextIsDead(g.NeighborCount(r, c), g.cur[idx].IsDead()))
			g.nxt[idx] = next
			if next.IsAlive() {
				alive++
			}
		}
	}
	return alive
}

func (g *Grid) commit(alive int) Stats {
	g.cur, g.nxt = g.nxt, g.cur
	g.stats.Generation++
	g.stats.Alive = alive
	return g.stats
}
