package life

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Dead marks an empty position.
	Dead Cell = iota
	// Alive marks a populated position.
	Alive
)

// NewCell returns a cell in the requested state.
func NewCell(isDead bool) Cell {
	if isDead {
		return Dead
	}
	return Alive
}

// IsAlive reports whether the cell is populated.
func (c Cell) IsAlive() bool { return c == Alive }

// IsDead reports whether the cell is empty.
func (c Cell) IsDead() bool { return c != Alive }

// Toggle flips the cell between Alive and Dead.
func (c *Cell) Toggle() {
	if *c == Alive {
		*c = Dead
		return
	}
	*c = Alive
}
