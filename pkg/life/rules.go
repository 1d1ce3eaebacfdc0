package life

// NextIsDead applies Conway's rule to a cell with the given number of live
// neighbours: a dead cell with exactly three is born, a live cell with two or
// three survives, everything else is dead in the next generation.
func NextIsDead(neighbors int, isDead bool) bool {
	switch {
	case isDead && neighbors == 3:
		return false
	case !isDead && (neighbors == 2 || neighbors == 3):
		return false
	default:
		return true
	}
}
