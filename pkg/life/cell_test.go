package life

import "testing"

func TestCellStates(t *testing.T) {
	dead := NewCell(true)
	alive := NewCell(false)
	if !dead.IsDead() || dead.IsAlive() {
		t.Fatalf("NewCell(true) = %v, want dead", dead)
	}
	if !alive.IsAlive() || alive.IsDead() {
		t.Fatalf("NewCell(false) = %v, want alive", alive)
	}
	var zero Cell
	if !zero.IsDead() {
		t.Fatal("zero value must be dead")
	}
}

func TestCellToggle(t *testing.T) {
	c := NewCell(true)
	c.Toggle()
	if !c.IsAlive() {
		t.Fatal("toggle on dead cell must revive it")
	}
	c.Toggle()
	if !c.IsDead() {
		t.Fatal("toggle on live cell must kill it")
	}
}
