package core

import "testing"

func TestGridDims(t *testing.T) {
	cases := []struct {
		screen     Size
		cell       int
		rows, cols int
	}{
		{Size{W: 800, H: 600}, 5, 120, 160},
		{Size{W: 800, H: 600}, 600, 1, 1},
		{Size{W: 803, H: 604}, 5, 120, 160},
		{Size{W: 4, H: 4}, 5, 0, 0},
		{Size{W: 800, H: 600}, 0, 0, 0},
	}
	for _, tc := range cases {
		rows, cols := GridDims(tc.screen, tc.cell)
		if rows != tc.rows || cols != tc.cols {
			t.Fatalf("GridDims(%v, %d) = %d,%d want %d,%d", tc.screen, tc.cell, rows, cols, tc.rows, tc.cols)
		}
	}
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		x, y, cell int
		row, col   int
	}{
		{0, 0, 5, 0, 0},
		{4, 4, 5, 0, 0},
		{5, 14, 5, 2, 1},
		{-1, 3, 5, 0, -1},
		{3, -12, 5, -1, 0},
		{3, 3, 0, -1, -1},
	}
	for _, tc := range cases {
		row, col := CellAt(tc.x, tc.y, tc.cell)
		if row != tc.row || col != tc.col {
			t.Fatalf("CellAt(%d,%d,%d) = %d,%d want %d,%d", tc.x, tc.y, tc.cell, row, col, tc.row, tc.col)
		}
	}
}

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Min: 0, Max: 100, HasMin: true, HasMax: true}
	if c.Clamp(-3) != 0 || c.Clamp(130) != 100 || c.Clamp(40) != 40 {
		t.Fatal("Clamp ignored bounds")
	}
	open := ParameterControl{}
	if open.Clamp(-3) != -3 {
		t.Fatal("Clamp enforced bounds that were not set")
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:   "Seeding",
		Params: []Parameter{{Key: "percent", Value: "20"}},
	}}}
	if p, ok := snap.Lookup("percent"); !ok || p.Value != "20" {
		t.Fatalf("Lookup(percent) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("Lookup found a missing key")
	}
}
