package render

import (
	"image/color"
	"slices"
	"testing"

	"mad-life/pkg/life"
)

func TestFillCellsRGBA(t *testing.T) {
	g := life.New(2, 3, func(r, c int) bool { return !(r == 1 && c == 2) })
	buf := make([]byte, 4*6)
	on := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	off := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	fillCellsRGBA(buf, g, on, off)

	for i := 0; i < 6; i++ {
		px := buf[i*4 : i*4+4]
		want := []byte{0, 0, 0, 255}
		if i == 5 {
			want = []byte{255, 255, 255, 255}
		}
		if !slices.Equal(px, want) {
			t.Fatalf("pixel %d = %v, want %v", i, px, want)
		}
	}
}

func TestGridLines(t *testing.T) {
	if got := gridLines(4, 5); !slices.Equal(got, []int{5, 10, 15}) {
		t.Fatalf("gridLines(4,5) = %v", got)
	}
	if gridLines(1, 5) != nil || gridLines(4, 1) != nil {
		t.Fatal("expected no lines for a single cell or 1px cells")
	}
}
