package life

import (
	"slices"
	"testing"

	"mad-life/pkg/core"
)

// fixedDraw always returns the same value, clamped into range.
type fixedDraw int

func (f fixedDraw) IntN(n int) int { return min(int(f), n-1) }

// cycleDraw walks 0, 1, ..., n-1 and wraps.
type cycleDraw struct{ next int }

func (c *cycleDraw) IntN(n int) int {
	v := c.next % n
	c.next++
	return v
}

func TestRandomZeroPercentAllDead(t *testing.T) {
	for _, draw := range []fixedDraw{0, 50, 99} {
		g := New(6, 7, Random(0, draw))
		if g.Population() != 0 {
			t.Fatalf("draw %d: percent 0 produced %d live cells", draw, g.Population())
		}
	}
}

func TestRandomFullPercentAllAlive(t *testing.T) {
	for _, draw := range []fixedDraw{0, 50, 99} {
		g := New(6, 7, Random(100, draw))
		if g.Population() != 42 {
			t.Fatalf("draw %d: percent 100 produced %d live cells, want 42", draw, g.Population())
		}
	}
}

func TestRandomClampsPercent(t *testing.T) {
	if New(3, 3, Random(-5, fixedDraw(0))).Population() != 0 {
		t.Fatal("negative percent must behave like 0")
	}
	if New(3, 3, Random(250, fixedDraw(99))).Population() != 9 {
		t.Fatal("percent above 100 must behave like 100")
	}
}

func TestRandomProportion(t *testing.T) {
	g := New(10, 10, Random(30, &cycleDraw{}))
	if g.Population() != 30 {
		t.Fatalf("population = %d, want 30 for one full cycle of draws", g.Population())
	}
}

func TestRandomReproducibleWithSeededRNG(t *testing.T) {
	a := New(16, 16, Random(40, core.NewRNG(11)))
	b := New(16, 16, Random(40, core.NewRNG(11)))
	if !slices.Equal(a.Snapshot(), b.Snapshot()) {
		t.Fatal("same seed produced different boards")
	}
}

func TestRegisteredSeeders(t *testing.T) {
	names := SeederNames()
	if !slices.Equal(names, []string{"blank", "random"}) {
		t.Fatalf("SeederNames() = %v", names)
	}
	blank := Seeders()["blank"](100, fixedDraw(0))
	if New(4, 4, blank).Population() != 0 {
		t.Fatal("blank seeder must ignore percent")
	}
	random := Seeders()["random"](100, fixedDraw(0))
	if New(4, 4, random).Population() != 16 {
		t.Fatal("random seeder must honour percent")
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Seeders())
	Register("", Random)
	Register("nil", nil)
	if len(Seeders()) != before {
		t.Fatal("invalid registrations must be ignored")
	}
}
