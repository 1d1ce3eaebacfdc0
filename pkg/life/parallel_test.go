package life

import (
	"slices"
	"testing"

	"mad-life/pkg/core"
)

func TestStepParallelMatchesStep(t *testing.T) {
	for _, workers := range []int{0, 1, 2, 3, 7, 64} {
		seq := New(37, 29, Random(35, core.NewRNG(5)))
		par := New(37, 29, Random(35, core.NewRNG(5)))
		for i := 0; i < 12; i++ {
			want := seq.Step()
			got := par.StepParallel(workers)
			if got != want {
				t.Fatalf("workers=%d step %d stats %+v, want %+v", workers, i+1, got, want)
			}
			if !slices.Equal(seq.Snapshot(), par.Snapshot()) {
				t.Fatalf("workers=%d diverged at step %d", workers, i+1)
			}
		}
	}
}

func TestStepParallelEmptyGrid(t *testing.T) {
	g := New(0, 0, nil)
	if s := g.StepParallel(4); s.Generation != 1 || s.Alive != 0 {
		t.Fatalf("stats = %+v", s)
	}
}
