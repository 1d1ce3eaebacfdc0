package life

import "golang.org/x/sync/errgroup"

// StepParallel advances one generation like Step, evaluating bands of rows on
// up to workers goroutines. The previous generation stays read-only until
// every band has finished.
func (g *Grid) StepParallel(workers int) Stats {
	if workers <= 1 || g.rows < 2 {
		return g.Step()
	}
	workers = min(workers, g.rows)
	band := (g.rows + workers - 1) / workers
	counts := make([]int, workers)

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := 0; i < workers; i++ {
		lo := i * band
		if lo >= g.rows {
			break
		}
		hi := min(lo+band, g.rows)
		eg.Go(func() error {
			counts[i] = g.stepRows(lo, hi)
			return nil
		})
	}
	_ = eg.Wait() // bands never return an error

	alive := 0
	for _, n := range counts {
		alive += n
	}
	return g.commit(alive)
}
