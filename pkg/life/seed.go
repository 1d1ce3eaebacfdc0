package life

import "sort"

// Seeder decides the starting state of a position. It returns true when the
// cell at (row, col) should start dead.
type Seeder func(row, col int) bool

// Source is the random draw consumed by Random. *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	IntN(n int) int
}

// AllDead leaves every cell dead. It is the default when no seeder is given.
func AllDead(int, int) bool { return true }

// Random returns a seeder that makes each cell alive with probability
// percent/100, independent of its position. percent is clamped to [0, 100].
func Random(percent int, src Source) Seeder {
	percent = min(max(percent, 0), 100)
	return func(int, int) bool {
		return src.IntN(100) >= percent
	}
}

// SeederFactory builds a seeder from the shared tunables.
type SeederFactory func(percent int, src Source) Seeder

var seeders = map[string]SeederFactory{}

// Register adds a seeding strategy under the provided name.
func Register(name string, f SeederFactory) {
	if name == "" || f == nil {
		return
	}
	seeders[name] = f
}

// Seeders exposes the registry of available seeding strategies.
func Seeders() map[string]SeederFactory {
	return seeders
}

// SeederNames returns the registered strategy names in sorted order.
func SeederNames() []string {
	names := make([]string, 0, len(seeders))
	for name := range seeders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("blank", func(int, Source) Seeder { return AllDead })
	Register("random", Random)
}
