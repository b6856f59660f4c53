package random

import (
	"math/rand"
	"time"
)

// Source is the subset of *rand.Rand used by generators.
// Inject a seeded source to get reproducible output.
type Source interface {
	Intn(n int) int
}

// New returns a random source seeded with seed.
// A zero seed means "seed from the clock".
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// IntInclusive returns a uniform random integer in [min, max]
// Example: IntInclusive(src, 100, 300) can return both 100 and 300
func IntInclusive(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.Intn(max-min+1)
}

// FillInclusive fills dst with uniform random integers in [min, max]
func FillInclusive(src Source, dst []int, min, max int) {
	for i := range dst {
		dst[i] = IntInclusive(src, min, max)
	}
}
