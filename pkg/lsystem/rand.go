package lsystem

import (
	"math/rand/v2"
	"time"
)

// Source supplies uniform random values to the stochastic engine and to
// transform functions that want randomness. Both methods are
// inclusive-bounded. Implementations are not required to be safe for
// concurrent use; share one across goroutines only with external locking.
type Source interface {
	// UniformFloat returns a uniform real in [lo, hi].
	UniformFloat(lo, hi float64) float64

	// UniformInt returns a uniform integer in [lo, hi].
	UniformInt(lo, hi int) int
}

// NewSource returns a PCG-backed Source seeded with seed. Two sources with
// the same seed produce the same stream, which is what makes stochastic
// derivations reproducible.
func NewSource(seed uint64) Source {
	return &pcgSource{rng: rand.New(rand.NewPCG(seed, seed<<32|seed>>32))}
}

// newTimeSource returns a Source seeded from the wall clock, used when the
// caller passes nil and does not care about reproducibility.
func newTimeSource() Source {
	return NewSource(uint64(time.Now().UnixNano()))
}

type pcgSource struct {
	rng *rand.Rand
}

func (s *pcgSource) UniformFloat(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *pcgSource) UniformInt(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

var _ Source = (*pcgSource)(nil)
