// Package random provides the uniform randomness sources the sequence
// algorithms draw from. One Source contract, four interchangeable
// implementations that differ only in how generator state is seeded and
// held: deterministic (fixed seed 0), OS-seeded, fixed caller seed, and
// stateless per-call OS entropy.
package random

import (
	"fmt"

	cards "github.com/Dmitry-Bychenko/Simple.Cards"
)

// Source is a uniform randomness capability. Implementations in this package
// are safe for concurrent use; independent streams require independent
// instances.
type Source interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64

	// IntN returns a uniform draw in [0, n). It panics if n <= 0.
	IntN(n int) int

	// Range returns a uniform draw in [min, max). It fails with
	// cards.ErrInvalidArgument when min >= max.
	Range(min, max int) (int, error)
}

// Default instances, one per variant. Deterministic and Seeded share one
// generator each across all callers; use the constructors for independent
// streams.
var (
	Deterministic Source = New()
	Seeded        Source = NewSeeded()
	Entropy       Source = entropySource{}
)

func rangeN(s Source, min, max int) (int, error) {
	if min >= max {
		return 0, fmt.Errorf("random: empty range [%d, %d): %w", min, max, cards.ErrInvalidArgument)
	}
	return min + s.IntN(max-min), nil
}
