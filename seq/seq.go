// Package seq implements generic sequence algorithms over any
// random.Source: a lazy uniform shuffle and uniform single-item sampling.
package seq

import (
	"fmt"
	"iter"
	"slices"

	cards "github.com/Dmitry-Bychenko/Simple.Cards"
	"github.com/Dmitry-Bychenko/Simple.Cards/random"
)

// Shuffle returns a lazy uniform permutation of src. It fails with
// cards.ErrInvalidArgument when src is nil; a nil source defaults to
// random.Seeded. Each iteration of the returned sequence clones src into a
// working buffer and yields a fresh Fisher-Yates permutation incrementally,
// so consuming one iteration never affects another and the input is never
// mutated.
func Shuffle[T any](src []T, r random.Source) (iter.Seq[T], error) {
	if src == nil {
		return nil, fmt.Errorf("seq: shuffle of nil source: %w", cards.ErrInvalidArgument)
	}
	if r == nil {
		r = random.Seeded
	}
	return func(yield func(T) bool) {
		buf := slices.Clone(src)
		for i := range buf {
			j := i + r.IntN(len(buf)-i)
			buf[i], buf[j] = buf[j], buf[i]
			if !yield(buf[i]) {
				return
			}
		}
	}, nil
}

// PeekRandom returns one element of src chosen uniformly, without mutating
// or consuming it. It fails with cards.ErrInvalidArgument when src is nil
// and with cards.ErrOutOfRange when src is empty; a nil source defaults to
// random.Seeded.
func PeekRandom[T any](src []T, r random.Source) (T, error) {
	var zero T
	if src == nil {
		return zero, fmt.Errorf("seq: peek into nil source: %w", cards.ErrInvalidArgument)
	}
	if len(src) == 0 {
		return zero, fmt.Errorf("seq: peek into empty source: %w", cards.ErrOutOfRange)
	}
	if r == nil {
		r = random.Seeded
	}
	return src[r.IntN(len(src))], nil
}

// PeekRandomSeq samples one element from a finite sequence that is not
// random-access: it materializes src first, then samples by index with the
// same contract as PeekRandom.
func PeekRandomSeq[T any](src iter.Seq[T], r random.Source) (T, error) {
	var zero T
	if src == nil {
		return zero, fmt.Errorf("seq: peek into nil source: %w", cards.ErrInvalidArgument)
	}
	items := slices.Collect(src)
	if len(items) == 0 {
		return zero, fmt.Errorf("seq: peek into empty source: %w", cards.ErrOutOfRange)
	}
	return PeekRandom(items, r)
}
