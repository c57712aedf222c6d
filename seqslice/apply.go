package seqslice

import (
	"errors"
	"iter"
)

// ErrZeroStep is reported when a Slice carries an explicit step of zero.
// It is the only invalid input in the slicing contract; every index
// magnitude is handled by clamping instead.
var ErrZeroStep = errors.New("seqslice: step must not be zero")

// clamp constrains v into the inclusive range [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Positions resolves the slice against a concrete sequence length and
// returns the lazy stream of positions to visit, equivalent to Python's
// range(start', end', step) after Python's bound normalization. Every
// yielded position is within [0, length). ErrZeroStep is reported before
// any position is produced; an error is never conflated with an empty
// stream.
func (s Slice) Positions(length int) (iter.Seq[int], error) {
	step := 1
	if s.Step != nil {
		step = *s.Step
	}
	if step == 0 {
		return nil, ErrZeroStep
	}

	// Resolve both bounds to signed offsets, then clamp into the window
	// appropriate to the direction of travel. Forward iteration runs over
	// [0, length], backward over [-1, length-1]; out-of-range offsets are
	// silently pulled to the nearest boundary.
	var start, end int
	if step > 0 {
		start = clamp(s.Start.resolve(length, 0), 0, length)
		end = clamp(s.End.resolve(length, length), 0, length)
	} else {
		start = clamp(s.Start.resolve(length, length-1), -1, length-1)
		end = clamp(s.End.resolve(length, -1), -1, length-1)
	}

	return func(yield func(int) bool) {
		if step > 0 {
			for i := start; i < end; i += step {
				if !yield(i) {
					return
				}
			}
		} else {
			for i := start; i > end; i += step {
				if !yield(i) {
					return
				}
			}
		}
	}, nil
}

// Apply slices src, yielding exactly the elements Python's
// src[start:end:step] would yield, in the same order. The returned
// sequence is lazy: unconsumed elements are never read. Neither s nor src
// is mutated, so concurrent calls over the same values need no
// coordination.
func Apply[T any](s Slice, src []T) (iter.Seq[T], error) {
	positions, err := s.Positions(len(src))
	if err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		for i := range positions {
			if !yield(src[i]) {
				return
			}
		}
	}, nil
}

// ApplyIndexer is Apply over the Indexer interface instead of a Go slice.
// src.At is only called for positions actually consumed.
func ApplyIndexer[T any](s Slice, src Indexer[T]) (iter.Seq[T], error) {
	positions, err := s.Positions(src.Len())
	if err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		for i := range positions {
			if !yield(src.At(i)) {
				return
			}
		}
	}, nil
}
