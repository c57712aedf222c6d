package seqslice

import (
	"strconv"
	"strings"
)

// Slice is an immutable `[start:end:step]` triple. A nil Step means the
// default forward unit stride. Slice values are stateless and safe to
// reuse across sequences of different lengths; all length-dependent
// computation happens inside Positions and the Apply functions.
type Slice struct {
	Start Index
	End   Index
	Step  *int
}

// New builds a Slice from optional signed integers, mirroring Python's
// slice(start, end, step): nil means unspecified, negative values count
// from the tail.
func New(start, end, step *int) Slice {
	return Slice{Start: AtPtr(start), End: AtPtr(end), Step: step}
}

// String renders the canonical bracketed expression form, e.g. "[1:-2:2]".
// The step segment is omitted when the step is unspecified.
func (s Slice) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(s.Start.String())
	sb.WriteByte(':')
	sb.WriteString(s.End.String())
	if s.Step != nil {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(*s.Step))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Indexer is a finite sequence addressable by position in O(1). It is the
// minimal surface slicing needs, so containers that are not Go slices can
// still be sliced.
type Indexer[T any] interface {
	// Len returns the length of the sequence.
	Len() int

	// At returns the element at the given position. Apply never calls it
	// with a position outside [0, Len()).
	At(i int) T
}
