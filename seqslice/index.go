package seqslice

import "strconv"

// indexKind discriminates the three forms an Index can take.
type indexKind uint8

const (
	kindDefault indexKind = iota
	kindHead
	kindTail
)

// Index is a logical position relative to a sequence whose length is not
// yet known. It is a closed variant: a position counted from the front
// (head-relative), a position counted from the back (tail-relative), or no
// position at all. The zero value is the unspecified index, which resolves
// contextually inside Slice application depending on step direction.
type Index struct {
	kind indexKind
	n    int
}

// Head returns the index n positions from the front of the sequence,
// 0-based. Head(0) is the first element regardless of sequence length.
func Head(n int) Index {
	return Index{kind: kindHead, n: n}
}

// Tail returns the index n positions from the back of the sequence;
// against a sequence of length L it resolves to L-n. Tail(0) is the
// position one past the last element, a form signed integers cannot
// express (zero has no sign), which is why this constructor exists.
func Tail(n int) Index {
	return Index{kind: kindTail, n: n}
}

// At converts a signed integer using Python's index convention:
// non-negative values count from the head, negative values count from the
// tail using their magnitude.
func At(n int) Index {
	if n < 0 {
		return Tail(-n)
	}
	return Head(n)
}

// AtPtr converts an optional signed integer: nil means unspecified,
// anything else goes through At. It mirrors Python's slice(None, ...)
// call sites.
func AtPtr(n *int) Index {
	if n == nil {
		return Index{}
	}
	return At(*n)
}

// IsDefault reports whether the index is the unspecified form.
func (ix Index) IsDefault() bool {
	return ix.kind == kindDefault
}

// resolve maps the index to a signed offset against the given length.
// The offset is not yet clamped and may fall outside [0, length].
// fallback is the direction-dependent offset used for the unspecified form.
func (ix Index) resolve(length, fallback int) int {
	switch ix.kind {
	case kindHead:
		return ix.n
	case kindTail:
		return length - ix.n
	default:
		return fallback
	}
}

// String renders the index the way it would appear inside a slice
// expression: head-relative as the plain number, tail-relative with a
// leading minus, unspecified as the empty string. Tail(0) renders as "-0",
// which is informative in logs but not re-parseable to the same index.
func (ix Index) String() string {
	switch ix.kind {
	case kindHead:
		return strconv.Itoa(ix.n)
	case kindTail:
		return "-" + strconv.Itoa(ix.n)
	default:
		return ""
	}
}
