/*
Package seqslice implements Python-style slicing over arbitrary ordered
sequences.

A [Slice] is a reusable `[start:end:step]` triple whose bounds are [Index]
values: positions counted from the head of a sequence, from its tail, or
left unspecified. The triple carries no sequence length; resolution against
a concrete length happens on every application, so the same Slice value can
be applied to sequences of any length.

Applying a slice yields a lazy, finite iter.Seq that produces exactly the
elements Python's `seq[start:end:step]` would produce, in the same order.
Out-of-range bounds are silently clamped, never rejected; the only invalid
input in the whole contract is a step of zero, reported as [ErrZeroStep]
before any element is produced.
*/
package seqslice
