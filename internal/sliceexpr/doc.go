/*
Package sliceexpr parses Python slice-expression syntax into seqslice
values.

The format is `start:end:step` with every field optional, one or two
colons, and optional surrounding brackets, e.g. `:`, `1:-2`, `[::2]`,
`[-3::-1]`.

This package enforces the expression grammar and centralizes all parsing
logic for the textual slice form.
*/
package sliceexpr
