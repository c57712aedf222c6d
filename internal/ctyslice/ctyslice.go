// Package ctyslice applies seqslice slicing to cty values, so sequences
// that arrive from HCL configuration or JSON keep their element types
// through a slice operation.
package ctyslice

import (
	"fmt"
	"slices"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/slicegridgo/seqslice"
)

// Apply slices a cty value. Lists and tuples are sliced element-wise;
// strings are sliced by rune, as Python slices text. Lists stay lists of
// the same element type, tuples become tuples of the surviving element
// types. Any other type is an error, as is a null or unknown value.
func Apply(s seqslice.Slice, v cty.Value) (cty.Value, error) {
	if v.IsNull() {
		return cty.NilVal, fmt.Errorf("cannot slice a null value")
	}
	if !v.IsKnown() {
		return cty.NilVal, fmt.Errorf("cannot slice an unknown value")
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return applyString(s, v)
	case ty.IsListType(), ty.IsTupleType():
		return applySequence(s, v)
	default:
		return cty.NilVal, fmt.Errorf("cannot slice a %s value; only lists, tuples, and strings are sliceable", ty.FriendlyName())
	}
}

func applyString(s seqslice.Slice, v cty.Value) (cty.Value, error) {
	seq, err := seqslice.Apply(s, []rune(v.AsString()))
	if err != nil {
		return cty.NilVal, err
	}

	var sb strings.Builder
	for r := range seq {
		sb.WriteRune(r)
	}
	return cty.StringVal(sb.String()), nil
}

func applySequence(s seqslice.Slice, v cty.Value) (cty.Value, error) {
	seq, err := seqslice.Apply(s, v.AsValueSlice())
	if err != nil {
		return cty.NilVal, err
	}
	elems := slices.Collect(seq)

	if v.Type().IsListType() {
		if len(elems) == 0 {
			return cty.ListValEmpty(v.Type().ElementType()), nil
		}
		return cty.ListVal(elems), nil
	}

	if len(elems) == 0 {
		return cty.EmptyTupleVal, nil
	}
	return cty.TupleVal(elems), nil
}
