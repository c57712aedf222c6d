package sliceexpr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vk/slicegridgo/seqslice"
)

// exprRegex matches the bare `start:end:step` form: optional signed
// integers separated by one or two colons.
var exprRegex = regexp.MustCompile(`^(-?\d+)?:(-?\d+)?(?::(-?\d+)?)?$`)

// Parse creates a Slice by parsing its textual expression representation.
//
// Note that `-0` parses as head-relative zero, matching Python: a signed
// literal cannot address "zero from the end". Callers that need that
// position construct seqslice.Tail(0) directly.
func Parse(raw string) (seqslice.Slice, error) {
	if raw == "" {
		return seqslice.Slice{}, fmt.Errorf("slice expression cannot be empty")
	}

	expr := raw
	hasOpen := strings.HasPrefix(expr, "[")
	hasClose := strings.HasSuffix(expr, "]")
	if hasOpen != hasClose {
		return seqslice.Slice{}, fmt.Errorf("unbalanced brackets in slice expression %q", raw)
	}
	if hasOpen {
		expr = expr[1 : len(expr)-1]
	}

	matches := exprRegex.FindStringSubmatch(expr)
	if matches == nil {
		return seqslice.Slice{}, fmt.Errorf("invalid slice expression %q", raw)
	}

	var fields [3]*int
	for i := range fields {
		field, err := parseField(matches[i+1])
		if err != nil {
			// Unreachable due to the regex `-?\d+`
			return seqslice.Slice{}, fmt.Errorf("internal error parsing slice expression %q: %w", raw, err)
		}
		fields[i] = field
	}

	return seqslice.New(fields[0], fields[1], fields[2]), nil
}

// parseField converts one captured group into an optional integer. An
// empty capture means the field was omitted.
func parseField(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
