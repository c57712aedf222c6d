package grid

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/slicegridgo/internal/ctxlog"
	"github.com/vk/slicegridgo/internal/fsutil"
	"github.com/vk/slicegridgo/internal/sliceexpr"
	"github.com/vk/slicegridgo/seqslice"
)

// Op is one named slice operation declared in a grid file.
type Op struct {
	Name  string
	Slice seqslice.Slice

	// Input is the sequence the operation applies to. NilVal means the
	// operation consumes the process-level input instead.
	Input cty.Value
}

// HasInput reports whether the operation declared its own input sequence.
func (o *Op) HasInput() bool {
	return o.Input.Type() != cty.NilType
}

// Grid is the ordered collection of operations loaded from one or more
// grid files. Order follows declaration order within a file and argument
// order across paths.
type Grid struct {
	Ops []*Op
}

// gridSchema describes the top-level blocks a grid file may contain.
var gridSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "slice", LabelNames: []string{"name"}},
	},
}

// opBody is the gohcl decoding target for the body of a slice block.
type opBody struct {
	Start     *int      `hcl:"start,optional"`
	End       *int      `hcl:"end,optional"`
	Step      *int      `hcl:"step,optional"`
	StartTail *int      `hcl:"start_tail,optional"`
	EndTail   *int      `hcl:"end_tail,optional"`
	Expr      *string   `hcl:"expr,optional"`
	Input     cty.Value `hcl:"input,optional"`
}

// Load orchestrates the grid loading process: it discovers .hcl files
// behind the given paths, parses them, and translates every slice block
// into an Op. All validation problems are reported together as
// hcl.Diagnostics wrapped in the returned error.
func Load(ctx context.Context, paths ...string) (*Grid, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Grid loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl grid files found under the given paths")
	}
	logger.Debug("Discovered grid files.", "count", len(files))

	grid := &Grid{}
	seen := make(map[string]*hcl.Range)
	parser := hclparse.NewParser()
	var diags hcl.Diagnostics

	for _, file := range files {
		hclFile, parseDiags := parser.ParseHCLFile(file)
		if parseDiags.HasErrors() {
			return nil, fmt.Errorf("failed to parse grid file %s: %w", file, parseDiags)
		}

		content, contentDiags := hclFile.Body.Content(gridSchema)
		diags = append(diags, contentDiags...)

		for _, block := range content.Blocks {
			op, opDiags := translateBlock(block)
			diags = append(diags, opDiags...)
			if op == nil {
				continue
			}

			if prev, dup := seen[op.Name]; dup {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Duplicate slice name",
					Detail:   fmt.Sprintf("A slice named %q was already declared at %s.", op.Name, prev),
					Subject:  &block.DefRange,
				})
				continue
			}
			seen[op.Name] = &block.DefRange

			grid.Ops = append(grid.Ops, op)
		}
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid grid configuration: %w", diags)
	}

	logger.Debug("Grid loading complete.", "ops", len(grid.Ops))
	return grid, nil
}

// translateBlock validates one slice block and builds its Op. It returns
// nil with diagnostics when the block is unusable.
func translateBlock(block *hcl.Block) (*Op, hcl.Diagnostics) {
	name := block.Labels[0]

	var body opBody
	diags := gohcl.DecodeBody(block.Body, nil, &body)
	if diags.HasErrors() {
		return nil, diags
	}

	errf := func(summary, detail string, args ...any) {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  summary,
			Detail:   fmt.Sprintf(detail, args...),
			Subject:  &block.DefRange,
		})
	}

	hasBounds := body.Start != nil || body.End != nil || body.Step != nil ||
		body.StartTail != nil || body.EndTail != nil

	if body.Expr != nil && hasBounds {
		errf("Conflicting slice definition",
			"Slice %q sets both expr and start/end/step attributes; use one form.", name)
	}
	if body.Start != nil && body.StartTail != nil {
		errf("Conflicting start bound", "Slice %q sets both start and start_tail.", name)
	}
	if body.End != nil && body.EndTail != nil {
		errf("Conflicting end bound", "Slice %q sets both end and end_tail.", name)
	}
	if body.StartTail != nil && *body.StartTail < 0 {
		errf("Invalid start_tail", "Slice %q: start_tail must be non-negative.", name)
	}
	if body.EndTail != nil && *body.EndTail < 0 {
		errf("Invalid end_tail", "Slice %q: end_tail must be non-negative.", name)
	}
	if body.Step != nil && *body.Step == 0 {
		errf("Invalid step", "Slice %q: step must not be zero.", name)
	}
	if diags.HasErrors() {
		return nil, diags
	}

	var s seqslice.Slice
	if body.Expr != nil {
		parsed, err := sliceexpr.Parse(*body.Expr)
		if err != nil {
			errf("Invalid slice expression", "Slice %q: %s.", name, err)
			return nil, diags
		}
		if parsed.Step != nil && *parsed.Step == 0 {
			errf("Invalid step", "Slice %q: step must not be zero.", name)
			return nil, diags
		}
		s = parsed
	} else {
		s = seqslice.Slice{
			Start: seqslice.AtPtr(body.Start),
			End:   seqslice.AtPtr(body.End),
			Step:  body.Step,
		}
		if body.StartTail != nil {
			s.Start = seqslice.Tail(*body.StartTail)
		}
		if body.EndTail != nil {
			s.End = seqslice.Tail(*body.EndTail)
		}
	}

	return &Op{Name: name, Slice: s, Input: body.Input}, diags
}
