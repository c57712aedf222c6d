package app

import (
	"context"
	"fmt"
	"io"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/vk/slicegridgo/internal/ctxlog"
	"github.com/vk/slicegridgo/internal/ctyslice"
	"github.com/vk/slicegridgo/internal/grid"
	"github.com/vk/slicegridgo/internal/sliceexpr"
)

// Run executes the main application logic based on the configured mode.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	var err error
	if a.config.Expr != "" {
		err = a.runExpr(ctx)
	} else {
		err = a.runGrid(ctx)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// runExpr applies a single slice expression to the JSON value on stdin.
func (a *App) runExpr(ctx context.Context) error {
	s, err := sliceexpr.Parse(a.config.Expr)
	if err != nil {
		return fmt.Errorf("invalid slice expression: %w", err)
	}
	a.logger.Debug("Slice expression parsed.", "slice", s.String())

	input, err := a.readInput()
	if err != nil {
		return err
	}

	result, err := ctyslice.Apply(s, input)
	if err != nil {
		return fmt.Errorf("applying %s: %w", s, err)
	}

	return a.writeValue(result)
}

// runGrid loads the grid and runs every operation in declaration order.
// One failing operation is reported and does not stop the rest; the run
// as a whole still fails.
func (a *App) runGrid(ctx context.Context) error {
	g, err := grid.Load(ctx, a.config.GridPath)
	if err != nil {
		return fmt.Errorf("failed to load grid: %w", err)
	}
	a.logger.Info("Grid loaded.", "ops", len(g.Ops))

	// The process input is shared by every op that declares no input of
	// its own, and read at most once.
	var processInput cty.Value
	inputLoaded := false

	failed := 0
	for _, op := range g.Ops {
		input := op.Input
		if !op.HasInput() {
			if !inputLoaded {
				processInput, err = a.readInput()
				if err != nil {
					return err
				}
				inputLoaded = true
			}
			input = processInput
		}

		result, err := ctyslice.Apply(op.Slice, input)
		if err != nil {
			a.logger.Error("Slice operation failed.", "name", op.Name, "slice", op.Slice.String(), "error", err)
			failed++
			continue
		}
		a.logger.Debug("Slice operation finished.", "name", op.Name, "slice", op.Slice.String())

		line := cty.ObjectVal(map[string]cty.Value{
			"name":   cty.StringVal(op.Name),
			"result": result,
		})
		if err := a.writeValue(line); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d slice operations failed", failed, len(g.Ops))
	}
	return nil
}

// readInput decodes the process input as JSON into a cty value.
func (a *App) readInput() (cty.Value, error) {
	data, err := io.ReadAll(a.inR)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to read input: %w", err)
	}

	ty, err := ctyjson.ImpliedType(data)
	if err != nil {
		return cty.NilVal, fmt.Errorf("input is not valid JSON: %w", err)
	}
	v, err := ctyjson.Unmarshal(data, ty)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to decode input: %w", err)
	}
	return v, nil
}

// writeValue marshals a cty value as one JSON line on the output stream.
func (a *App) writeValue(v cty.Value) error {
	out, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	out = append(out, '\n')
	if _, err := a.outW.Write(out); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
