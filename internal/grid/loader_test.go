package grid

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/slicegridgo/seqslice"
)

// writeGrid writes an HCL fixture into a temp dir and returns its path.
func writeGrid(t *testing.T, hclSrc string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(hclSrc), 0600))
	return path
}

func TestLoad_NumericBounds(t *testing.T) {
	t.Parallel()

	path := writeGrid(t, `
slice "window" {
  start = 1
  end   = -1
  step  = 2
  input = [10, 20, 30, 40, 50]
}
`)

	g, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, g.Ops, 1)

	op := g.Ops[0]
	assert.Equal(t, "window", op.Name)
	assert.Equal(t, seqslice.Head(1), op.Slice.Start)
	assert.Equal(t, seqslice.Tail(1), op.Slice.End)
	require.NotNil(t, op.Slice.Step)
	assert.Equal(t, 2, *op.Slice.Step)
	require.False(t, op.Input.IsNull())
	assert.Equal(t, 5, op.Input.LengthInt())
}

func TestLoad_TailBoundsAndStringInput(t *testing.T) {
	t.Parallel()

	path := writeGrid(t, `
slice "suffix" {
  start_tail = 3
  end_tail   = 0
  input      = "abcdef"
}
`)

	g, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, g.Ops, 1)

	op := g.Ops[0]
	assert.Equal(t, seqslice.Tail(3), op.Slice.Start)
	assert.Equal(t, seqslice.Tail(0), op.Slice.End)
	assert.Nil(t, op.Slice.Step)
	assert.Equal(t, cty.String, op.Input.Type())
}

func TestLoad_ExprForm(t *testing.T) {
	t.Parallel()

	path := writeGrid(t, `
slice "rev" {
  expr  = "[::-1]"
  input = ["a", "b", "c"]
}
`)

	g, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, g.Ops, 1)

	op := g.Ops[0]
	assert.True(t, op.Slice.Start.IsDefault())
	assert.True(t, op.Slice.End.IsDefault())
	require.NotNil(t, op.Slice.Step)
	assert.Equal(t, -1, *op.Slice.Step)
}

func TestLoad_OpWithoutInputReadsProcessInput(t *testing.T) {
	t.Parallel()

	path := writeGrid(t, `
slice "head" {
  end = 3
}
`)

	g, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, g.Ops, 1)
	assert.False(t, g.Ops[0].HasInput())
}

func TestLoad_DirectoryPreservesOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte(`
slice "first" { end = 1 }
slice "second" { end = 2 }
`), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.hcl"), []byte(`
slice "third" { end = 3 }
`), 0600))

	g, err := Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, g.Ops, 3)
	assert.Equal(t, "first", g.Ops[0].Name)
	assert.Equal(t, "second", g.Ops[1].Name)
	assert.Equal(t, "third", g.Ops[2].Name)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		hclSrc   string
		contains string
	}{
		{
			name:     "zero step is rejected at load time",
			hclSrc:   `slice "bad" { step = 0 }`,
			contains: "step must not be zero",
		},
		{
			name:     "zero step inside expr",
			hclSrc:   `slice "bad" { expr = "[::0]" }`,
			contains: "step must not be zero",
		},
		{
			name: "expr conflicts with numeric bounds",
			hclSrc: `
slice "bad" {
  expr  = ":"
  start = 1
}
`,
			contains: "Conflicting slice definition",
		},
		{
			name: "start conflicts with start_tail",
			hclSrc: `
slice "bad" {
  start      = 1
  start_tail = 1
}
`,
			contains: "Conflicting start bound",
		},
		{
			name:     "negative start_tail",
			hclSrc:   `slice "bad" { start_tail = -1 }`,
			contains: "start_tail must be non-negative",
		},
		{
			name:     "malformed expr",
			hclSrc:   `slice "bad" { expr = "nope" }`,
			contains: "Invalid slice expression",
		},
		{
			name: "duplicate names",
			hclSrc: `
slice "dup" { end = 1 }
slice "dup" { end = 2 }
`,
			contains: "Duplicate slice name",
		},
		{
			name:     "unknown attribute",
			hclSrc:   `slice "bad" { stop = 3 }`,
			contains: "",
		},
		{
			name:     "unknown block type",
			hclSrc:   `chunk "bad" { }`,
			contains: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeGrid(t, tc.hclSrc)

			_, err := Load(context.Background(), path)
			require.Error(t, err)
			if tc.contains != "" {
				assert.Contains(t, err.Error(), tc.contains)
			}
		})
	}
}

func TestLoad_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
}

func TestLoad_EmptyDirectory(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .hcl grid files found")
}
