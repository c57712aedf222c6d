package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		args         []string
		expectExit   bool
		expectErr    bool
		expectedExpr string
		expectedPath string
	}{
		{
			name:         "expr flag",
			args:         []string{"-expr", "[1:-2:2]"},
			expectedExpr: "[1:-2:2]",
		},
		{
			name:         "expr shorthand",
			args:         []string{"-e", "::-1"},
			expectedExpr: "::-1",
		},
		{
			name:         "grid flag",
			args:         []string{"-grid", "grid.hcl"},
			expectedPath: "grid.hcl",
		},
		{
			name:         "grid shorthand",
			args:         []string{"-g", "grids/"},
			expectedPath: "grids/",
		},
		{
			name:         "positional grid path",
			args:         []string{"grid.hcl"},
			expectedPath: "grid.hcl",
		},
		{
			name:         "long flag wins over positional",
			args:         []string{"-grid", "a.hcl", "b.hcl"},
			expectedPath: "a.hcl",
		},
		{
			name:       "no input prints usage and exits",
			args:       []string{},
			expectExit: true,
		},
		{
			name:       "help exits cleanly",
			args:       []string{"-h"},
			expectExit: true,
		},
		{
			name:      "expr and grid together",
			args:      []string{"-expr", ":", "-grid", "grid.hcl"},
			expectErr: true,
		},
		{
			name:      "unknown flag",
			args:      []string{"--bogus"},
			expectErr: true,
		},
		{
			name:      "invalid log format",
			args:      []string{"-log-format", "xml", "grid.hcl"},
			expectErr: true,
		},
		{
			name:      "invalid log level",
			args:      []string{"-log-level", "verbose", "grid.hcl"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)

			if tc.expectErr {
				require.Error(t, err)
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, 2, exitErr.Code)
				return
			}

			require.NoError(t, err)
			if tc.expectExit {
				assert.True(t, shouldExit)
				assert.Nil(t, cfg)
				return
			}

			require.NotNil(t, cfg)
			assert.Equal(t, tc.expectedExpr, cfg.Expr)
			assert.Equal(t, tc.expectedPath, cfg.GridPath)
		})
	}
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg, shouldExit, err := Parse([]string{"-e", ":"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}
