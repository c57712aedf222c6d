package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Expr     string // slice expression; reads the input from stdin
	GridPath string // .hcl grid file or directory

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config. Exactly one of Expr and GridPath must be
// set; the two modes are mutually exclusive.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Expr == "" && cfg.GridPath == "" {
		return nil, errors.New("either a slice expression or a grid path is required")
	}
	if cfg.Expr != "" && cfg.GridPath != "" {
		return nil, errors.New("a slice expression and a grid path are mutually exclusive")
	}

	return &cfg, nil
}
