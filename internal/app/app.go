package app

import (
	"io"
	"log/slog"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle. Results go to outW; logs go to logW so that JSON output
// stays machine-readable.
type App struct {
	inR    io.Reader
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger.
func NewApp(inR io.Reader, outW, logW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		inR:    inR,
		outW:   outW,
		logger: logger,
		config: config,
	}
}
