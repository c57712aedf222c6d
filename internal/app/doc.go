// Package app encapsulates the application's dependencies, configuration,
// and lifecycle: it builds the logger, reads the process input, runs the
// requested slice operations, and writes JSON results.
package app
