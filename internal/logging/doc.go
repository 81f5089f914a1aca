// Package logging assembles structured slog loggers and formatting helpers used
// across bisub.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so HTTP handlers can tag log
// lines with request IDs and operation names. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// Logs go to stderr by default so that merged subtitle text written to stdout
// stays clean.
package logging
