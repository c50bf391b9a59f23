// Package logging assembles the structured slog loggers used across
// stratship.
//
// It centralizes level and output plumbing (stdout plus a log file under the
// configured log directory), and exposes context-aware helpers so pipeline
// code automatically tags log lines with release run IDs and step names. A
// no-op logger is provided for tests and wiring code that cannot fail.
package logging
