package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"stratship/internal/history"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

// colorizeStatus wraps a rendered label in an ANSI color matching the run
// status. Pass colorize=false for non-terminal writers.
func colorizeStatus(label string, status history.Status, colorize bool) string {
	if !colorize {
		return label
	}
	switch status {
	case history.StatusCompleted:
		return ansiGreen + label + ansiReset
	case history.StatusFailed:
		return ansiRed + label + ansiReset
	default:
		return ansiYellow + label + ansiReset
	}
}

func colorizeCheck(label string, passed bool, colorize bool) string {
	if !colorize {
		return label
	}
	if passed {
		return ansiGreen + label + ansiReset
	}
	return ansiRed + label + ansiReset
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
