// ABOUTME: Structured logger setup for all corpusprep commands
// ABOUTME: Wraps charmbracelet/log with level parsing and text/json output
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// New builds a logger writing to w. format is "text" or "json"; anything
// else falls back to text.
func New(w io.Writer, level log.Level, format string) *log.Logger {
	opts := log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "corpusprep",
	}
	if strings.EqualFold(format, "json") {
		opts.Formatter = log.JSONFormatter
	}
	return log.NewWithOptions(w, opts)
}

// Init creates the process logger on stderr and installs it as the
// package-level default. stdout stays reserved for command output.
func Init(level, format string) *log.Logger {
	logger := New(os.Stderr, ParseLevel(level), format)
	log.SetDefault(logger)
	return logger
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to a level.
// Unknown strings default to info.
func ParseLevel(s string) log.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
