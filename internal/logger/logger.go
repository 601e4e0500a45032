// Package logger builds charmbracelet/log loggers for the command line tool.
// Loggers write to stderr so that stdout stays free for query results.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a logger that follows the global log level.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a logger with an explicit level and timestamp setting.
func NewWithConfig(prefix string, level log.Level, showTimestamp bool) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportTimestamp: showTimestamp,
		Formatter:       log.TextFormatter,
	})
}
