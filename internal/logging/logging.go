// Package logging configures the process logger.
package logging

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// DebugEnabled returns true if debug mode is enabled via TODO_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("TODO_DEBUG") != ""
}

// New creates a logger writing text records to w.
// Debug level is used when verbose is set or TODO_DEBUG is present.
func New(w io.Writer, verbose bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{
		DisableTimestamp: !verbose,
	})
	logger.SetLevel(log.InfoLevel)
	if verbose || DebugEnabled() {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Discard returns a logger that drops every record.
func Discard() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}
