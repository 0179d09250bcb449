package core

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger returns the logger used across hdrloc. Debug output goes to
// stderr; without debug everything is discarded.
func NewLogger(debug bool) *log.Logger {
	if !debug {
		return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  log.DebugLevel,
		Prefix: "hdrloc",
	})
}
