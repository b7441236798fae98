// Package logging builds the step logger the wizard uses to report each
// filesystem change and external command it performs.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w. Info level shows the mkdir/write/run
// steps; verbose adds debug detail such as rewritten conf.py lines.
func New(w io.Writer, verbose bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Level:           log.InfoLevel,
	})
	if verbose {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// Discard returns a logger that drops everything. Used by tests and by
// callers that do not want step output.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
