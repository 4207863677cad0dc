// Package logging builds the leveled loggers used by the command line tools.
package logging

import (
	"io"
	"os"

	"github.com/pion/logging"
)

// NewFactory returns a logger factory writing to w (stderr when nil).
// Loggers log at info level, or debug level when verbose is set.
func NewFactory(w io.Writer, verbose bool) *logging.DefaultLoggerFactory {
	if w == nil {
		w = os.Stderr
	}

	factory := logging.NewDefaultLoggerFactory()
	factory.Writer = w
	factory.DefaultLogLevel = logging.LogLevelInfo

	if verbose {
		factory.DefaultLogLevel = logging.LogLevelDebug
	}

	return factory
}

// New is a shorthand for NewFactory(w, verbose).NewLogger(scope).
func New(w io.Writer, scope string, verbose bool) logging.LeveledLogger {
	return NewFactory(w, verbose).NewLogger(scope)
}
