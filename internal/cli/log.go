// Package cli implements the lsys command-line interface.
//
// This package provides commands for deriving strings from the built-in
// Lindenmayer systems, browsing generations interactively, serving
// derivations over HTTP, and managing the derivation cache. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - derive: Run a system for N iterations and print the generations
//   - systems: List the built-in systems and their engines
//   - play: Step through a derivation generation by generation
//   - serve: Expose derivations over a small HTTP API
//   - cache: Manage the derivation cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/verdantlab/lsys/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w with millisecond timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// timer measures an operation and logs its elapsed time on finish.
type timer struct {
	logger *log.Logger
	start  time.Time
}

// startTimer begins timing an operation.
func startTimer(l *log.Logger) *timer {
	return &timer{logger: l, start: time.Now()}
}

// finish logs msg with the elapsed time, rounded to a millisecond.
func (t *timer) finish(msg string) {
	t.logger.Infof("%s (%s)", msg, time.Since(t.start).Round(time.Millisecond))
}

// loggerKey is the context key carrying the command's logger.
type loggerKey struct{}

// withLogger attaches l to the context.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the attached logger, or log.Default() when the
// context carries none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
