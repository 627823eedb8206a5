// Package cli implements the pixelgrid-mcp command-line interface.
//
// # Commands
//
//   - serve: Run the MCP server on stdin and stdout
//   - apply: Run a TOML recipe and write the resulting image
//   - ops: List the operations a recipe step may name
//   - version: Print build information
//
// # Logging
//
// Logs go to stderr so they never mix with the MCP stream on stdout. The
// level is info by default, debug with --verbose (-v), or whatever
// PIXELGRID_LOG_LEVEL names. Loggers are passed through context.Context.
package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// envLogLevel overrides the default log level when --verbose is not given.
const envLogLevel = "PIXELGRID_LOG_LEVEL"

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// logLevel picks the level for this run. --verbose wins over the
// environment; an unparsable environment value is ignored.
func logLevel(verbose bool) log.Level {
	if verbose {
		return log.DebugLevel
	}
	if s := os.Getenv(envLogLevel); s != "" {
		if l, err := log.ParseLevel(s); err == nil {
			return l
		}
	}
	return log.InfoLevel
}

// progress logs completion of an operation with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Wrote out.png (12ms)".
func (p *progress) done(msg string, keyvals ...interface{}) {
	keyvals = append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
