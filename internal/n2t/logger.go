package n2t

import (
	"io"
	"log/slog"
	"os"
)

// level is shared by every handler created through newLogger so that
// SetVerbose can raise or lower it after startup
var level = new(slog.LevelVar)

// logger carries diagnostics only; report rows and command results are
// printed through the Print helpers in output.go
var logger = newLogger(os.Stderr)

func init() {
	level.Set(slog.LevelWarn)
	if os.Getenv(DebugEnvVar) != "" {
		level.Set(slog.LevelDebug)
	}
}

// newLogger creates a text logger writing to w at the package level.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetVerbose enables debug logging
func SetVerbose(verbose bool) {
	if verbose {
		level.Set(slog.LevelDebug)
	} else if os.Getenv(DebugEnvVar) == "" {
		level.Set(slog.LevelWarn)
	}
}

// IsVerbose returns true if debug logging is enabled
func IsVerbose() bool {
	return level.Level() <= slog.LevelDebug
}

// SetLogger replaces the diagnostic logger, returning the previous one
func SetLogger(l *slog.Logger) *slog.Logger {
	prev := logger
	logger = l
	return prev
}
