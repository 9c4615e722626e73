// Package logger configures structured logging for the deepdiff CLI.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// configMutex serializes calls to Configure, which modifies global state
// through slog.SetDefault.
var configMutex sync.Mutex //nolint:gochecknoglobals

// Options is used to configure logging.
type Options struct {
	JSON     bool
	MinLevel slog.Level
	Output   io.Writer
}

// Configure sets up the default slog logger according to opts and returns
// it. Output defaults to stderr so log lines never mix with the comparison
// report on stdout. This function is thread-safe but modifies global state,
// so concurrent calls are serialized.
func Configure(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	var handler slog.Handler

	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	} else {
		handler = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	}

	log := slog.New(handler)
	slog.SetDefault(log)

	return log
}
