// Package logging sets up slog for the resource-mapper CLI.
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the CLI logger.
type Options struct {
	// Level is the minimum level written.
	Level slog.Level
	// File redirects logs to a rotated file instead of stderr.
	File string
	// NoColor disables ANSI colors on the console.
	NoColor bool
}

// New returns a tint logger writing to w.
func New(w io.Writer, opts Options) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      opts.Level,
		TimeFormat: time.RFC3339,
		NoColor:    opts.NoColor,
	}))
}

// Setup installs the CLI logger as the slog default and redirects the
// standard log package to it. The returned closer flushes the log file,
// if any.
func Setup(opts Options) (*slog.Logger, io.Closer) {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)

	if opts.File != "" {
		lumber := &lumberjack.Logger{
			Filename: opts.File,
			MaxSize:  10,
			Compress: true,
		}
		w, closer = lumber, lumber
		opts.NoColor = true
	}

	logger := New(w, opts)
	slog.SetDefault(logger)

	// overwrite standard log so it's always redirected to slog, in case some dep is using it
	lw := &slogWriter{logger: logger}
	log.SetFlags(0)
	log.SetOutput(lw)

	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
