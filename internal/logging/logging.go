// Package logging builds the zap loggers used by the command line tools.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	// Name is the logger name printed after the level.
	Name string

	// Verbose enables debug level.
	Verbose bool

	// NoColor disables colors regardless of the terminal.
	NoColor bool
}

// New returns a logger writing one line per entry to w: the level, the
// logger name, the message and then the fields in braces. Timestamps and
// callers are omitted.
func New(w io.Writer, opts Options) *zap.Logger {
	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	enc := newCLIEncoder(zap.NewDevelopmentEncoderConfig(), !opts.NoColor)
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), level)

	logger := zap.New(core)
	if opts.Name != "" {
		logger = logger.Named(opts.Name)
	}

	return logger
}
