// Package logging adapts github.com/baditaflorin/l to the small structured
// logger interface used by the conversion commands.
package logging

import (
	"io"
	"os"

	"github.com/baditaflorin/l"
)

// Logger is a leveled logger taking alternating key/value pairs.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Close() error
}

// Options controls the logger created by New.
type Options struct {
	// Output defaults to os.Stderr so CSV or JSON written to stdout stays clean.
	Output io.Writer
	// JSON switches to one JSON object per line.
	JSON bool
	// Verbose enables Debug messages.
	Verbose bool
}

// StdLogger forwards to an l.Logger.
type StdLogger struct {
	logger  l.Logger
	verbose bool
}

// New creates a logger from opts.
func New(opts Options) (Logger, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      out,
		JsonFormat:  opts.JSON,
		AsyncWrite:  false,
		BufferSize:  64 * 1024,
		MaxFileSize: 10 * 1024 * 1024,
		MaxBackups:  5,
		AddSource:   opts.Verbose,
		Metrics:     false,
	})
	if err != nil {
		return nil, err
	}

	return &StdLogger{logger: logger, verbose: opts.Verbose}, nil
}

// Debug logs a debug message when verbose output is on.
func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	if !s.verbose {
		return
	}
	s.logger.Debug(msg, keysAndValues...)
}

// Info logs an info message.
func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	s.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning message.
func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message.
func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.logger.Error(msg, keysAndValues...)
}

// Close flushes and closes the underlying logger.
func (s *StdLogger) Close() error {
	return s.logger.Close()
}

type nopLogger struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Close() error                 { return nil }
