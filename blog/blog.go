// Package blog is the user-facing logging surface for programs built on
// breeze: a thin, opinionated wrapper around charmbracelet/log meant for
// a model's own diagnostic output, as distinct from the runtime's
// internal debug logger (breeze.WithLogger).
//
// Because a running program owns the terminal, a model must never log to
// stdout or stderr directly — this package exists to make logging to a
// file (or any other io.Writer) the obvious, easy path.
package blog

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Level mirrors charmbracelet/log's Level, so callers of this package
// never need to import it directly.
type Level = log.Level

const (
	DebugLevel = log.DebugLevel
	InfoLevel  = log.InfoLevel
	WarnLevel  = log.WarnLevel
	ErrorLevel = log.ErrorLevel
	FatalLevel = log.FatalLevel
)

// Format selects how log lines are rendered.
type Format = log.Formatter

const (
	TextFormat   = log.TextFormatter
	JSONFormat   = log.JSONFormatter
	LogfmtFormat = log.LogfmtFormatter
)

// Logger is a structured logger bound to a single output, with a set of
// default key/value fields attached via With.
type Logger struct {
	l *log.Logger
}

// Options configures a new Logger.
type Options struct {
	Prefix          string
	Level           Level
	Format          Format
	ReportTimestamp bool
	ReportCaller    bool
	TimeFormat      string
}

// New builds a Logger writing to w.
func New(w io.Writer, opts Options) *Logger {
	if opts.TimeFormat == "" {
		opts.TimeFormat = "2006-01-02 15:04:05"
	}
	l := log.NewWithOptions(w, log.Options{
		Prefix:          opts.Prefix,
		Level:           opts.Level,
		Formatter:       opts.Format,
		ReportTimestamp: opts.ReportTimestamp,
		ReportCaller:    opts.ReportCaller,
		TimeFormat:      opts.TimeFormat,
	})
	return &Logger{l: l}
}

// Open builds a Logger appending to the named file, returning a close
// function the caller should defer.
func Open(path string, opts Options) (*Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("blog: opening %s: %w", path, err)
	}
	return New(f, opts), f.Close, nil
}

// With returns a child Logger that prepends the given key/value pairs
// to every message it logs, without mutating the receiver.
func (lg *Logger) With(keyvals ...any) *Logger {
	return &Logger{l: lg.l.With(keyvals...)}
}

func (lg *Logger) Debug(msg any, keyvals ...any) { lg.l.Debug(msg, keyvals...) }
func (lg *Logger) Info(msg any, keyvals ...any)  { lg.l.Info(msg, keyvals...) }
func (lg *Logger) Warn(msg any, keyvals ...any)  { lg.l.Warn(msg, keyvals...) }
func (lg *Logger) Error(msg any, keyvals ...any) { lg.l.Error(msg, keyvals...) }

// SetLevel changes the minimum level this Logger emits.
func (lg *Logger) SetLevel(level Level) { lg.l.SetLevel(level) }

// Standard returns the Logger's output.
func (lg *Logger) Standard() *log.Logger { return lg.l }
