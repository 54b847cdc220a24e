// Package logger is a small leveled wrapper around the standard log
// package. Everything goes to stderr so that stdout carries only the
// pricing report.
//
// Levels, in increasing verbosity:
//
//	Error < Info < Debug < Trace
//
// Example:
//
//	logger.SetVerbosity(int(logger.Debug))
//	logger.Debugf("d1=%f d2=%f", d1, d2)
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level is a logging verbosity level. Higher is more verbose.
type Level int

const (
	Error Level = iota // Error logs failures only.
	Info               // Info logs one line per priced scenario.
	Debug              // Debug logs intermediate values (d1, d2, parity residual).
	Trace              // Trace logs every input as it is read.
)

var levelNames = map[Level]string{
	Error: "error",
	Info:  "info",
	Debug: "debug",
	Trace: "trace",
}

func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// current holds the active verbosity; messages with level <= current are written.
var current = Info

var std = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

// SetVerbosity sets the global verbosity, clamped to [Error, Trace].
func SetVerbosity(v int) {
	switch {
	case v < int(Error):
		v = int(Error)
	case v > int(Trace):
		v = int(Trace)
	}
	current = Level(v)
}

// Verbosity returns the active level.
func Verbosity() Level { return current }

// ParseLevel maps "error", "info", "debug" and "trace" to a Level.
func ParseLevel(s string) (Level, error) {
	for l, name := range levelNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return l, nil
		}
	}
	return Info, fmt.Errorf("unknown log level %q", s)
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) { std.SetOutput(w) }

func logf(l Level, prefix, format string, args ...any) {
	if current >= l {
		// depth 3: Output <- logf <- Errorf/Infof/... <- caller
		_ = std.Output(3, prefix+fmt.Sprintf(format, args...))
	}
}

// Errorf logs a failure that ends the run.
func Errorf(format string, args ...any) {
	logf(Error, "[ERROR] ", format, args...)
}

// Infof logs progress.
func Infof(format string, args ...any) {
	logf(Info, "[INFO]  ", format, args...)
}

// Debugf logs diagnostic values.
func Debugf(format string, args ...any) {
	logf(Debug, "[DEBUG] ", format, args...)
}

// Tracef logs every input as it is read.
func Tracef(format string, args ...any) {
	logf(Trace, "[TRACE] ", format, args...)
}
