package svsyntax

import "github.com/sirupsen/logrus"

// Logger is the narrow logging surface the engine needs; satisfied by
// *logrus.Logger and *logrus.Entry. A 700-production grammar needs
// Debug/Trace separation — an all-or-nothing debug gate drowns the
// interesting events.
type Logger interface {
	Debugf(format string, args ...any)
	Tracef(format string, args ...any)
	Warnf(format string, args ...any)
}

// NewLogger returns the package default logger: logrus at Warn level,
// overridable by callers. The engine logs a warning when the recursion
// limit is exceeded and, at Trace level, each left-recursive grow.
func NewLogger() Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l.WithField("component", "svsyntax")
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Tracef(string, ...any) {}
func (noopLogger) Warnf(string, ...any)  {}

// NoopLogger discards everything; used when callers don't want logging
// overhead (e.g. production CI parsing of thousands of files).
func NoopLogger() Logger { return noopLogger{} }
