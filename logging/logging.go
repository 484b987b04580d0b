// Package logging provides the zap-backed loggers used across the motion control stack.
package logging

// NewLogger returns a logger that writes Info+ entries to stdout in UTC.
func NewLogger(name string) Logger {
	return &impl{name: name, level: NewAtomicLevelAt(INFO), inUTC: true, appenders: []Appender{NewStdoutAppender()}}
}

// NewDebugLogger returns a logger that writes Debug+ entries to stdout in UTC.
func NewDebugLogger(name string) Logger {
	l := NewLogger(name)
	l.SetLevel(DEBUG)
	return l
}
