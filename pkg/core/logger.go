package core

import "fmt"

// Logger interface for kernel logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// DefaultLogger implements Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() Logger {
	return &DefaultLogger{}
}

// DiscardLogger drops everything written to it
type DiscardLogger struct{}

func (dl *DiscardLogger) Printf(format string, args ...interface{}) {}

// NewDiscardLogger creates a logger that discards all output
func NewDiscardLogger() Logger {
	return &DiscardLogger{}
}
