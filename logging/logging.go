package logging

import (
	"context"
)

// ANSI color codes for terminal output
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorYellow = "\033[33m"
)

// Level represents log levels
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Fields represents structured logging fields
type Fields map[string]any

// Logger defines the interface that the library expects for logging.
// Applications embedding the library can install their own implementation
// via SetGlobalLogger; the pipeline and reconciler only ever log through
// this interface.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)

	// WithFields returns a logger with preset fields
	WithFields(fields Fields) Logger

	// WithContext returns a logger that can extract fields from context
	WithContext(ctx context.Context) Logger

	// SetLevel sets the minimum log level
	SetLevel(level Level)
}

var globalLogger Logger = NewDefaultLogger()

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger Logger) {
	if logger == nil {
		globalLogger = &NoOpLogger{}
	} else {
		globalLogger = logger
	}
}

// GetGlobalLogger returns the current global logger
func GetGlobalLogger() Logger {
	return globalLogger
}

// Package-level logging functions that use the global logger
func Debug(msg string, fields ...Fields) {
	globalLogger.Debug(msg, fields...)
}

func Info(msg string, fields ...Fields) {
	globalLogger.Info(msg, fields...)
}

func Warn(msg string, fields ...Fields) {
	globalLogger.Warn(msg, fields...)
}

func Error(err error, msg string, fields ...Fields) {
	globalLogger.Error(err, msg, fields...)
}

func WithFields(fields Fields) Logger {
	return globalLogger.WithFields(fields)
}

func WithContext(ctx context.Context) Logger {
	return globalLogger.WithContext(ctx)
}

func SetLevel(level Level) {
	globalLogger.SetLevel(level)
}
