// ============================================================================
// meinCAMPUSWERK (mCW) - Studierendenverwaltung
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating configured service loggers
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"sync"

	mcwlog "github.com/msto63/mCW/pkg/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (debug, info, warn, error)
	Level string

	// Output format
	Format string // "json", "text" or "console" (default: json)

	// Primary output (default: stdout)
	Output io.Writer

	// Additional outputs (besides the primary one)
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "json",
	}
}

var (
	defaultsMu     sync.RWMutex
	configDefaults = LoggerConfig{Level: "info", Format: "json"}
)

// Configure sets the defaults used by New. Loggers created afterwards
// inherit level, format and output from this configuration.
func Configure(cfg LoggerConfig) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	configDefaults = cfg
}

// NewLogger creates a new core logger from the given configuration
func NewLogger(cfg LoggerConfig) *mcwlog.Logger {
	level := parseLevel(cfg.Level)

	var output io.Writer = os.Stdout
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	format := mcwlog.FormatJSON
	switch cfg.Format {
	case "text":
		format = mcwlog.FormatText
	case "console":
		format = mcwlog.FormatConsole
	}

	return mcwlog.NewWithConfig(mcwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.ServiceName,
	})
}

// NewSimpleLogger creates a logger with standard configuration
func NewSimpleLogger(serviceName string) *mcwlog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// parseLevel converts a string level to mcwlog.Level
func parseLevel(level string) mcwlog.Level {
	switch level {
	case "trace":
		return mcwlog.LevelTrace
	case "debug":
		return mcwlog.LevelDebug
	case "info":
		return mcwlog.LevelInfo
	case "warn", "warning":
		return mcwlog.LevelWarn
	case "error":
		return mcwlog.LevelError
	case "fatal":
		return mcwlog.LevelFatal
	default:
		return mcwlog.LevelInfo
	}
}

// Logger wraps the core logger with key-value pair convenience methods
type Logger struct {
	*mcwlog.Logger
	name string
}

// New creates a new logger for the named component using the
// configured defaults.
func New(name string) *Logger {
	defaultsMu.RLock()
	cfg := configDefaults
	defaultsMu.RUnlock()

	cfg.ServiceName = name
	return &Logger{
		Logger: NewLogger(cfg),
		name:   name,
	}
}

// NewWithConfig creates a wrapped logger from an explicit configuration
func NewWithConfig(cfg LoggerConfig) *Logger {
	return &Logger{
		Logger: NewLogger(cfg),
		name:   cfg.ServiceName,
	}
}

// WithLevel returns a new logger with the specified level
func (l *Logger) WithLevel(level Level) *Logger {
	mcwLevel := mcwlog.LevelInfo
	switch level {
	case LevelDebug:
		mcwLevel = mcwlog.LevelDebug
	case LevelInfo:
		mcwLevel = mcwlog.LevelInfo
	case LevelWarn:
		mcwLevel = mcwlog.LevelWarn
	case LevelError:
		mcwLevel = mcwlog.LevelError
	}

	return &Logger{
		Logger: l.Logger.WithLevel(mcwLevel),
		name:   l.name,
	}
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// toFields converts key-value pairs to mcwlog.Fields
func toFields(keysAndValues ...interface{}) mcwlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(mcwlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
