package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	mcwlog "github.com/msto63/mCW/pkg/core/log"
)

func TestLevel_Constants(t *testing.T) {
	if LevelDebug != 0 {
		t.Errorf("LevelDebug = %d, want 0", LevelDebug)
	}
	if LevelInfo != 1 {
		t.Errorf("LevelInfo = %d, want 1", LevelInfo)
	}
	if LevelWarn != 2 {
		t.Errorf("LevelWarn = %d, want 2", LevelWarn)
	}
	if LevelError != 3 {
		t.Errorf("LevelError = %d, want 3", LevelError)
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("Level.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	logger := New("humboldt")

	if logger == nil {
		t.Fatal("New() returned nil")
	}
	if logger.name != "humboldt" {
		t.Errorf("name = %v, want humboldt", logger.name)
	}
}

func TestLogger_WithLevel(t *testing.T) {
	logger := New("humboldt")
	result := logger.WithLevel(LevelDebug)

	if result == nil {
		t.Fatal("WithLevel should return a logger")
	}
	if result == logger {
		t.Error("WithLevel should return a new logger instance")
	}
	if result.name != "humboldt" {
		t.Errorf("name should be preserved: got %v", result.name)
	}
	if result.GetLevel() != mcwlog.LevelDebug {
		t.Errorf("GetLevel() = %v, want %v", result.GetLevel(), mcwlog.LevelDebug)
	}
}

func TestLogger_LogMethods(t *testing.T) {
	// Test that log methods don't panic
	logger := New("humboldt")

	// These should not panic
	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "key", "value")
	logger.Warn("warn message", "key", "value")
	logger.Error("error message", "key", "value")
}

func TestLogger_MultipleKeyValues(t *testing.T) {
	logger := New("humboldt")

	// Should not panic with multiple key-value pairs
	logger.Info("message", "key1", "value1", "key2", 42, "key3", true)
}

func TestLogger_EmptyKeyValues(t *testing.T) {
	logger := New("humboldt")

	// Should not panic without key-values
	logger.Info("message without key-values")
}

func TestLogger_OddKeyValues(t *testing.T) {
	logger := New("humboldt")

	// Should not panic with odd number of key-values
	logger.Info("message", "key1", "value1", "orphan")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected mcwlog.Level
	}{
		{"trace", mcwlog.LevelTrace},
		{"debug", mcwlog.LevelDebug},
		{"info", mcwlog.LevelInfo},
		{"warn", mcwlog.LevelWarn},
		{"warning", mcwlog.LevelWarn},
		{"error", mcwlog.LevelError},
		{"fatal", mcwlog.LevelFatal},
		{"invalid", mcwlog.LevelInfo}, // defaults to info
		{"", mcwlog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("humboldt")

	if cfg.ServiceName != "humboldt" {
		t.Errorf("ServiceName = %v, want humboldt", cfg.ServiceName)
	}
	if cfg.Level != "info" {
		t.Errorf("Level = %v, want info", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %v, want json", cfg.Format)
	}
}

func TestNewSimpleLogger(t *testing.T) {
	logger := NewSimpleLogger("humboldt")

	if logger == nil {
		t.Fatal("NewSimpleLogger() returned nil")
	}
}

func TestNewLogger(t *testing.T) {
	cfg := LoggerConfig{
		ServiceName: "humboldt",
		Level:       "debug",
		Format:      "json",
	}

	logger := NewLogger(cfg)

	if logger == nil {
		t.Fatal("NewLogger() returned nil")
	}
	if logger.GetLevel() != mcwlog.LevelDebug {
		t.Errorf("GetLevel() = %v, want %v", logger.GetLevel(), mcwlog.LevelDebug)
	}
}

func TestNewLogger_AdditionalOutputs(t *testing.T) {
	var buf bytes.Buffer
	cfg := LoggerConfig{
		ServiceName:       "humboldt",
		Level:             "info",
		Format:            "json",
		AdditionalOutputs: []io.Writer{&buf},
	}

	logger := NewLogger(cfg)
	logger.Info("course published", mcwlog.Fields{"course_id": "MATH101"})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("additional output is not valid JSON: %v\noutput: %s", err, buf.String())
	}

	if entry["message"] != "course published" {
		t.Errorf("message = %v, want 'course published'", entry["message"])
	}
	if entry["course_id"] != "MATH101" {
		t.Errorf("course_id = %v, want MATH101", entry["course_id"])
	}
	if entry["logger"] != "humboldt" {
		t.Errorf("logger = %v, want humboldt", entry["logger"])
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(LoggerConfig{
		ServiceName:       "humboldt",
		Level:             "debug",
		Format:            "json",
		AdditionalOutputs: []io.Writer{&buf},
	})

	logger.Info("student enrolled", "student_id", "s-1", "course_id", "MATH101")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}

	if entry["student_id"] != "s-1" {
		t.Errorf("student_id = %v, want s-1", entry["student_id"])
	}
	if entry["course_id"] != "MATH101" {
		t.Errorf("course_id = %v, want MATH101", entry["course_id"])
	}
}

func TestToFields(t *testing.T) {
	// Empty input
	fields := toFields()
	if fields != nil {
		t.Error("toFields() with no args should return nil")
	}

	// Valid key-value pairs
	fields = toFields("key1", "value1", "key2", 42)
	if fields == nil {
		t.Fatal("toFields() returned nil")
	}
	if fields["key1"] != "value1" {
		t.Errorf("fields[key1] = %v, want value1", fields["key1"])
	}
	if fields["key2"] != 42 {
		t.Errorf("fields[key2] = %v, want 42", fields["key2"])
	}

	// Non-string key (should be skipped)
	fields = toFields(123, "value")
	if len(fields) != 0 {
		t.Errorf("Non-string key should be skipped, got %v fields", len(fields))
	}

	// Odd trailing value (should be ignored)
	fields = toFields("key1", "value1", "orphan")
	if len(fields) != 1 {
		t.Errorf("Odd trailing value should be ignored, got %v fields", len(fields))
	}
}

func BenchmarkLogger_Info(b *testing.B) {
	logger := New("benchmark")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", "iteration", i)
	}
}
