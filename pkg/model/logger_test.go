package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestDefaultLogger(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := NewLogger(buffer, LogLevelDebug)

	logger.Debug("debug %s", "message")
	if !strings.Contains(buffer.String(), "[DEBUG] debug message") {
		t.Error("Expected debug message to be logged")
	}
	buffer.Reset()

	logger.Error("error message")
	if !strings.Contains(buffer.String(), "[ERROR] error message") {
		t.Error("Expected error message to be logged")
	}
	buffer.Reset()

	// Test log level filtering
	logger = NewLogger(buffer, LogLevelWarn)
	logger.Info("info message")
	if buffer.Len() != 0 {
		t.Error("Info message should not be logged at Warn level")
	}
	logger.Warn("warn message")
	if !strings.Contains(buffer.String(), "[WARN] warn message") {
		t.Error("Expected warn message to be logged at Warn level")
	}

	if logger.IsLevelEnabled(LogLevelInfo) {
		t.Error("Expected Info to be disabled at Warn level")
	}
	if !logger.IsLevelEnabled(LogLevelError) {
		t.Error("Expected Error to be enabled at Warn level")
	}
}

func TestLoggerWithPrefix(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := NewLogger(buffer, LogLevelInfo).WithPrefix("notebook 1")

	logger.Info("created page %d", 2)
	if !strings.Contains(buffer.String(), "[INFO] notebook 1: created page 2") {
		t.Errorf("Expected prefixed message, got %q", buffer.String())
	}

	logger.Debug("hidden")
	if strings.Contains(buffer.String(), "hidden") {
		t.Error("Expected prefixed logger to keep the level")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LogLevelDebug,
		"INFO":    LogLevelInfo,
		"warning": LogLevelWarn,
		"error":   LogLevelError,
		"":        LogLevelInfo,
		"verbose": LogLevelInfo,
	}

	for in, want := range tests {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q): expected %s, got %s", in, want, got)
		}
	}
}

func TestNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()

	// Just ensure these calls don't panic
	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	if logger.IsLevelEnabled(LogLevelError) {
		t.Error("Expected NoOpLogger to report every level disabled")
	}
}

func TestSetDefaultLogger(t *testing.T) {
	original := DefaultLoggerInstance
	defer func() {
		DefaultLoggerInstance = original
	}()

	customLogger := NewNoOpLogger()
	SetDefaultLogger(customLogger)

	if GetDefaultLogger() != customLogger {
		t.Error("Expected GetDefaultLogger to return the custom logger")
	}
}
