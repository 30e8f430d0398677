package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	log.SetLevel(logrus.DebugLevel)
	return &buf
}

func TestInit(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		expectError bool
	}{
		{name: "Debug level", level: "debug"},
		{name: "Info level", level: "info"},
		{name: "Warn level", level: "warn"},
		{name: "Invalid level", level: "invalid", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Init(tt.level)
			if tt.expectError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestLogging(t *testing.T) {
	buf := captureOutput(t)

	tests := []struct {
		name          string
		logFunc       func(string, ...Fields)
		message       string
		fields        Fields
		expectedLevel string
	}{
		{name: "Debug message", logFunc: Debug, message: "Debug test", expectedLevel: "debug"},
		{name: "Info message", logFunc: Info, message: "Info test", expectedLevel: "info"},
		{name: "Warn message", logFunc: Warn, message: "Warn test", expectedLevel: "warning"},
		{
			name:          "Debug with fields",
			logFunc:       Debug,
			message:       "Debug with fields",
			fields:        Fields{"noteId": "abc"},
			expectedLevel: "debug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()

			if tt.fields != nil {
				tt.logFunc(tt.message, tt.fields)
			} else {
				tt.logFunc(tt.message)
			}

			output := buf.String()
			if !strings.Contains(output, "level="+tt.expectedLevel) {
				t.Errorf("Expected log level %s, got %s", tt.expectedLevel, output)
			}
			if !strings.Contains(output, tt.message) {
				t.Errorf("Expected message %s, got %s", tt.message, output)
			}
			for k, v := range tt.fields {
				if !strings.Contains(output, k+"="+v.(string)) {
					t.Errorf("Expected field %s=%v in output: %s", k, v, output)
				}
			}
		})
	}
}

func TestError(t *testing.T) {
	buf := captureOutput(t)

	Error("Error test", errors.New("test error"))
	output := buf.String()
	if !strings.Contains(output, "level=error") {
		t.Error("Expected error level")
	}
	if !strings.Contains(output, "test error") {
		t.Error("Expected error details")
	}

	buf.Reset()
	Error("Error test", errors.New("test error"), Fields{"key": "value"})
	if !strings.Contains(buf.String(), "key=value") {
		t.Error("Expected error with fields")
	}
}
