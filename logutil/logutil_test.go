// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{" error ", LevelError},
		{"unknown", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	for _, level := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		if got := ParseLevel(level.String()); got != level {
			t.Errorf("ParseLevel(%q) = %v, want %v", level.String(), got, level)
		}
	}
}

func TestIsDebugEnabledEnvVar(t *testing.T) {
	SetupLogger(false, false)

	t.Setenv(EnvDebug, "true")
	if !IsDebugEnabled() {
		t.Error("expected debug to be enabled via env var")
	}

	t.Setenv(EnvDebug, "")
	if IsDebugEnabled() {
		t.Error("expected debug to be disabled")
	}
}

func TestDebugViaEnvVarIsWritten(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)
	t.Setenv(EnvDebug, "true")

	Debug("env debug message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "env debug message") {
		t.Errorf("expected debug message with env var set, got: %s", output)
	}
	if !strings.Contains(output, "debug=true") {
		t.Errorf("expected debug=true marker, got: %s", output)
	}
}

func TestDebugSuppressed(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)
	t.Setenv(EnvDebug, "")

	Debug("hidden")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got: %s", buf.String())
	}
}

func TestLogOutputText(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, true, false)

	Debug("test debug message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test debug message") {
		t.Errorf("expected log output to contain message, got: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("expected log output to contain key=value, got: %s", output)
	}
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, true)

	Info("test message", "count", 42)

	output := buf.String()
	if !strings.Contains(output, `"msg":"test message"`) {
		t.Errorf("expected JSON output with msg field, got: %s", output)
	}
	if !strings.Contains(output, `"count":42`) {
		t.Errorf("expected JSON output with count field, got: %s", output)
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	SetLevel(LevelWarn)
	if GetLevel() != LevelWarn {
		t.Errorf("expected LevelWarn, got %v", GetLevel())
	}

	Info("dropped info")
	Warn("kept warning")

	output := buf.String()
	if strings.Contains(output, "dropped info") {
		t.Errorf("info should be filtered at warn level, got: %s", output)
	}
	if !strings.Contains(output, "kept warning") {
		t.Errorf("expected warning in output, got: %s", output)
	}
}

func TestSetOutputKeepsFormat(t *testing.T) {
	SetupLogger(false, true)

	var buf bytes.Buffer
	SetOutput(&buf)
	Error("after SetOutput", "code", 7)

	output := buf.String()
	if !strings.Contains(output, `"msg":"after SetOutput"`) {
		t.Errorf("expected JSON output after SetOutput, got: %s", output)
	}
}

func TestLogger(t *testing.T) {
	SetupLogger(false, false)
	if Logger() == nil {
		t.Error("Logger() returned nil")
	}
}
