package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/clinbook/clinbook/internal/errors"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  level,
		Format: format,
		Output: NewOutput(&buf),
	})
	return logger, &buf
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("expected debug/info to be filtered, got: %s", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("expected warn/error to be logged, got: %s", out)
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)

	logger.Info("session resolved", "route_group", "public")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected valid JSON log entry: %v", err)
	}
	if entry["msg"] != "session resolved" {
		t.Errorf("expected msg 'session resolved', got %v", entry["msg"])
	}
	if entry["route_group"] != "public" {
		t.Errorf("expected route_group 'public', got %v", entry["route_group"])
	}
}

func TestLogger_WithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)

	err := errors.New(errors.ErrCodeAPIUnauthorized, "token rejected")
	logger.WithError(err).Warn("request failed")

	var entry map[string]any
	if jsonErr := json.Unmarshal(buf.Bytes(), &entry); jsonErr != nil {
		t.Fatalf("expected valid JSON log entry: %v", jsonErr)
	}
	if entry["error_code"] != string(errors.ErrCodeAPIUnauthorized) {
		t.Errorf("expected error_code %s, got %v", errors.ErrCodeAPIUnauthorized, entry["error_code"])
	}
}

func TestLogger_With(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)

	logger.With("component", "credstore").Info("session cleared")

	if !strings.Contains(buf.String(), "component=credstore") {
		t.Errorf("expected component attribute, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"ERROR", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultLogger(t *testing.T) {
	logger := DefaultLogger()
	if logger == nil {
		t.Fatal("expected non-nil default logger")
	}

	custom, _ := newBufferLogger(LevelDebug, FormatText)
	SetDefaultLogger(custom)
	if DefaultLogger() != custom {
		t.Error("expected DefaultLogger to return the configured logger")
	}
}
