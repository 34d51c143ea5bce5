package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"none", LevelNone},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDisabledLoggerWritesNothing(t *testing.T) {
	l, err := New(LevelNone, "", "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// Must not panic or create files.
	l.Debug("dropped")
	l.Error("dropped")
}

func TestFileLoggerRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rechenwerk.log")

	l, err := New(LevelWarn, path, "test")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	l.Debug("debug line")
	l.Info("info line")
	l.Warn("warn line")
	l.Error("error line")
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	content := string(data)

	if strings.Contains(content, "debug line") || strings.Contains(content, "info line") {
		t.Error("lines below the configured level were written")
	}
	if !strings.Contains(content, "warn line") || !strings.Contains(content, "error line") {
		t.Error("expected warn and error lines in the log file")
	}
	if !strings.Contains(content, "[test]") {
		t.Error("expected the prefix in log lines")
	}
}

func TestWithPrefixCombines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log")
	l, err := New(LevelDebug, path, "outer")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer l.Close()

	derived := l.WithPrefix("inner")
	derived.Info("hello")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "[outer:inner]") {
		t.Errorf("expected combined prefix, got: %s", data)
	}
}

func TestGlobalDefaultsToDisabled(t *testing.T) {
	l := Global()
	if l == nil {
		t.Fatal("Global returned nil")
	}
	// Safe to call without Init.
	l.Info("discarded")
}
