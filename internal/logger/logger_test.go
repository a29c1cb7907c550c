package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   DEBUG,
		"INFO":    INFO,
		"warn":    WARN,
		"warning": WARN,
		"error":   ERROR,
		"fatal":   FATAL,
		"bogus":   INFO,
		"":        INFO,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn")

	l.Debugf("debug %d", 1)
	l.Info("info")
	l.Warnf("texture %s missing", "wall.jpg")
	l.Error("boom")

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info") {
		t.Errorf("messages below WARN should be dropped, got %q", out)
	}
	if !strings.Contains(out, "[WARN ]") || !strings.Contains(out, "texture wall.jpg missing") {
		t.Errorf("missing warning line in %q", out)
	}
	if !strings.Contains(out, "[ERROR]") || !strings.Contains(out, "boom") {
		t.Errorf("missing error line in %q", out)
	}
	if !strings.Contains(out, "logger_test.go:") {
		t.Errorf("expected caller file in %q", out)
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "error")
	l.SetLevel("debug")
	l.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("expected debug output after SetLevel, got %q", buf.String())
	}
}

func TestMultiLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "corridor.log")
	l, err := NewMultiLogger("info", path)
	if err != nil {
		t.Fatalf("NewMultiLogger: %v", err)
	}
	l.Infof("hello %s", "file")
	l.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Errorf("expected message in log file, got %q", data)
	}
}
