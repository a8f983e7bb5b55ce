package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "internboard.log")
	logger, err := New(path, "info")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("dataset loaded", zap.Int("count", 3))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1 (debug filtered): %q", len(lines), data)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "dataset loaded" || entry["count"] != float64(3) {
		t.Fatalf("entry = %v, want msg and count fields", entry)
	}
}

func TestNew_DebugUsesConsoleEncoder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, err := New(path, "DEBUG")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("search applied")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "search applied") || strings.HasPrefix(string(data), "{") {
		t.Fatalf("debug log = %q, want console-encoded line", data)
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New("  ", "info"); err == nil {
		t.Fatalf("New with empty path returned nil error")
	}
	if _, err := New(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil || !strings.Contains(err.Error(), "parse log level") {
		t.Fatalf("New with bad level error = %v, want parse log level", err)
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatalf("OrNop(nil) returned nil")
	}
	l := zap.NewExample()
	if OrNop(l) != l {
		t.Fatalf("OrNop should return the given logger")
	}
}
