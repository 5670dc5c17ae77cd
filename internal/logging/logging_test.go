package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/timeclock/internal/config"
)

func TestNew_ConsoleLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New(config.LogConfig{Level: "warn"}, false, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = closeFn() }()

	logger.Info().Msg("hidden")
	logger.Warn().Str("shift", "night").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info entry should be filtered at warn level:\n%s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "night") {
		t.Errorf("expected warn entry with field:\n%s", out)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, _, err := New(config.LogConfig{Level: "loud"}, false, &bytes.Buffer{}); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestNew_DebugFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	var console bytes.Buffer

	logger, closeFn, err := New(config.LogConfig{Level: "error", File: path}, true, &console)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug().Int64("shift_id", 7).Msg("punch recorded")
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	if console.Len() != 0 {
		t.Errorf("debug mode should not write to the console, got %q", console.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading debug log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected start, entry and end lines, got %d:\n%s", len(lines), data)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &entry); err != nil {
		t.Fatalf("debug entry is not JSON: %v", err)
	}
	if entry["message"] != "punch recorded" || entry["shift_id"] != float64(7) {
		t.Errorf("unexpected entry %v", entry)
	}
}
