package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New("shopsearch", Options{Format: "json", Out: &buf})
	l.Info().Str("k", "v").Msg("hello")
	l.Debug().Msg("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line at info level, got %d: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if rec["service"] != "shopsearch" || rec["message"] != "hello" || rec["k"] != "v" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestNew_ConsoleDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New("shopsearch", Options{Format: "console", Debug: true, Out: &buf})
	l.Debug().Msg("visible")
	if !strings.Contains(buf.String(), "visible") || !strings.Contains(buf.String(), "DBG") {
		t.Fatalf("unexpected console output: %q", buf.String())
	}
}
