package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Format: "json", Service: "api", Output: &buf})

	l.Info().Msg("hidden")
	l.Warn().Str("route", "/api/scenes").Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %q", buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if entry["message"] != "shown" || entry["service"] != "api" || entry["route"] != "/api/scenes" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestNewUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "verbose", Output: &buf})

	l.Debug().Msg("debug")
	l.Info().Msg("info")

	if strings.Contains(buf.String(), `"message":"debug"`) {
		t.Fatalf("debug should be filtered: %q", buf.String())
	}
	if !strings.Contains(buf.String(), `"message":"info"`) {
		t.Fatalf("expected info entry, got %q", buf.String())
	}
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Format: "text", Output: &buf})
	l.Info().Msg("hello")

	if strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), "hello") {
		t.Fatalf("expected console output, got %q", buf.String())
	}
}
