package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" WARN ":  zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info", "json").Named("controller")
	log.Debugw("hidden")
	log.Infow("advanced", "step", 2)
	_ = log.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected a single entry above debug, got %q", buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if entry["msg"] != "advanced" || entry["component"] != "controller" || entry["level"] != "INFO" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["step"] != float64(2) {
		t.Fatalf("expected step field, got %v", entry["step"])
	}
}

func TestNewWithWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug", "console")
	log.Debugw("field updated", "field", "email")
	_ = log.Sync()

	out := buf.String()
	if !strings.Contains(out, " | ") || !strings.Contains(out, "field updated") {
		t.Fatalf("unexpected console output %q", out)
	}
}
