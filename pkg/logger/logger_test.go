package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   DEBUG,
		"INFO":    INFO,
		"warning": WARN,
		" error ": ERROR,
		"bogus":   INFO,
		"":        INFO,
	}
	for in, want := range cases {
		if got := parseLogLevel(in); got != want {
			t.Fatalf("parseLogLevel(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "warn")

	l.Debug("hidden debug")
	l.Info("hidden info")
	l.Warn("shown warn", "file", "a.pdf")
	l.Error("shown error", errors.New("boom"), "status", 500)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug/info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "WARN: shown warn file=a.pdf") {
		t.Fatalf("missing warn line: %q", out)
	}
	if !strings.Contains(out, "ERROR: shown error error=boom status=500") {
		t.Fatalf("missing error line: %q", out)
	}
}

func TestLogger_DropsDanglingKey(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "debug")

	l.Info("odd fields", "a", 1, "dangling")

	out := strings.TrimSpace(buf.String())
	if !strings.HasSuffix(out, "INFO: odd fields a=1") {
		t.Fatalf("unexpected line: %q", out)
	}
}
