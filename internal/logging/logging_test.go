package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" INFO ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewWriter_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, "info")

	logger.Debug().Msg("hidden")
	logger.Info().Str("route", "/").Msg("shown")

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record written at info level: %s", out)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("record is not JSON: %v (%s)", err, out)
	}
	if rec["message"] != "shown" || rec["route"] != "/" || rec["app"] != "shelf" {
		t.Fatalf("record = %#v", rec)
	}
}

func TestNew_CreatesDirectoryAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shelf.log")

	logger, closer, err := New(path, "debug")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug().Msg("first")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	logger, closer, err = New(path, "debug")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug().Msg("second")
	_ = closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if lines := strings.Count(string(data), "\n"); lines != 2 {
		t.Fatalf("log lines = %d, want 2:\n%s", lines, data)
	}
}
