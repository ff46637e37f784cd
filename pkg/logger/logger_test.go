package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestNew_LevelAndServiceField(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "warn", Output: &buf, Service: "staff"})

	l.Info().Msg("dropped")
	l.Warn().Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}

	var ev map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &ev); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev["message"] != "kept" || ev["service"] != "staff" || ev["level"] != "warn" {
		t.Errorf("unexpected event: %v", ev)
	}
}

func TestInit_OnlyFirstCallWins(t *testing.T) {
	saved := log.Logger
	t.Cleanup(func() {
		log.Logger = saved
		Reset()
	})
	Reset()

	var first, second bytes.Buffer
	Init(Options{Level: "debug", Output: &first})
	Init(Options{Level: "debug", Output: &second})

	l := Get()
	l.Debug().Msg("hello")
	log.Debug().Msg("via global")

	if !strings.Contains(first.String(), "hello") || !strings.Contains(first.String(), "via global") {
		t.Errorf("expected both events in first writer, got %q", first.String())
	}
	if second.Len() != 0 {
		t.Errorf("second Init must be ignored, got %q", second.String())
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Get()
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"bogus":   zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
