package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInitLoggerLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	var buf bytes.Buffer
	logger := InitLogger(&buf, "gol-test", "warn")
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info message should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "gol-test") {
		t.Fatalf("warn message missing app tag: %q", out)
	}
}

func TestInitLoggerEnvOverride(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	logger := InitLogger(&bytes.Buffer{}, "gol-test", "debug")
	if logger.GetLevel() != zerolog.ErrorLevel {
		t.Fatalf("level=%v, expected error", logger.GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"off":     zerolog.Disabled,
		"bananas": zerolog.InfoLevel,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q)=%v, expected %v", raw, got, want)
		}
	}
}
