package collections

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tc := range tests {
		if got := ParseLogLevel(tc.in); got != tc.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestConfigureLogging_Env(t *testing.T) {
	prev, prevLevel := slog.Default(), LogLevel()
	defer func() {
		slog.SetDefault(prev)
		SetLogLevel(prevLevel)
	}()

	t.Setenv(LogLevelEnv, "WARN")
	ConfigureLogging()
	if LogLevel() != slog.LevelWarn {
		t.Fatalf("level = %v, want WARN", LogLevel())
	}
}

// SetLogLevel applies to loggers already handed out.
func TestNewLogger_FollowsLevel(t *testing.T) {
	prevLevel := LogLevel()
	defer SetLogLevel(prevLevel)

	var buf bytes.Buffer
	l := NewLogger(&buf)
	SetLogLevel(slog.LevelError)
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info written at error level: %q", buf.String())
	}
	SetLogLevel(slog.LevelDebug)
	l.Debug("darray grew")
	if !strings.Contains(buf.String(), "darray grew") {
		t.Fatalf("debug record missing: %q", buf.String())
	}
}

func TestVersion(t *testing.T) {
	if Version() == "" {
		t.Fatalf("Version is empty")
	}
}
