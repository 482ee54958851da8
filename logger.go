package collections

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevelEnv names the environment variable read by ConfigureLogging.
const LogLevelEnv = "COLLECTIONS_LOG_LEVEL"

var level slog.LevelVar

// ConfigureLogging installs a text logger on stdout as the slog default. The level comes from
// COLLECTIONS_LOG_LEVEL (DEBUG, INFO, WARN or ERROR, any case); unset or unrecognised means INFO.
// Containers log grow and shrink events at DEBUG.
func ConfigureLogging() {
	level.Set(ParseLogLevel(os.Getenv(LogLevelEnv)))
	slog.SetDefault(NewLogger(os.Stdout))
}

// NewLogger returns a text logger writing to w whose level follows SetLogLevel.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: &level}))
}

// ParseLogLevel maps a level name to a slog.Level, falling back to INFO.
func ParseLogLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}

// SetLogLevel changes the level of loggers made by ConfigureLogging or NewLogger.
func SetLogLevel(l slog.Level) {
	level.Set(l)
}

// LogLevel reports the level set by ConfigureLogging or SetLogLevel.
func LogLevel() slog.Level {
	return level.Level()
}
