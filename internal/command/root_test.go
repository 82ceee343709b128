package command

import (
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelWarn,
		"verbose": slog.LevelWarn,
	}

	for level, expected := range testCases {
		if g := ParseLogLevel(level); expected != g {
			t.Errorf("ParseLogLevel(%q): expected %v, got %v", level, expected, g)
		}
	}
}
