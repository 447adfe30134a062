package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"unknown", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewWithOutputFormats(t *testing.T) {
	t.Run("json output", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithOutput(Config{Level: "info", Format: "json"}, &buf)
		log.Info().Msg("hello")

		out := strings.TrimSpace(buf.String())
		if !strings.HasPrefix(out, "{") {
			t.Fatalf("expected json output, got %q", out)
		}
		if !strings.Contains(out, `"message":"hello"`) {
			t.Fatalf("expected message field, got %q", out)
		}
	})

	t.Run("console output", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithOutput(Config{Level: "info", Format: "console"}, &buf)
		log.Info().Msg("hello")

		if !strings.Contains(buf.String(), "hello") {
			t.Fatalf("expected console output to contain message, got %q", buf.String())
		}
	})

	t.Run("level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithOutput(Config{Level: "error", Format: "json"}, &buf)
		log.Info().Msg("dropped")

		if buf.Len() != 0 {
			t.Fatalf("expected info below error level to be dropped, got %q", buf.String())
		}
	})
}
