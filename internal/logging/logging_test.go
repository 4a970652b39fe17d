package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		v    int
		want slog.Level
	}{
		{0, slog.LevelInfo},
		{1, slog.LevelDebug},
		{2, LevelTrace},
		{5, LevelTrace},
		{-1, slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := LevelFromVerbosity(tt.v); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatText, Output: &buf})

	logger.Info("installing engine", "version", "3.5.1-stable")

	out := buf.String()
	if !strings.Contains(out, "installing engine") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "version=3.5.1-stable") {
		t.Errorf("output missing attribute: %q", out)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("hello")

	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}

func TestHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Format: FormatText, Output: &buf})

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info record should have been filtered")
	}
	if !strings.Contains(out, "kept") {
		t.Error("warn record should have been written")
	}
}

func TestHandler_MasksToken(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatText, Output: &buf})

	logger.Info("auth", "github_token", "ghp_supersecretvalue")

	out := buf.String()
	if strings.Contains(out, "supersecretvalue") {
		t.Errorf("token leaked into log output: %q", out)
	}
	if !strings.Contains(out, "ghp_") {
		t.Errorf("masked value should keep its prefix: %q", out)
	}
}

func TestSupportsColor_NonTTY(t *testing.T) {
	var buf bytes.Buffer
	if IsTTY(&buf) {
		t.Error("a plain buffer is not a terminal")
	}
	if SupportsColor(&buf) {
		t.Error("color must be off for non-terminal writers")
	}
}

func TestSupportsColor_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if SupportsColor(os.Stderr) {
		t.Error("NO_COLOR must disable color regardless of the writer")
	}
}

func TestContextRoundTrip(t *testing.T) {
	logger := NewDiscard()
	ctx := NewContext(context.Background(), logger)

	if got := FromContext(ctx); got != logger {
		t.Error("FromContext should return the stored logger")
	}
	if got := FromContext(context.Background()); got == nil {
		t.Error("FromContext without a stored logger should fall back to default")
	}
}

func TestMultiHandler(t *testing.T) {
	var a, b bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	)
	logger := slog.New(h)

	logger.Info("fanout")

	if !strings.Contains(a.String(), "fanout") {
		t.Error("first handler missed the record")
	}
	if !strings.Contains(b.String(), "fanout") {
		t.Error("second handler missed the record")
	}
}
