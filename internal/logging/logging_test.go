package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfall.log")

	logger, closer, err := New(Options{File: path, Level: "warn", Format: "logfmt", Prefix: "blockfall"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	logger.Info("hidden event")
	logger.Warn("game over", "score", 1200)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "hidden event") {
		t.Errorf("info message written at warn level:\n%s", out)
	}
	if !strings.Contains(out, "game over") || !strings.Contains(out, "score=1200") {
		t.Errorf("warn message missing from log:\n%s", out)
	}
}

func TestNewWithoutFileDiscards(t *testing.T) {
	logger, closer, err := New(Options{})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	logger.Error("nobody hears this")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"level", Options{Level: "loud"}},
		{"format", Options{Format: "xml"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := New(tc.opts); err == nil {
				t.Errorf("New(%+v) error = nil, expected an error", tc.opts)
			}
		})
	}
}

func TestLogStep(t *testing.T) {
	var sb strings.Builder
	logger := log.NewWithOptions(&sb, log.Options{Level: log.DebugLevel, Formatter: log.LogfmtFormatter})

	playing := core.GameState{Mode: "playing", Score: 100, Lines: 2}
	LogStep(logger, core.GameState{Mode: "menu"}, core.StepResult{State: core.GameState{Mode: "playing"}})
	LogStep(logger, playing, core.StepResult{State: playing, Cleared: 2, ScoreDelta: 100})
	LogStep(logger, playing, core.StepResult{State: playing})
	LogStep(logger, playing, core.StepResult{State: core.GameState{Mode: "game over", Score: 100, Lines: 2}, ToppedOut: true})

	out := sb.String()
	for _, want := range []string{"game started", "rows=2", "points=100", "game over", "lines=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "\n"); n != 3 {
		t.Errorf("expected 3 log lines, got %d:\n%s", n, out)
	}
}
