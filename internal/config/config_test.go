package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// isolate points the user config dir and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg BlockfallConfig
	if err := yaml.Unmarshal(defaultBlockfallYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultBlockfallConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultBlockfallConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded config is invalid: %v", err)
	}
}

func TestLoadCustomPathKeepsDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "board:\n  width: 12\ntiming:\n  move_repeat: 150ms\n")

	loaded, err := LoadBlockfall(path)
	if err != nil {
		t.Fatalf("LoadBlockfall() error: %v", err)
	}

	if loaded.Source != path {
		t.Errorf("Source = %q, expected %q", loaded.Source, path)
	}
	if loaded.Config.Board.Width != 12 {
		t.Errorf("Board.Width = %d, expected 12", loaded.Config.Board.Width)
	}
	if loaded.Config.Board.Height != 20 {
		t.Errorf("Board.Height = %d, expected default 20", loaded.Config.Board.Height)
	}
	if loaded.Config.Timing.MoveRepeat.Std() != 150*time.Millisecond {
		t.Errorf("MoveRepeat = %v, expected 150ms", loaded.Config.Timing.MoveRepeat.Std())
	}
	if loaded.Config.Timing.FallInterval.Std() != time.Second {
		t.Errorf("FallInterval = %v, expected default 1s", loaded.Config.Timing.FallInterval.Std())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string // empty means the file is not created
		invalid bool   // error must wrap ErrInvalidConfig
	}{
		{name: "missing file"},
		{name: "bad yaml", content: "board: [1, 2"},
		{name: "bad duration", content: "timing:\n  fall_interval: soon\n"},
		{name: "narrow board", content: "board:\n  width: 3\n", invalid: true},
		{name: "spawn column too far right", content: "board:\n  spawn_column: 7\n", invalid: true},
		{name: "zero fps", content: "display:\n  fps: 0\n", invalid: true},
		{name: "zero divisor", content: "timing:\n  soft_drop_divisor: 0\n", invalid: true},
		{name: "zero difficulty", content: "difficulty:\n  level: 0\n", invalid: true},
		{name: "inverted debris", content: "debris:\n  min_velocity: 1\n  max_velocity: -1\n", invalid: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if tc.content != "" {
				writeFile(t, path, tc.content)
			}

			_, err := LoadBlockfall(path)
			if err == nil {
				t.Fatal("LoadBlockfall() error = nil, expected an error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tc.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, expected %v (err: %v)", got, tc.invalid, err)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	loaded, err := LoadBlockfall("")
	if err != nil {
		t.Fatalf("LoadBlockfall() error: %v", err)
	}
	if loaded.Source != SourceEmbedded {
		t.Errorf("Source = %q, expected %q", loaded.Source, SourceEmbedded)
	}

	writeFile(t, filepath.Join(work, "configs", "blockfall.yaml"), "board:\n  height: 16\n")
	loaded, err = LoadBlockfall("")
	if err != nil {
		t.Fatalf("LoadBlockfall() error: %v", err)
	}
	if loaded.Config.Board.Height != 16 {
		t.Errorf("local config not used, Board.Height = %d", loaded.Config.Board.Height)
	}

	userPath := filepath.Join(home, ".blockfall", "configs", "blockfall.yaml")
	writeFile(t, userPath, "board:\n  height: 24\n")
	loaded, err = LoadBlockfall("")
	if err != nil {
		t.Fatalf("LoadBlockfall() error: %v", err)
	}
	if loaded.Source != userPath || loaded.Config.Board.Height != 24 {
		t.Errorf("user config should win, got source %q height %d", loaded.Source, loaded.Config.Board.Height)
	}
}

func TestSaveThenLoad(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "dir", "blockfall.yaml")

	cfg := DefaultBlockfallConfig()
	cfg.Timing.MoveRepeat = Duration(120 * time.Millisecond)
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "move_repeat: 120ms") {
		t.Errorf("durations should be written as strings, got:\n%s", data)
	}

	loaded, err := LoadBlockfall(path)
	if err != nil {
		t.Fatalf("LoadBlockfall() error: %v", err)
	}
	if loaded.Config != cfg {
		t.Errorf("loaded %+v, expected %+v", loaded.Config, cfg)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name     string
		expected int
	}{
		{"easy", 1},
		{"normal", 2},
		{"hard", 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			preset, err := ParseDifficultyPreset(tc.name)
			if err != nil {
				t.Fatalf("ParseDifficultyPreset(%q) error: %v", tc.name, err)
			}
			cfg := DefaultBlockfallConfig()
			ApplyPreset(&cfg, preset)
			if cfg.Difficulty.Level != tc.expected {
				t.Errorf("Difficulty.Level = %d, expected %d", cfg.Difficulty.Level, tc.expected)
			}
		})
	}

	if _, err := ParseDifficultyPreset("nightmare"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParseDifficultyPreset(nightmare) error = %v, expected ErrInvalidConfig", err)
	}
}
