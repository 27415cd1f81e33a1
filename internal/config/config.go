// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the game.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration cannot describe a playable game.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// AutoSpawnColumn in board.spawn_column centers new pieces.
const AutoSpawnColumn = -1

// pieceBox is the width of the bounding box every piece spawns in.
const pieceBox = 4

// BlockfallConfig contains all configuration for the game.
type BlockfallConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Display    DisplayConfig    `yaml:"display"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Debris     DebrisConfig     `yaml:"debris"`
}

// BoardConfig defines the playfield in cells.
type BoardConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	SpawnColumn int `yaml:"spawn_column"` // -1 centers the spawn box
}

// DisplayConfig defines the windowed view in pixels.
type DisplayConfig struct {
	BlockSize    int `yaml:"block_size"`
	OffsetX      int `yaml:"offset_x"`
	OffsetY      int `yaml:"offset_y"`
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
	FPS          int `yaml:"fps"`
}

// TimingConfig defines gravity and input pacing.
type TimingConfig struct {
	FallInterval    Duration `yaml:"fall_interval"`
	SoftDropDivisor int      `yaml:"soft_drop_divisor"`
	MoveRepeat      Duration `yaml:"move_repeat"`
}

// DifficultyConfig holds the static difficulty level.
// The base fall interval is divided by Level; there is no speed curve.
type DifficultyConfig struct {
	Level int `yaml:"level"`
}

// DebrisConfig tunes the particles spawned by cleared cells.
// Values are per frame at display.fps.
type DebrisConfig struct {
	Gravity     float64 `yaml:"gravity"`
	MinVelocity float64 `yaml:"min_velocity"`
	MaxVelocity float64 `yaml:"max_velocity"`
	Spin        float64 `yaml:"spin"`
	Jitter      float64 `yaml:"jitter"`
}

// Duration is a time.Duration written in YAML as a string such as "200ms".
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("config: line %d: duration must be a scalar", node.Line)
	}
	v, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("config: line %d: %w", node.Line, err)
	}
	*d = Duration(v)
	return nil
}

// Validate reports the first value that cannot describe a playable game.
func (c BlockfallConfig) Validate() error {
	switch {
	case c.Board.Width < pieceBox:
		return fmt.Errorf("%w: board.width %d is below %d", ErrInvalidConfig, c.Board.Width, pieceBox)
	case c.Board.Height < pieceBox:
		return fmt.Errorf("%w: board.height %d is below %d", ErrInvalidConfig, c.Board.Height, pieceBox)
	case c.Board.SpawnColumn != AutoSpawnColumn &&
		(c.Board.SpawnColumn < 0 || c.Board.SpawnColumn > c.Board.Width-pieceBox):
		return fmt.Errorf("%w: board.spawn_column %d outside [0,%d]",
			ErrInvalidConfig, c.Board.SpawnColumn, c.Board.Width-pieceBox)
	case c.Display.BlockSize <= 0:
		return fmt.Errorf("%w: display.block_size must be positive", ErrInvalidConfig)
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: display.screen_width and screen_height must be positive", ErrInvalidConfig)
	case c.Display.FPS <= 0:
		return fmt.Errorf("%w: display.fps must be positive", ErrInvalidConfig)
	case c.Timing.FallInterval <= 0:
		return fmt.Errorf("%w: timing.fall_interval must be positive", ErrInvalidConfig)
	case c.Timing.SoftDropDivisor <= 0:
		return fmt.Errorf("%w: timing.soft_drop_divisor must be positive", ErrInvalidConfig)
	case c.Timing.MoveRepeat < 0:
		return fmt.Errorf("%w: timing.move_repeat must not be negative", ErrInvalidConfig)
	case c.Difficulty.Level <= 0:
		return fmt.Errorf("%w: difficulty.level must be positive", ErrInvalidConfig)
	case c.Debris.MinVelocity > c.Debris.MaxVelocity:
		return fmt.Errorf("%w: debris.min_velocity %g exceeds max_velocity %g",
			ErrInvalidConfig, c.Debris.MinVelocity, c.Debris.MaxVelocity)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg BlockfallConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
