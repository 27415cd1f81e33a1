package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the built-in configuration.
// It matches defaults/blockfall.yaml and backs it up if the embed fails to parse.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BoardConfig{
			Width:       10,
			Height:      20,
			SpawnColumn: AutoSpawnColumn,
		},
		Display: DisplayConfig{
			BlockSize:    30,
			OffsetX:      40,
			OffsetY:      40,
			ScreenWidth:  600,
			ScreenHeight: 800,
			FPS:          60,
		},
		Timing: TimingConfig{
			FallInterval:    Duration(time.Second),
			SoftDropDivisor: 10,
			MoveRepeat:      Duration(200 * time.Millisecond),
		},
		Difficulty: DifficultyConfig{
			Level: LevelForPreset(DifficultyNormal),
		},
		Debris: DebrisConfig{
			Gravity:     0.1,
			MinVelocity: -3.0,
			MaxVelocity: -1.0,
			Spin:        3,
			Jitter:      0.5,
		},
	}
}
