package blockfall

import (
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// SettingsFromConfig converts the YAML configuration into session constants.
func SettingsFromConfig(cfg config.BlockfallConfig) engine.Settings {
	spawn := cfg.Board.SpawnColumn
	if spawn == config.AutoSpawnColumn {
		spawn = engine.AutoSpawnColumn
	}

	return engine.Settings{
		BoardWidth:      cfg.Board.Width,
		BoardHeight:     cfg.Board.Height,
		SpawnColumn:     spawn,
		BlockSize:       cfg.Display.BlockSize,
		OffsetX:         cfg.Display.OffsetX,
		OffsetY:         cfg.Display.OffsetY,
		ViewHeight:      cfg.Display.ScreenHeight,
		FPS:             cfg.Display.FPS,
		FallInterval:    cfg.Timing.FallInterval.Std(),
		Difficulty:      cfg.Difficulty.Level,
		SoftDropDivisor: cfg.Timing.SoftDropDivisor,
		MoveRepeat:      cfg.Timing.MoveRepeat.Std(),
		Debris: engine.DebrisSettings{
			Gravity:     cfg.Debris.Gravity,
			MinVelocity: cfg.Debris.MinVelocity,
			MaxVelocity: cfg.Debris.MaxVelocity,
			Spin:        cfg.Debris.Spin,
			Jitter:      cfg.Debris.Jitter,
		},
	}
}
