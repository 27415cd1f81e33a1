package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted presets, easiest first.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParseDifficultyPreset validates a preset name from the command line.
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (use easy, normal or hard)", ErrInvalidConfig, name)
}

// LevelForPreset returns the difficulty level for a preset.
func LevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyHard:
		return 4
	default:
		return 2
	}
}

// ApplyPreset sets the difficulty level from a preset.
func ApplyPreset(cfg *BlockfallConfig, preset DifficultyPreset) {
	cfg.Difficulty.Level = LevelForPreset(preset)
}
