package logging

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
)

// LogStep records the game events of one frame: a game starting,
// rows clearing and the game ending.
func LogStep(logger *log.Logger, prev core.GameState, result core.StepResult) {
	state := result.State
	if state.Mode != prev.Mode && state.Mode == "playing" {
		logger.Info("game started")
	}
	if result.Cleared > 0 {
		logger.Debug("rows cleared", "rows", result.Cleared, "points", result.ScoreDelta, "score", state.Score)
	}
	if result.ToppedOut {
		logger.Info("game over", "score", state.Score, "lines", state.Lines)
	}
}
