// Package blockfall adapts the falling-block engine to the frontends:
// it maps actions to intents, keeps the presentation state (smoothed score)
// and draws the game into a core.Screen.
package blockfall

import (
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "blockfall"

// Package-level configuration applied to every new game.
var activeConfig = config.DefaultBlockfallConfig()

// SetConfig validates cfg and uses it for games created afterwards.
func SetConfig(cfg config.BlockfallConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := SettingsFromConfig(cfg).Validate(); err != nil {
		return fmt.Errorf("blockfall: %w", err)
	}
	activeConfig = cfg
	return nil
}

// Game implements registry.Game on top of an engine.Session.
type Game struct {
	cfg      config.BlockfallConfig
	catalog  *engine.Catalog
	session  *engine.Session
	score    *ScoreDisplay
	tooSmall bool
}

// New creates a game using the current package configuration.
func New() *Game {
	return &Game{
		cfg:     activeConfig,
		catalog: engine.StandardCatalog(),
	}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset builds a fresh session waiting in the menu.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	session, err := engine.NewSession(SettingsFromConfig(g.cfg), g.catalog, cfg.Seed)
	if err != nil {
		// SetConfig and DefaultBlockfallConfig only admit valid settings.
		panic(fmt.Sprintf("blockfall: %v", err))
	}
	g.session = session
	g.score = NewScoreDisplay(g.cfg.Display.FPS)
	g.tooSmall = false
}

// Step applies the frame's actions in order, then advances time by dt.
// Nothing moves while the screen is too small to show the board.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		intent := intentFor(a)
		if intent == engine.IntentStartGame && g.session.Mode() != engine.ModePlaying {
			g.score.Reset()
		}
		g.session.HandleIntent(intent)
	}

	update := g.session.Update(dt)
	g.score.Advance(g.session.Score(), dt)

	return core.StepResult{
		State:      g.State(),
		Locked:     update.Locked,
		Cleared:    update.Cleared,
		ScoreDelta: update.ScoreDelta,
		ToppedOut:  update.ToppedOut,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	mode := g.session.Mode()
	return core.GameState{
		Score:    g.session.Score(),
		Lines:    g.session.Lines(),
		Mode:     mode.String(),
		GameOver: mode == engine.ModeGameOver,
		Paused:   g.session.Paused(),
		InMenu:   mode == engine.ModeMenu,
	}
}

// Session exposes the engine for frontends that draw in pixel space.
func (g *Game) Session() *engine.Session {
	return g.session
}

// DisplayedScore returns the eased score shown in the HUD.
func (g *Game) DisplayedScore() int {
	return g.score.Value()
}

// Config returns the configuration this game was created with.
func (g *Game) Config() config.BlockfallConfig {
	return g.cfg
}

// intentFor maps a platform action to an engine intent.
func intentFor(a core.Action) engine.Intent {
	switch a {
	case core.ActionLeft:
		return engine.IntentMoveLeft
	case core.ActionRight:
		return engine.IntentMoveRight
	case core.ActionRotate:
		return engine.IntentRotate
	case core.ActionSoftDropStart:
		return engine.IntentSoftDropStart
	case core.ActionSoftDropEnd:
		return engine.IntentSoftDropEnd
	case core.ActionConfirm:
		return engine.IntentStartGame
	case core.ActionPause:
		return engine.IntentPause
	default:
		return engine.IntentNone
	}
}
