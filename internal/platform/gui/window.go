// Package gui provides the Ebiten windowed frontend. It draws the board in
// pixel space using the configured block size and camera offset.
package gui

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/logging"
)

// Menu banner placement in pixels.
const (
	bannerBlock  = 20
	bannerBorder = 3
	bannerX      = 60
	bannerY      = 400
)

// Window implements ebiten.Game for a blockfall game.
type Window struct {
	game   *blockfall.Game
	cfg    config.BlockfallConfig
	logger *log.Logger

	state  core.GameState
	glow   blockfall.Glow
	sprite *ebiten.Image  // Debris block, drawn rotated
	text   *textCache
}

// New creates a window for game. The game is reset with rc.
func New(game *blockfall.Game, rc core.RuntimeConfig, logger *log.Logger) *Window {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	game.Reset(rc)

	w := &Window{
		game:   game,
		cfg:    game.Config(),
		logger: logger,
		text:   newTextCache(),
	}
	w.state = game.State()
	w.sprite = blockSprite(w.cfg.Display.BlockSize)
	return w
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if keysQuit.justPressed() {
		return ebiten.Termination
	}

	keys := pollKeys()

	if w.state.InMenu {
		hovered := w.bannerRect().Contains(ebiten.CursorPosition())
		w.glow.Advance(hovered, 1)
		keys.Clicked = hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	result := w.game.Step(keys.actions(), dt)
	logging.LogStep(w.logger, w.state, result)
	w.state = result.State

	return nil
}

// Layout implements ebiten.Game with a fixed logical screen.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.cfg.Display.ScreenWidth, w.cfg.Display.ScreenHeight
}

// bannerRect returns the clickable banner area in screen pixels.
func (w *Window) bannerRect() core.Rect {
	cols, rows := blockfall.BannerSize()
	return core.NewRect(bannerX, bannerY, cols*bannerBlock, rows*bannerBlock)
}

// Run opens the window and blocks until it is closed.
func Run(game *blockfall.Game, rc core.RuntimeConfig, logger *log.Logger) error {
	w := New(game, rc, logger)

	ebiten.SetWindowSize(w.cfg.Display.ScreenWidth, w.cfg.Display.ScreenHeight)
	ebiten.SetWindowTitle(game.Title())
	if rc.FPS > 0 {
		ebiten.SetTPS(rc.FPS)
	}

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
