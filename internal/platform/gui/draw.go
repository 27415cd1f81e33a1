package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

var (
	colorBackground = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	colorField      = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	colorGrid       = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	colorBlock      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	colorText       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorOverlay    = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

const (
	gridWidth   = 2
	spriteEdge  = 3
	scoreY      = 550
	bigText     = 6.0 // Scale of the debug font for the score and level
	overlayText = 3.0
)

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	s := w.game.Session()
	if s.Mode() == engine.ModeMenu {
		w.drawMenu(screen)
		return
	}

	w.drawField(screen, s)
	w.drawScore(screen)
	w.drawDebris(screen, s)
	w.drawOverlay(screen, s)
}

// drawMenu draws the PLAY banner, lit by the hover glow, and the difficulty level.
func (w *Window) drawMenu(screen *ebiten.Image) {
	r := w.bannerRect()
	cols, rows := blockfall.BannerSize()
	fill := color.RGBA{G: w.glow.Level(), A: 255}

	for row := range rows {
		for col := range cols {
			if blockfall.BannerAt(col, row) != blockfall.BannerBlock {
				continue
			}
			x := float32(r.X + col*bannerBlock)
			y := float32(r.Y + row*bannerBlock)
			vector.DrawFilledRect(screen, x, y, bannerBlock, bannerBlock, fill, false)
			vector.StrokeRect(screen, x, y, bannerBlock, bannerBlock, bannerBorder, colorGrid, false)
		}
	}

	level := fmt.Sprintf("%d", w.cfg.Difficulty.Level)
	w.text.draw(screen, level, 200, float64(r.Bottom()), bigText, colorText)
}

// drawField draws the field background, settled cells, the falling piece and the grid.
func (w *Window) drawField(screen *ebiten.Image, s *engine.Session) {
	settings := s.Settings()
	bs := float32(settings.BlockSize)
	boardW, boardH := s.BoardSize()

	ox, oy := settings.PixelPos(engine.Cell{})
	vector.DrawFilledRect(screen, float32(ox), float32(oy), bs*float32(boardW), bs*float32(boardH), colorField, false)

	for _, c := range s.SettledCells() {
		x, y := settings.PixelPos(c)
		vector.DrawFilledRect(screen, float32(x), float32(y), bs, bs, colorBlock, false)
	}

	for _, c := range s.ActiveCells() {
		if c.Row < 0 {
			continue
		}
		x, y := settings.PixelPos(c)
		vector.DrawFilledRect(screen, float32(x), float32(y), bs, bs, colorBlock, false)
		vector.StrokeRect(screen, float32(x), float32(y), bs, bs, gridWidth, colorGrid, false)
	}

	for row := range boardH {
		for col := range boardW {
			x, y := settings.PixelPos(engine.Cell{Col: col, Row: row})
			vector.StrokeRect(screen, float32(x), float32(y), bs, bs, gridWidth, colorGrid, false)
		}
	}
}

// drawScore draws the eased score centered near the bottom of the field.
func (w *Window) drawScore(screen *ebiten.Image) {
	score := fmt.Sprintf("%d", w.game.DisplayedScore())
	width, _ := w.text.size(score, bigText)
	x := float64(w.cfg.Display.ScreenWidth)/2 - width/2
	w.text.draw(screen, score, x, scoreY, bigText, colorText)
}

// drawDebris draws each particle as a block rotated about its center.
func (w *Window) drawDebris(screen *ebiten.Image, s *engine.Session) {
	half := float64(s.Settings().BlockSize) / 2

	for _, p := range s.Debris() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-half, -half)
		// Positive angles turn counterclockwise on screen.
		op.GeoM.Rotate(-p.Angle * math.Pi / 180)
		op.GeoM.Translate(p.X+half, p.Y+half)
		screen.DrawImage(w.sprite, op)
	}
}

// drawOverlay dims the field and shows pause or game over text.
func (w *Window) drawOverlay(screen *ebiten.Image, s *engine.Session) {
	var lines []string
	switch {
	case s.Mode() == engine.ModeGameOver:
		lines = []string{"GAME OVER", "ENTER TO PLAY"}
	case s.Paused():
		lines = []string{"PAUSED"}
	default:
		return
	}

	sw, sh := float32(w.cfg.Display.ScreenWidth), float32(w.cfg.Display.ScreenHeight)
	vector.DrawFilledRect(screen, 0, 0, sw, sh, colorOverlay, false)

	y := float64(sh) / 3
	for _, line := range lines {
		width, height := w.text.size(line, overlayText)
		w.text.draw(screen, line, float64(sw)/2-width/2, y, overlayText, color.White)
		y += height * 1.5
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("lines %d  pieces %d", s.Lines(), s.Pieces()), 8, int(sh)-20)
}

// blockSprite renders one debris block: a green cell with a dark border.
func blockSprite(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.Fill(colorBlock)
	vector.StrokeRect(img, 0, 0, float32(size), float32(size), spriteEdge, colorGrid, false)
	return img
}
