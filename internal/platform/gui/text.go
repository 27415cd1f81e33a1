package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Glyph cell of the Ebiten debug font.
const (
	glyphW = 6
	glyphH = 16
)

// textCache keeps one rendered image per string so large text can be
// drawn by scaling the debug font.
type textCache struct {
	images map[string]*ebiten.Image
}

func newTextCache() *textCache {
	return &textCache{images: make(map[string]*ebiten.Image)}
}

func (c *textCache) image(s string) *ebiten.Image {
	if img, ok := c.images[s]; ok {
		return img
	}
	img := ebiten.NewImage(max(len(s), 1)*glyphW, glyphH)
	ebitenutil.DebugPrint(img, s)
	c.images[s] = img
	return img
}

// size returns the drawn size of s at the given scale.
func (c *textCache) size(s string, scale float64) (w, h float64) {
	return float64(len(s)*glyphW) * scale, glyphH * scale
}

// draw renders s with its top-left corner at (x, y).
func (c *textCache) draw(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(c.image(s), op)
}
