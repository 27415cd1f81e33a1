package blockfall

// BannerKind is the shape of one cell of the menu banner.
type BannerKind uint8

const (
	BannerEmpty BannerKind = iota
	BannerBlock
	BannerCornerBottomLeft // Stroke ends; only the terminal draws them
	BannerCornerBottomRight
	BannerCornerTopLeft
	BannerCornerTopRight
)

// playBanner spells PLAY in block letters.
var playBanner = [5][15]BannerKind{
	{1, 1, 5, 0, 1, 0, 0, 0, 4, 1, 5, 0, 1, 0, 1},
	{1, 0, 1, 0, 1, 0, 0, 0, 1, 0, 1, 0, 1, 0, 1},
	{1, 1, 3, 0, 1, 0, 0, 0, 1, 1, 1, 0, 2, 1, 3},
	{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 1, 0, 0, 1, 0},
	{1, 0, 0, 0, 1, 1, 5, 0, 1, 0, 1, 0, 0, 1, 0},
}

// BannerSize returns the banner dimensions in cells.
func BannerSize() (cols, rows int) {
	return len(playBanner[0]), len(playBanner)
}

// BannerAt returns the banner cell at (col, row), or BannerEmpty outside it.
func BannerAt(col, row int) BannerKind {
	if row < 0 || row >= len(playBanner) || col < 0 || col >= len(playBanner[row]) {
		return BannerEmpty
	}
	return playBanner[row][col]
}

// Glow ramps a highlight channel while the pointer hovers the banner.
type Glow struct {
	level float64
}

// Glow rates per reference frame.
const (
	glowRise = 1.0
	glowFall = 0.2
	glowMax  = 255.0
)

// Advance moves the glow up while hovered and back down otherwise.
func (g *Glow) Advance(hovered bool, frames float64) {
	if hovered {
		g.level = min(g.level+glowRise*frames, glowMax)
		return
	}
	g.level = max(g.level-glowFall*frames, 0)
}

// Level returns the highlight intensity in [0, 255].
func (g *Glow) Level() uint8 {
	return uint8(g.level)
}
