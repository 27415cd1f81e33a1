package blockfall

import (
	"fmt"
	"math"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

const (
	cellWidth = 2  // Terminal columns per board cell
	hudWidth  = 20 // Columns reserved right of the field
	hudGap    = 2
)

// pieceColors colors the falling piece by type. Settled cells are always green.
var pieceColors = []core.Color{
	core.ColorCyan,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorGreen,
	core.ColorRed,
	core.ColorBlue,
	core.ColorOrange,
}

// debrisGlyphs approximate a spinning block at 0, 45, 90 and 135 degrees.
var debrisGlyphs = []rune{'─', '\\', '│', '/'}

// bannerGlyphs draws each banner cell kind at half a board cell.
var bannerGlyphs = map[BannerKind]rune{
	BannerBlock:             '█',
	BannerCornerBottomLeft:  '▙',
	BannerCornerBottomRight: '▟',
	BannerCornerTopLeft:     '▛',
	BannerCornerTopRight:    '▜',
}

// MinScreenSize returns the smallest terminal that can show a board of the given size.
func MinScreenSize(boardW, boardH int) (w, h int) {
	bannerCols, bannerRows := BannerSize()
	w = max(boardW*cellWidth+2+hudGap+hudWidth, bannerCols*cellWidth+2)
	h = max(boardH+3, bannerRows+8)
	return w, h
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	boardW, boardH := g.session.BoardSize()
	minW, minH := MinScreenSize(boardW, boardH)
	if dst.Width() < minW || dst.Height() < minH {
		g.tooSmall = true
		g.renderTooSmall(dst, minW, minH)
		return
	}
	g.tooSmall = false

	if g.session.Mode() == engine.ModeMenu {
		g.renderMenu(dst)
		return
	}

	fieldW := boardW*cellWidth + 2
	fieldH := boardH + 2
	totalW := fieldW + hudGap + hudWidth
	x0 := (dst.Width() - totalW) / 2
	y0 := (dst.Height() - fieldH - 1) / 2

	dst.DrawTextColor(x0, y0, "BLOCKFALL", core.ColorBrightWhite)
	field := core.NewRect(x0, y0+1, fieldW, fieldH)

	g.renderField(dst, field)
	g.renderDebris(dst, field)
	g.renderHUD(dst, field.Right()+hudGap, field.Y)
	g.renderOverlays(dst, field)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen, minW, minH int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorYellow)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH), core.ColorDefault)
}

// renderMenu draws the PLAY banner and the difficulty level.
func (g *Game) renderMenu(dst *core.Screen) {
	cols, rows := BannerSize()
	bx := (dst.Width() - cols*cellWidth) / 2
	by := (dst.Height()-rows)/2 - 2

	for row := range rows {
		for col := range cols {
			glyph, ok := bannerGlyphs[BannerAt(col, row)]
			if !ok {
				continue
			}
			x := bx + col*cellWidth
			dst.SetWithColor(x, by+row, glyph, core.ColorGreen)
			dst.SetWithColor(x+1, by+row, glyph, core.ColorGreen)
		}
	}

	dst.DrawTextCentered(by+rows+2, fmt.Sprintf("Difficulty %d", g.cfg.Difficulty.Level), core.ColorBrightWhite)
	dst.DrawTextCentered(by+rows+4, "Press Enter to play", core.ColorGray)
}

// renderField draws the border, the grid, settled cells and the falling piece.
func (g *Game) renderField(dst *core.Screen, field core.Rect) {
	dst.DrawBox(field, core.ColorGray)
	inner := field.Inset(1)

	for y := inner.Y; y < inner.Bottom(); y++ {
		for x := inner.X; x < inner.Right(); x += cellWidth {
			dst.SetWithColor(x+1, y, '·', core.ColorGray)
		}
	}

	for _, c := range g.session.SettledCells() {
		drawCell(dst, inner, c, core.ColorGreen)
	}

	if piece, ok := g.session.ActivePiece(); ok && g.session.Mode() == engine.ModePlaying {
		color := pieceColors[int(piece.Type)%len(pieceColors)]
		for _, c := range g.session.ActiveCells() {
			drawCell(dst, inner, c, color)
		}
	}
}

// renderDebris maps particles from pixel space onto terminal cells.
func (g *Game) renderDebris(dst *core.Screen, field core.Rect) {
	s := g.session.Settings()
	inner := field.Inset(1)
	size := float64(s.BlockSize)

	for _, p := range g.session.Debris() {
		col := int(math.Floor((p.X - float64(s.OffsetX)) / size))
		row := int(math.Floor((p.Y - float64(s.OffsetY)) / size))
		x := inner.X + col*cellWidth
		y := inner.Y + row
		glyph := debrisGlyph(p.Angle)
		dst.SetWithColor(x, y, glyph, core.ColorGreen)
		dst.SetWithColor(x+1, y, glyph, core.ColorGreen)
	}
}

// renderHUD draws score and stats to the right of the field.
func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	lines := []struct {
		label string
		value string
	}{
		{"Score", fmt.Sprintf("%d", g.DisplayedScore())},
		{"Lines", fmt.Sprintf("%d", g.session.Lines())},
		{"Pieces", fmt.Sprintf("%d", g.session.Pieces())},
		{"Level", fmt.Sprintf("%d", g.cfg.Difficulty.Level)},
		{"Gravity", g.session.FallInterval().String()},
	}

	for i, l := range lines {
		dst.DrawTextColor(x, y+i*2, l.label, core.ColorGray)
		dst.DrawTextColor(x, y+i*2+1, l.value, core.ColorBrightWhite)
	}

	if g.session.SoftDropping() && g.session.Mode() == engine.ModePlaying {
		dst.DrawTextColor(x, y+len(lines)*2+1, "SOFT DROP", core.ColorYellow)
	}
}

// renderOverlays draws pause and game over messages over the field.
func (g *Game) renderOverlays(dst *core.Screen, field core.Rect) {
	mid := field.Y + field.H/2
	center := func(y int, text string, c core.Color) {
		x := field.X + (field.W-len([]rune(text)))/2
		dst.DrawTextColor(x, y, text, c)
	}

	switch {
	case g.session.Mode() == engine.ModeGameOver:
		center(mid-1, "GAME OVER", core.ColorRed)
		center(mid, fmt.Sprintf("Score %d", g.session.Score()), core.ColorBrightWhite)
		center(mid+2, "Enter: again", core.ColorGray)
	case g.session.Paused():
		center(mid, "PAUSED", core.ColorYellow)
	}
}

// drawCell fills one board cell inside the field.
func drawCell(dst *core.Screen, inner core.Rect, c engine.Cell, color core.Color) {
	if c.Row < 0 {
		return
	}
	x := inner.X + c.Col*cellWidth
	dst.SetWithColor(x, inner.Y+c.Row, '█', color)
	dst.SetWithColor(x+1, inner.Y+c.Row, '█', color)
}

// debrisGlyph picks the line glyph closest to the particle's angle in degrees.
func debrisGlyph(angle float64) rune {
	a := math.Mod(angle, 180)
	if a < 0 {
		a += 180
	}
	idx := int(math.Round(a/45)) % len(debrisGlyphs)
	return debrisGlyphs[idx]
}
