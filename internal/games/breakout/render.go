package breakout

import (
	"fmt"

	"github.com/vovakirdan/arcade-sim/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
)

// BrickGlyphs are cycled through by row.
var BrickGlyphs = []rune{'█', '▓', '▒', '░'}

// brickColors are cycled through by row.
var brickColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
}

// Render draws the HUD on row 0 and the playfield below it.
func (g *Game) Render(dst *core.Screen) {
	w := g.world

	hud := fmt.Sprintf("Bricks: %d/%d  Score: %d", w.ActiveBricks(), len(w.Bricks), w.Destroyed())
	dst.DrawText(1, 0, hud)

	vp := core.NewViewport(w.Width, w.Height, core.NewRect(0, 1, dst.Width(), dst.Height()-1))
	bw, bh := w.cfg.Bricks.Width, w.cfg.Bricks.Height

	for i := range w.Bricks {
		br := &w.Bricks[i]
		if br.Status != BrickActive {
			continue
		}
		glyph := BrickGlyphs[br.Row%len(BrickGlyphs)]
		color := brickColors[br.Row%len(brickColors)]
		dst.DrawRect(vp.RectCells(br.X, br.Y, bw, bh), glyph, color)
	}

	p := w.Paddle
	dst.DrawRect(vp.RectCells(p.X, p.Y, p.Width, p.Height), PaddleChar, core.ColorCyan)

	bx, by := vp.ToCell(core.V(w.Ball.X, w.Ball.Y))
	dst.SetColor(bx, by, BallChar, core.ColorBrightWhite)
}
