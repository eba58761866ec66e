package asteroids

import (
	"fmt"

	"github.com/vovakirdan/arcade-sim/internal/core"
)

// Visual characters for rendering
const (
	ShipChar     = '*'
	BulletChar   = '•'
	AsteroidChar = 'o'
)

// shipOutline is the ship polygon in ship-local coordinates, nose along +X.
var shipOutline = []core.Vec2{
	{X: 10, Y: 0},
	{X: -10, Y: -7},
	{X: -5, Y: 0},
	{X: -10, Y: 7},
}

// Render draws the HUD on row 0 and the playfield below it.
func (g *Game) Render(dst *core.Screen) {
	w := g.world

	hud := fmt.Sprintf("Destroyed: %d  Asteroids: %d  Bullets: %d", w.Destroyed(), len(w.Asteroids), len(w.Bullets))
	dst.DrawText(1, 0, hud)

	vp := core.NewViewport(w.Width, w.Height, core.NewRect(0, 1, dst.Width(), dst.Height()-1))

	for _, a := range w.Asteroids {
		cx, cy := vp.ToScreen(a.Pos)
		dst.DrawEllipse(cx, cy, vp.ScaleX(a.Size), vp.ScaleY(a.Size), AsteroidChar, core.ColorGray)
	}

	for _, b := range w.Bullets {
		x, y := vp.ToCell(b.Pos)
		dst.SetColor(x, y, BulletChar, core.ColorBrightYellow)
	}

	drawShip(dst, vp, w.Ship)
}

// drawShip rotates the outline by the heading, translates it to the ship
// position and strokes the closed polygon.
func drawShip(dst *core.Screen, vp core.Viewport, s *Ship) {
	n := len(shipOutline)
	for i := range n {
		p0 := s.Pos.Add(shipOutline[i].Rotate(s.Angle))
		p1 := s.Pos.Add(shipOutline[(i+1)%n].Rotate(s.Angle))
		x0, y0 := vp.ToCell(p0)
		x1, y1 := vp.ToCell(p1)
		dst.DrawLine(x0, y0, x1, y1, ShipChar, core.ColorBrightWhite)
	}
}
