package core

import "math"

// Viewport projects a world-space playfield onto a rectangle of screen cells.
type Viewport struct {
	WorldW, WorldH float64
	Area           Rect
}

// NewViewport maps a worldW×worldH playfield onto area.
func NewViewport(worldW, worldH float64, area Rect) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, Area: area}
}

// sx and sy are cells per world unit on each axis.
func (v Viewport) sx() float64 {
	if v.WorldW <= 0 {
		return 0
	}
	return float64(v.Area.W) / v.WorldW
}

func (v Viewport) sy() float64 {
	if v.WorldH <= 0 {
		return 0
	}
	return float64(v.Area.H) / v.WorldH
}

// ToScreen returns fractional cell coordinates for a world position.
func (v Viewport) ToScreen(p Vec2) (float64, float64) {
	return float64(v.Area.X) + p.X*v.sx(), float64(v.Area.Y) + p.Y*v.sy()
}

// ToCell returns the cell containing a world position.
// The far edges of the world map onto the last row/column of the area.
func (v Viewport) ToCell(p Vec2) (int, int) {
	fx, fy := v.ToScreen(p)
	x := int(math.Floor(fx))
	y := int(math.Floor(fy))
	if x == v.Area.Right() && p.X <= v.WorldW {
		x--
	}
	if y == v.Area.Bottom() && p.Y <= v.WorldH {
		y--
	}
	return x, y
}

// ScaleX converts a horizontal world length to cells.
func (v Viewport) ScaleX(l float64) float64 {
	return l * v.sx()
}

// ScaleY converts a vertical world length to cells.
func (v Viewport) ScaleY(l float64) float64 {
	return l * v.sy()
}

// RectCells converts a world-space rectangle to the cells it covers (at least 1×1).
func (v Viewport) RectCells(x, y, w, h float64) Rect {
	x0, y0 := v.ToCell(V(x, y))
	x1 := int(math.Ceil(float64(v.Area.X) + (x+w)*v.sx()))
	y1 := int(math.Ceil(float64(v.Area.Y) + (y+h)*v.sy()))
	r := NewRect(x0, y0, x1-x0, y1-y0)
	if r.W < 1 {
		r.W = 1
	}
	if r.H < 1 {
		r.H = 1
	}
	return r
}
