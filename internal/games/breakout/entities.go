// Package breakout implements a single-screen paddle and brick clone: one ball,
// one paddle, a fixed brick grid, and a session that ends when the ball is missed.
package breakout

import (
	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
)

// Paddle is the player-controlled bar at the bottom of the playfield.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	DX            float64 // One of -speed, 0, +speed
}

// NewPaddle creates a paddle centered horizontally and resting on the bottom edge.
func NewPaddle(fieldW, fieldH float64, cfg config.BreakoutPaddle) *Paddle {
	return &Paddle{
		X:      (fieldW - cfg.Width) / 2,
		Y:      fieldH - cfg.Height,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}

// Update moves the paddle by its velocity and clamps it into [0, fieldW-Width].
func (p *Paddle) Update(fieldW, scale float64) {
	p.X += p.DX * scale
	p.X = core.ClampF(p.X, 0, fieldW-p.Width)
}

// Spans reports whether x lies strictly inside the paddle's horizontal extent.
func (p *Paddle) Spans(x float64) bool {
	return x > p.X && x < p.X+p.Width
}

// Ball is the single bouncing ball.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
}

// NewBall creates the ball at its serve position above the paddle.
func NewBall(fieldW, fieldH float64, cfg config.BreakoutBall) *Ball {
	return &Ball{
		X:      fieldW / 2,
		Y:      fieldH - cfg.StartOffset,
		DX:     cfg.DX,
		DY:     cfg.DY,
		Radius: cfg.Radius,
	}
}

// BrickStatus is the state of a single grid cell.
type BrickStatus int

// Brick statuses. A destroyed brick stays in the grid.
const (
	BrickDestroyed BrickStatus = 0
	BrickActive    BrickStatus = 1
)

// Brick is one cell of the fixed brick grid.
type Brick struct {
	Col, Row int
	X, Y     float64
	Status   BrickStatus
}

// Contains reports whether (x, y) lies strictly inside a w×h brick.
func (b *Brick) Contains(x, y, w, h float64) bool {
	return x > b.X && x < b.X+w && y > b.Y && y < b.Y+h
}

// NewBricks lays out the full grid in column-major order, every brick active.
func NewBricks(cfg config.BreakoutBricks) []Brick {
	bricks := make([]Brick, 0, cfg.Columns*cfg.Rows)
	for c := range cfg.Columns {
		for r := range cfg.Rows {
			bricks = append(bricks, Brick{
				Col:    c,
				Row:    r,
				X:      float64(c)*(cfg.Width+cfg.Padding) + cfg.OffsetLeft,
				Y:      float64(r)*(cfg.Height+cfg.Padding) + cfg.OffsetTop,
				Status: BrickActive,
			})
		}
	}
	return bricks
}
