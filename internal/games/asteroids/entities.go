// Package asteroids implements a minimal asteroids-style shooter: a wrapping
// ship, straight-flying bullets and periodically spawned drifting asteroids.
package asteroids

import (
	"math/rand"

	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
)

// Ship is the player's ship. There is exactly one per session.
type Ship struct {
	Pos           core.Vec2
	Angle         float64   // Heading in radians, 0 = pointing right
	Thrust        core.Vec2 // Added to Pos every frame
	RotationSpeed float64
}

// NewShip creates a motionless ship at the center of a w×h playfield.
func NewShip(w, h, rotationSpeed float64) *Ship {
	return &Ship{
		Pos:           core.V(w/2, h/2),
		RotationSpeed: rotationSpeed,
	}
}

// Update moves the ship by its thrust and wraps each axis independently.
func (s *Ship) Update(w, h, scale float64) {
	s.Pos = s.Pos.Add(s.Thrust.Scale(scale))
	s.Pos.X = core.Wrap(s.Pos.X, w)
	s.Pos.Y = core.Wrap(s.Pos.Y, h)
}

// Bullet flies in a straight line along the heading it was fired with.
type Bullet struct {
	Pos    core.Vec2
	Angle  float64
	Speed  float64
	Remove bool
}

// NewBullet creates a bullet at pos heading along angle.
func NewBullet(pos core.Vec2, angle, speed float64) *Bullet {
	return &Bullet{Pos: pos, Angle: angle, Speed: speed}
}

// Update moves the bullet and flags it once it has left the playfield.
// Bullets never wrap. Returns true if this call flagged the bullet.
func (b *Bullet) Update(w, h, scale float64) bool {
	b.Pos = b.Pos.Add(core.FromAngle(b.Angle, b.Speed*scale))

	if !b.Remove && !b.Pos.InBounds(w, h) {
		b.Remove = true
		return true
	}
	return false
}

// Asteroid drifts at a constant velocity and wraps at the playfield edges.
type Asteroid struct {
	Pos    core.Vec2
	Size   float64 // Outline radius, also the hit distance
	Vel    core.Vec2
	Remove bool
}

// NewAsteroid creates an asteroid with random position, size and velocity.
// RNG draws happen in a fixed order (x, y, size, vx, vy) so seeded runs repeat.
func NewAsteroid(rng *rand.Rand, cfg config.AsteroidsConfig) *Asteroid {
	w, h := cfg.Playfield.Width, cfg.Playfield.Height
	sp := cfg.Asteroids

	x := rng.Float64() * w
	y := rng.Float64() * h
	size := rng.Float64()*(sp.MaxSize-sp.MinSize) + sp.MinSize
	vx := (rng.Float64() - 0.5) * 2 * sp.MaxSpeed
	vy := (rng.Float64() - 0.5) * 2 * sp.MaxSpeed

	return &Asteroid{
		Pos:  core.V(x, y),
		Size: size,
		Vel:  core.V(vx, vy),
	}
}

// Update moves the asteroid and wraps each axis independently.
func (a *Asteroid) Update(w, h, scale float64) {
	a.Pos = a.Pos.Add(a.Vel.Scale(scale))
	a.Pos.X = core.Wrap(a.Pos.X, w)
	a.Pos.Y = core.Wrap(a.Pos.Y, h)
}
