package asteroids

import (
	"math/rand"

	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
)

// World is the complete mutable state of one session.
// It is created at session start and replaced wholesale on restart.
type World struct {
	Width, Height float64

	Ship      *Ship
	Bullets   []*Bullet
	Asteroids []*Asteroid

	spawner *Spawner
	rng     *rand.Rand
	queue   []Intent
	cfg     config.AsteroidsConfig

	scaleByDelta bool
	frames       int
	destroyed    int
}

// NewWorld creates a fresh session with a centered ship, no bullets and no asteroids.
func NewWorld(cfg config.AsteroidsConfig, seed int64, scaleByDelta bool) *World {
	w, h := cfg.Playfield.Width, cfg.Playfield.Height
	return &World{
		Width:        w,
		Height:       h,
		Ship:         NewShip(w, h, cfg.Ship.RotationSpeed),
		Bullets:      make([]*Bullet, 0, 32),
		Asteroids:    make([]*Asteroid, 0, 16),
		spawner:      NewSpawner(cfg.Asteroids.IntervalMs),
		rng:          rand.New(rand.NewSource(seed)),
		cfg:          cfg,
		scaleByDelta: scaleByDelta,
	}
}

// Step runs one frame in fixed order: queued input, spawn gate, motion,
// collision pass, then compaction of everything flagged for removal.
func (w *World) Step(frame core.Frame) []core.Event {
	for _, ev := range frame.Input.Events() {
		w.Enqueue(ev)
	}
	events := w.drainIntents()

	w.frames++
	scale := frame.MotionScale(w.scaleByDelta)

	if w.spawner.Ready(frame.Time) {
		a := NewAsteroid(w.rng, w.cfg)
		w.Asteroids = append(w.Asteroids, a)
		events = append(events, core.Event{Type: core.EventAsteroidSpawned, X: a.Pos.X, Y: a.Pos.Y})
	}

	w.Ship.Update(w.Width, w.Height, scale)
	for _, b := range w.Bullets {
		if b.Update(w.Width, w.Height, scale) {
			events = append(events, core.Event{Type: core.EventBulletExpired, X: b.Pos.X, Y: b.Pos.Y})
		}
	}
	for _, a := range w.Asteroids {
		a.Update(w.Width, w.Height, scale)
	}

	ResolveCollisions(w.Bullets, w.Asteroids)

	w.Bullets = compactBullets(w.Bullets)
	w.Asteroids = compactAsteroids(w.Asteroids, func(a *Asteroid) {
		w.destroyed++
		events = append(events, core.Event{Type: core.EventAsteroidDestroyed, X: a.Pos.X, Y: a.Pos.Y})
	})

	return events
}

// Destroyed returns how many asteroids have been shot this session.
func (w *World) Destroyed() int {
	return w.destroyed
}

// Frames returns how many frames this session has run.
func (w *World) Frames() int {
	return w.frames
}

// NextAsteroidTime returns the timestamp after which the next asteroid spawns.
func (w *World) NextAsteroidTime() float64 {
	return w.spawner.Next
}
