package breakout

import (
	"math"

	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
)

// World is the complete mutable state of one session.
// Once the ball is missed the world is terminal; a new session needs a new World.
type World struct {
	Width, Height float64

	Paddle *Paddle
	Ball   *Ball
	Bricks []Brick

	cfg   config.BreakoutConfig
	queue []Intent

	scaleByDelta bool
	frames       int
	destroyed    int
	over         bool
}

// NewWorld creates a fresh session: ball at serve, paddle centered, every brick active.
func NewWorld(cfg config.BreakoutConfig, scaleByDelta bool) *World {
	w, h := cfg.Playfield.Width, cfg.Playfield.Height
	return &World{
		Width:        w,
		Height:       h,
		Paddle:       NewPaddle(w, h, cfg.Paddle),
		Ball:         NewBall(w, h, cfg.Ball),
		Bricks:       NewBricks(cfg.Bricks),
		cfg:          cfg,
		scaleByDelta: scaleByDelta,
	}
}

// Step runs one frame: queued input, ball motion and walls, paddle motion,
// then brick collisions. A terminal world ignores further frames.
func (w *World) Step(frame core.Frame) []core.Event {
	if w.over {
		return nil
	}

	for _, ev := range frame.Input.Events() {
		w.Enqueue(ev)
	}
	w.drainIntents()

	w.frames++
	scale := frame.MotionScale(w.scaleByDelta)

	var events []core.Event

	if ev, ok := w.moveBall(scale); ok {
		events = append(events, ev)
		if w.over {
			return events
		}
	}

	w.Paddle.Update(w.Width, scale)

	events = append(events, w.resolveBricks()...)
	return events
}

// moveBall advances the ball and applies the wall rules to its new position.
// The bottom edge either bounces off the paddle or ends the session.
func (w *World) moveBall(scale float64) (core.Event, bool) {
	b := w.Ball
	b.X += b.DX * scale
	b.Y += b.DY * scale

	// Reflections always point back into the field.
	switch {
	case b.X-b.Radius < 0:
		b.DX = math.Abs(b.DX)
	case b.X+b.Radius > w.Width:
		b.DX = -math.Abs(b.DX)
	}

	switch {
	case b.Y-b.Radius < 0:
		b.DY = math.Abs(b.DY)
	case b.Y+b.Radius > w.Height:
		if w.Paddle.Spans(b.X) {
			b.DY = -math.Abs(b.DY)
			return core.Event{Type: core.EventPaddleBounce, X: b.X, Y: b.Y}, true
		}
		w.over = true
		return core.Event{Type: core.EventGameOver, X: b.X, Y: b.Y}, true
	}
	return core.Event{}, false
}

// resolveBricks tests the ball center against every active brick.
// Each hit reflects DY on its own, so two overlapping hits cancel out.
func (w *World) resolveBricks() []core.Event {
	var events []core.Event
	bw, bh := w.cfg.Bricks.Width, w.cfg.Bricks.Height

	for i := range w.Bricks {
		br := &w.Bricks[i]
		if br.Status != BrickActive {
			continue
		}
		if br.Contains(w.Ball.X, w.Ball.Y, bw, bh) {
			w.Ball.DY = -w.Ball.DY
			br.Status = BrickDestroyed
			w.destroyed++
			events = append(events, core.Event{Type: core.EventBrickDestroyed, X: br.X, Y: br.Y})
		}
	}
	return events
}

// ActiveBricks returns how many bricks are still standing.
func (w *World) ActiveBricks() int {
	n := 0
	for i := range w.Bricks {
		if w.Bricks[i].Status == BrickActive {
			n++
		}
	}
	return n
}

// Destroyed returns how many bricks have been hit this session.
func (w *World) Destroyed() int {
	return w.destroyed
}

// Frames returns how many frames this session has run.
func (w *World) Frames() int {
	return w.frames
}

// Over reports whether the ball has been missed.
func (w *World) Over() bool {
	return w.over
}
