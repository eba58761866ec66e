package breakout

import "github.com/vovakirdan/arcade-sim/internal/core"

// Intent is a queued paddle command: set the paddle velocity to DX.
type Intent struct {
	DX float64
}

// TranslateKey maps a key event to a paddle intent for a paddle of the given speed.
// Left/right key-down selects a direction, key-up of either stops the paddle.
// The last event wins; velocities never accumulate.
func TranslateKey(ev core.KeyEvent, speed float64) (Intent, bool) {
	if ev.Key != core.KeyLeft && ev.Key != core.KeyRight {
		return Intent{}, false
	}
	if ev.Action == core.KeyReleased {
		return Intent{DX: 0}, true
	}
	if ev.Key == core.KeyLeft {
		return Intent{DX: -speed}, true
	}
	return Intent{DX: speed}, true
}

// Enqueue translates and queues a key event. Unknown keys are dropped.
func (w *World) Enqueue(ev core.KeyEvent) {
	if in, ok := TranslateKey(ev, w.cfg.Paddle.Speed); ok {
		w.queue = append(w.queue, in)
	}
}

// drainIntents applies queued intents in arrival order and empties the queue.
func (w *World) drainIntents() {
	for _, in := range w.queue {
		w.Paddle.DX = in.DX
	}
	w.queue = w.queue[:0]
}
