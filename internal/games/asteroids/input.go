package asteroids

import "github.com/vovakirdan/arcade-sim/internal/core"

// IntentKind is the kind of ship command produced from a key event.
type IntentKind int

const (
	IntentThrust    IntentKind = iota // Add one thrust increment along the heading
	IntentCutThrust                   // Zero the thrust vector
	IntentRotate                      // Turn by one rotation step in Dir
	IntentFire                        // Spawn one bullet
)

// Intent is a queued ship command.
type Intent struct {
	Kind IntentKind
	Dir  int // -1 left, +1 right (IntentRotate only)
}

// TranslateKey maps a key event to a ship intent.
// Keys without a meaning in this game (and key-ups other than thrust) return false.
func TranslateKey(ev core.KeyEvent) (Intent, bool) {
	if ev.Action == core.KeyReleased {
		if ev.Key == core.KeyUp {
			return Intent{Kind: IntentCutThrust}, true
		}
		return Intent{}, false
	}

	switch ev.Key {
	case core.KeyUp:
		return Intent{Kind: IntentThrust}, true
	case core.KeyLeft:
		return Intent{Kind: IntentRotate, Dir: -1}, true
	case core.KeyRight:
		return Intent{Kind: IntentRotate, Dir: 1}, true
	case core.KeyFire:
		return Intent{Kind: IntentFire}, true
	}
	return Intent{}, false
}

// Enqueue translates and queues a key event. Unknown keys are dropped.
func (w *World) Enqueue(ev core.KeyEvent) {
	if in, ok := TranslateKey(ev); ok {
		w.queue = append(w.queue, in)
	}
}

// drainIntents applies queued intents in arrival order and empties the queue.
//
// Thrust accumulates: every key-down adds another increment, including
// auto-repeated ones, and only a key-up resets it. Rotation is a fixed step
// per key-down, so the turn rate follows the platform's key repeat rate.
func (w *World) drainIntents() []core.Event {
	var events []core.Event
	s := w.Ship

	for _, in := range w.queue {
		switch in.Kind {
		case IntentThrust:
			s.Thrust = s.Thrust.Add(core.FromAngle(s.Angle, w.cfg.Ship.Thrust))
		case IntentCutThrust:
			s.Thrust = core.Vec2{}
		case IntentRotate:
			s.Angle += float64(in.Dir) * s.RotationSpeed
		case IntentFire:
			w.Bullets = append(w.Bullets, NewBullet(s.Pos, s.Angle, w.cfg.Bullet.Speed))
			events = append(events, core.Event{Type: core.EventBulletFired, X: s.Pos.X, Y: s.Pos.Y})
		}
	}
	w.queue = w.queue[:0]
	return events
}
