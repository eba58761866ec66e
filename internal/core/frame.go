package core

// ReferenceFrameMs is the frame length the unscaled motion constants assume (60 FPS).
const ReferenceFrameMs = 1000.0 / 60.0

// Frame is what the frame driver hands to a game once per display refresh.
type Frame struct {
	Time  float64 // Monotonic timestamp in milliseconds
	Delta float64 // Milliseconds since the previous frame (advisory)
	Input InputFrame
}

// MotionScale returns the multiplier for per-frame motion.
// Unscaled simulation always moves a fixed amount per frame.
func (f Frame) MotionScale(scaleByDelta bool) float64 {
	if !scaleByDelta || f.Delta <= 0 {
		return 1
	}
	return f.Delta / ReferenceFrameMs
}

// EventType identifies something that happened during a frame.
type EventType int

const (
	EventAsteroidSpawned EventType = iota
	EventAsteroidDestroyed
	EventBulletFired
	EventBulletExpired
	EventBrickDestroyed
	EventPaddleBounce
	EventGameOver
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventAsteroidSpawned:
		return "asteroid_spawned"
	case EventAsteroidDestroyed:
		return "asteroid_destroyed"
	case EventBulletFired:
		return "bullet_fired"
	case EventBulletExpired:
		return "bullet_expired"
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventPaddleBounce:
		return "paddle_bounce"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a frame event reported to the platform.
type Event struct {
	Type EventType
	X, Y float64 // World position where it happened
}
