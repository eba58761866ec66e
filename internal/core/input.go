package core

// Key identifies a logical game key, abstracted from physical terminal keys.
type Key int

const (
	KeyNone  Key = iota
	KeyUp        // Up arrow, W - thrust
	KeyLeft      // Left arrow, A - rotate left / paddle left
	KeyRight     // Right arrow, D - rotate right / paddle right
	KeyFire      // Space - fire
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyFire:
		return "Fire"
	default:
		return "Unknown"
	}
}

// KeyAction distinguishes press from release.
type KeyAction int

const (
	KeyPressed KeyAction = iota
	KeyReleased
)

func (a KeyAction) String() string {
	if a == KeyReleased {
		return "up"
	}
	return "down"
}

// KeyEvent is a single discrete key-down or key-up event.
type KeyEvent struct {
	Key    Key
	Action KeyAction
}

// Down returns a key-down event for k.
func Down(k Key) KeyEvent {
	return KeyEvent{Key: k, Action: KeyPressed}
}

// Up returns a key-up event for k.
func Up(k Key) KeyEvent {
	return KeyEvent{Key: k, Action: KeyReleased}
}

// InputFrame holds the key events delivered between two frames, in arrival order.
// Duplicate key-downs (terminal auto-repeat) are kept as separate events.
type InputFrame struct {
	events []KeyEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(events ...KeyEvent) InputFrame {
	f := InputFrame{}
	for _, ev := range events {
		f.Push(ev)
	}
	return f
}

// Push appends an event to the frame.
func (f *InputFrame) Push(ev KeyEvent) {
	f.events = append(f.events, ev)
}

// Events returns the events of this frame in arrival order.
func (f InputFrame) Events() []KeyEvent {
	return f.events
}

// Len returns the number of events in the frame.
func (f InputFrame) Len() int {
	return len(f.events)
}

// Clear drops all events for the next frame.
func (f *InputFrame) Clear() {
	f.events = f.events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{events: make([]KeyEvent, len(f.events))}
	copy(clone.events, f.events)
	return clone
}
