package tui

import (
	"slices"
	"time"

	"github.com/vovakirdan/arcade-sim/internal/core"
)

// DefaultReleaseAfter is how long a key may go without repeating before it
// counts as released. It must outlast the terminal's auto-repeat start delay
// (commonly 250-600ms), or a held key is released before its first repeat.
const DefaultReleaseAfter = 500 * time.Millisecond

// ReleaseTracker synthesizes key-up events. Terminals only report presses
// (repeated while a key is held), so a key that stops repeating for longer
// than the timeout is treated as released.
type ReleaseTracker struct {
	after time.Duration
	held  map[core.Key]time.Time // Last key-down per held key
}

// NewReleaseTracker creates a tracker with the given release timeout.
// A non-positive timeout uses DefaultReleaseAfter.
func NewReleaseTracker(after time.Duration) *ReleaseTracker {
	if after <= 0 {
		after = DefaultReleaseAfter
	}
	return &ReleaseTracker{
		after: after,
		held:  make(map[core.Key]time.Time),
	}
}

// Press records a key-down at now and returns the event to deliver.
// Repeats of a held key are delivered as further key-downs.
func (r *ReleaseTracker) Press(k core.Key, now time.Time) core.KeyEvent {
	r.held[k] = now
	return core.Down(k)
}

// Expire returns a key-up for every held key whose last press is older than
// the timeout, in key order.
func (r *ReleaseTracker) Expire(now time.Time) []core.KeyEvent {
	var expired []core.Key
	for k, last := range r.held {
		if now.Sub(last) >= r.after {
			expired = append(expired, k)
		}
	}
	return r.release(expired)
}

// ReleaseAll returns a key-up for every held key, in key order.
func (r *ReleaseTracker) ReleaseAll() []core.KeyEvent {
	keys := make([]core.Key, 0, len(r.held))
	for k := range r.held {
		keys = append(keys, k)
	}
	return r.release(keys)
}

// Held reports whether k is currently considered held.
func (r *ReleaseTracker) Held(k core.Key) bool {
	_, ok := r.held[k]
	return ok
}

func (r *ReleaseTracker) release(keys []core.Key) []core.KeyEvent {
	if len(keys) == 0 {
		return nil
	}
	slices.Sort(keys)
	events := make([]core.KeyEvent, 0, len(keys))
	for _, k := range keys {
		delete(r.held, k)
		events = append(events, core.Up(k))
	}
	return events
}
