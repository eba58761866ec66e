package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/arcade-sim/internal/core"
)

func TestReleaseTrackerExpire(t *testing.T) {
	t0 := time.Unix(0, 0)
	r := NewReleaseTracker(200 * time.Millisecond)

	if ev := r.Press(core.KeyUp, t0); ev != core.Down(core.KeyUp) {
		t.Fatalf("Press() = %v, expected key-down", ev)
	}
	// Auto-repeat keeps the key held
	r.Press(core.KeyUp, t0.Add(150*time.Millisecond))

	if ups := r.Expire(t0.Add(300 * time.Millisecond)); len(ups) != 0 {
		t.Errorf("key repeated 150ms ago should still be held, got %v", ups)
	}

	ups := r.Expire(t0.Add(350 * time.Millisecond))
	if len(ups) != 1 || ups[0] != core.Up(core.KeyUp) {
		t.Fatalf("Expire() = %v, expected one up key-up", ups)
	}
	if r.Held(core.KeyUp) {
		t.Error("expired key should no longer be held")
	}

	// Already released, nothing more to report
	if ups := r.Expire(t0.Add(time.Second)); len(ups) != 0 {
		t.Errorf("Expire() reported %v twice", ups)
	}
}

func TestDefaultReleaseOutlastsRepeatDelay(t *testing.T) {
	t0 := time.Unix(0, 0)
	r := NewReleaseTracker(0)
	r.Press(core.KeyUp, t0)

	// No repeat has arrived yet: typical start delays run up to 500ms
	if ups := r.Expire(t0.Add(400 * time.Millisecond)); len(ups) != 0 {
		t.Errorf("key released before the first auto-repeat: %v", ups)
	}
	r.Press(core.KeyUp, t0.Add(450*time.Millisecond))
	if ups := r.Expire(t0.Add(900 * time.Millisecond)); len(ups) != 0 {
		t.Errorf("key repeated 450ms ago should still be held, got %v", ups)
	}
	if ups := r.Expire(t0.Add(950 * time.Millisecond)); len(ups) != 1 {
		t.Errorf("Expire() = %v, expected the key released", ups)
	}
}

func TestReleaseTrackerOrder(t *testing.T) {
	t0 := time.Unix(0, 0)
	r := NewReleaseTracker(0)

	r.Press(core.KeyFire, t0)
	r.Press(core.KeyLeft, t0)
	r.Press(core.KeyUp, t0)

	ups := r.Expire(t0.Add(DefaultReleaseAfter))
	want := []core.KeyEvent{core.Up(core.KeyUp), core.Up(core.KeyLeft), core.Up(core.KeyFire)}
	if len(ups) != len(want) {
		t.Fatalf("Expire() = %v, expected %v", ups, want)
	}
	for i := range want {
		if ups[i] != want[i] {
			t.Errorf("Expire()[%d] = %v, expected %v", i, ups[i], want[i])
		}
	}
}

func TestReleaseAll(t *testing.T) {
	t0 := time.Unix(0, 0)
	r := NewReleaseTracker(time.Hour)
	r.Press(core.KeyRight, t0)
	r.Press(core.KeyUp, t0)

	ups := r.ReleaseAll()
	if len(ups) != 2 || ups[0] != core.Up(core.KeyUp) || ups[1] != core.Up(core.KeyRight) {
		t.Errorf("ReleaseAll() = %v", ups)
	}
	if r.Held(core.KeyUp) || r.Held(core.KeyRight) {
		t.Error("ReleaseAll() should clear held keys")
	}
}
