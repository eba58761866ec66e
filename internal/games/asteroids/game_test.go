package asteroids

import (
	"math"
	"testing"

	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("asteroids") {
		t.Fatal("asteroids should self-register")
	}
	g, err := registry.Create("asteroids")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "asteroids" || g.Title() != "Asteroids" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestGameStepReportsScore(t *testing.T) {
	g := newTestGame(t)
	g.World().Asteroids = append(g.World().Asteroids, &Asteroid{Pos: core.V(500, 300), Size: 60})
	g.World().Bullets = append(g.World().Bullets, NewBullet(core.V(440, 300), 0, 10))

	res := g.Step(frameAt(0))

	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}
	if res.State.GameOver {
		t.Error("asteroids has no game over")
	}
	if countEvents(res.Events, core.EventAsteroidDestroyed) != 1 {
		t.Error("expected asteroid_destroyed event")
	}
}

func TestResetStartsFresh(t *testing.T) {
	g := newTestGame(t)
	g.Step(frameAt(100, core.Down(core.KeyFire), core.Down(core.KeyUp)))

	g.Reset(core.RuntimeConfig{Seed: 42})

	w := g.World()
	if w.Frames() != 0 || len(w.Bullets) != 0 || len(w.Asteroids) != 0 {
		t.Errorf("Reset() left state behind: frames=%d bullets=%d asteroids=%d", w.Frames(), len(w.Bullets), len(w.Asteroids))
	}
	if w.Ship.Pos != core.V(400, 300) {
		t.Errorf("ship pos = %+v, expected center", w.Ship.Pos)
	}
}

func TestRenderDrawsEntities(t *testing.T) {
	g := newTestGame(t)
	w := g.World()
	w.Bullets = append(w.Bullets, NewBullet(core.V(100, 100), 0, 10))
	w.Asteroids = append(w.Asteroids, &Asteroid{Pos: core.V(650, 450), Size: 80})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	vp := core.NewViewport(800, 600, core.NewRect(0, 1, 80, 23))

	bx, by := vp.ToCell(core.V(100, 100))
	if screen.Get(bx, by) != BulletChar {
		t.Errorf("expected bullet at (%d, %d), got %q", bx, by, screen.Get(bx, by))
	}
	if screen.GetCell(bx, by).Color != core.ColorBrightYellow {
		t.Error("bullet should be bright yellow")
	}

	sx, sy := vp.ToCell(core.V(410, 300))
	if screen.Get(sx, sy) != ShipChar {
		t.Errorf("expected ship nose at (%d, %d), got %q", sx, sy, screen.Get(sx, sy))
	}

	ax, ay := vp.ToCell(core.V(650+80, 450))
	found := false
	for dx := -1; dx <= 1 && !found; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if screen.Get(ax+dx, ay+dy) == AsteroidChar {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected asteroid outline near its rightmost point")
	}

	if row := screen.Row(0); len(row) == 0 || row[1] != 'D' {
		t.Errorf("HUD row = %q, expected score line", row)
	}
}

func TestShipOutlineRotates(t *testing.T) {
	nose := shipOutline[0].Rotate(math.Pi / 2)
	if math.Abs(nose.X) > eps || math.Abs(nose.Y-10) > eps {
		t.Errorf("rotated nose = %+v, expected {0 10}", nose)
	}
}

func TestStateHashTracksWorld(t *testing.T) {
	g := newTestGame(t)
	h0 := g.StateHash()

	g.Step(frameAt(0, core.Down(core.KeyUp)))

	if g.StateHash() == h0 {
		t.Error("StateHash() should change when the session changes")
	}
}
