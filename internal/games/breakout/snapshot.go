package breakout

import "math"

// Snapshot is a flat copy of the session state for determinism checks.
// Uses primitive types only.
type Snapshot struct {
	Frames    int
	Destroyed int
	Over      bool

	// Ball: X, Y, DX, DY
	Ball [4]float64

	// Paddle: X, DX
	Paddle [2]float64

	// Brick statuses in grid order
	Bricks []int
}

// Snapshot returns the current session state.
func (w *World) Snapshot() Snapshot {
	b := w.Ball
	snap := Snapshot{
		Frames:    w.frames,
		Destroyed: w.destroyed,
		Over:      w.over,
		Ball:      [4]float64{b.X, b.Y, b.DX, b.DY},
		Paddle:    [2]float64{w.Paddle.X, w.Paddle.DX},
		Bricks:    make([]int, len(w.Bricks)),
	}
	for i := range w.Bricks {
		snap.Bricks[i] = int(w.Bricks[i].Status)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frames)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Destroyed) //#nosec G115 -- hash computation
	if snap.Over {
		h = h*31 + 1
	}

	for _, v := range snap.Ball {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.Paddle {
		h = h*31 + math.Float64bits(v)
	}
	for _, s := range snap.Bricks {
		h = h*31 + uint64(s) //#nosec G115 -- hash computation
	}
	return h
}
