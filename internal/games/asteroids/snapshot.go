package asteroids

import "math"

// Snapshot is a flat copy of the session state for determinism checks.
// Uses primitive types only.
type Snapshot struct {
	Frames           int
	Destroyed        int
	NextAsteroidTime float64

	// Ship: X, Y, Angle, ThrustX, ThrustY
	Ship [5]float64

	// Each bullet is 3 floats: X, Y, Angle
	BulletData []float64

	// Each asteroid is 5 floats: X, Y, Size, VX, VY
	AsteroidData []float64
}

// Snapshot returns the current session state.
func (w *World) Snapshot() Snapshot {
	s := w.Ship
	snap := Snapshot{
		Frames:           w.frames,
		Destroyed:        w.destroyed,
		NextAsteroidTime: w.spawner.Next,
		Ship:             [5]float64{s.Pos.X, s.Pos.Y, s.Angle, s.Thrust.X, s.Thrust.Y},
		BulletData:       make([]float64, 0, len(w.Bullets)*3),
		AsteroidData:     make([]float64, 0, len(w.Asteroids)*5),
	}

	for _, b := range w.Bullets {
		snap.BulletData = append(snap.BulletData, b.Pos.X, b.Pos.Y, b.Angle)
	}
	for _, a := range w.Asteroids {
		snap.AsteroidData = append(snap.AsteroidData, a.Pos.X, a.Pos.Y, a.Size, a.Vel.X, a.Vel.Y)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frames)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Destroyed) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.NextAsteroidTime)

	for _, v := range snap.Ship {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.BulletData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.AsteroidData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
