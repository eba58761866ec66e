package asteroids

// Spawner is a fixed-rate gate for asteroid creation.
// At most one asteroid passes per checked frame; missed intervals are not
// made up, a late frame simply restarts the interval from its own timestamp.
type Spawner struct {
	Interval float64 // Milliseconds between spawns
	Next     float64 // Timestamp after which the next spawn is allowed
}

// NewSpawner creates a gate that opens on the first frame with a positive timestamp.
func NewSpawner(interval float64) *Spawner {
	return &Spawner{Interval: interval}
}

// Ready reports whether a spawn is due at timestamp and, if so, re-arms the gate.
func (s *Spawner) Ready(timestamp float64) bool {
	if timestamp > s.Next {
		s.Next = timestamp + s.Interval
		return true
	}
	return false
}
