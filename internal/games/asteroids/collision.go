package asteroids

// ResolveCollisions tests every bullet against every asteroid and flags both
// members of each hit pair. A hit is a center distance below the asteroid's
// full Size. Nothing is removed here, so a bullet flagged early in the pass
// still collides with every other asteroid it overlaps.
// Returns the number of hit pairs.
func ResolveCollisions(bullets []*Bullet, asteroids []*Asteroid) int {
	hits := 0
	for _, b := range bullets {
		for _, a := range asteroids {
			if b.Pos.Dist(a.Pos) < a.Size {
				b.Remove = true
				a.Remove = true
				hits++
			}
		}
	}
	return hits
}

// compactBullets drops flagged bullets, keeping order.
func compactBullets(bullets []*Bullet) []*Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		if !b.Remove {
			kept = append(kept, b)
		}
	}
	clear(bullets[len(kept):])
	return kept
}

// compactAsteroids drops flagged asteroids, keeping order.
// removed receives each dropped asteroid.
func compactAsteroids(asteroids []*Asteroid, removed func(*Asteroid)) []*Asteroid {
	kept := asteroids[:0]
	for _, a := range asteroids {
		if a.Remove {
			removed(a)
			continue
		}
		kept = append(kept, a)
	}
	clear(asteroids[len(kept):])
	return kept
}
