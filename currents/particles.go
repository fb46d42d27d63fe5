package currents

// Particle is one moving point of the current visualization. Position is in
// canvas pixels; age is counted in ticks.
type Particle struct {
	X, Y   float64
	Age    int
	MaxAge int
}

// TickStats summarizes the most recent Tick. The Speeds slice is reused
// between ticks; callers that keep it must copy.
type TickStats struct {
	Particles int
	Respawned int
	Segments  int
	Speeds    []float64
}

// respawn moves the particle to a fresh position with a new lifetime. Age
// starts at a random low value and MaxAge is drawn from a range that always
// sits above it, so age never exceeds MaxAge on spawn.
func (l *Layer) respawn(p *Particle) {
	p.X, p.Y = l.spawnPos()
	p.Age = l.rng.Intn(l.opts.SpawnAgeMax + 1)
	p.MaxAge = l.opts.MaxAgeMin + l.rng.Intn(l.opts.MaxAgeMax-l.opts.MaxAgeMin+1)
}

// spawnPos picks a random canvas position, preferring water cells. After the
// try budget runs out the last candidate is accepted even if dry; the mask
// check at the top of the next tick recycles it, so a bad draw costs one
// tick of invisibility rather than an unbounded search on land-heavy views.
func (l *Layer) spawnPos() (x, y float64) {
	w, h := l.surface.Size()
	for i := 0; i < l.opts.SpawnTries; i++ {
		x = l.rng.Float64() * float64(w)
		y = l.rng.Float64() * float64(h)
		if l.mask.IsWater(x, y) {
			return x, y
		}
	}
	return x, y
}
