// Package currents animates ocean-current particle trails over a map. The
// layer owns a particle population, a coarse water mask, a nearest-sample
// current field, and a persistent RGBA trail surface. It has no clock and no
// renderer of its own: the host calls Tick and composites the surface.
package currents

import (
	"math"
	"math/rand"
	"time"

	"github.com/Noe-Sanchez/NASA-Space-Apps/geo"
)

// Options configures a Layer. Zero values fall back to the defaults below.
type Options struct {
	ParticleCount int     // particles in the fixed pool
	CellSize      int     // water mask cell size in pixels
	SpeedScale    float64 // pixels of travel per m/s per tick
	FadeKeep      int     // trail retention numerator out of 256
	SpawnAgeMax   int     // spawn age drawn from [0, SpawnAgeMax]
	MaxAgeMin     int     // particle lifetime drawn from [MaxAgeMin, MaxAgeMax]
	MaxAgeMax     int
	SpawnTries    int   // water-position attempts before accepting a dry spawn
	Seed          int64 // rng seed; 0 seeds from the wall clock
}

func (o Options) withDefaults() Options {
	if o.ParticleCount <= 0 {
		o.ParticleCount = 1500
	}
	if o.CellSize <= 0 {
		o.CellSize = 8
	}
	if o.SpeedScale <= 0 {
		o.SpeedScale = 1.5
	}
	if o.FadeKeep <= 0 {
		o.FadeKeep = DefaultFadeKeep
	}
	if o.SpawnAgeMax <= 0 {
		o.SpawnAgeMax = 15
	}
	if o.MaxAgeMin <= 0 {
		o.MaxAgeMin = 30
	}
	if o.MaxAgeMax < o.MaxAgeMin {
		o.MaxAgeMax = o.MaxAgeMin * 3
	}
	// Lifetimes must start above the highest spawn age or a fresh particle
	// could be born already expired.
	if o.MaxAgeMin <= o.SpawnAgeMax {
		o.MaxAgeMin = o.SpawnAgeMax + 1
		if o.MaxAgeMax < o.MaxAgeMin {
			o.MaxAgeMax = o.MaxAgeMin
		}
	}
	if o.SpawnTries <= 0 {
		o.SpawnTries = 32
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o
}

// Layer is the current visualization engine. It is not safe for concurrent
// use: the host drives it from a single goroutine, calling Tick once per
// animation frame.
type Layer struct {
	opts    Options
	field   *Field
	water   WaterQuery
	mask    *Mask
	surface *Surface
	bounds  geo.Bounds
	parts   []Particle
	rng     *rand.Rand
	stats   TickStats
	speeds  []float64
}

// NewLayer creates a layer with a w x h trail surface and a fully populated
// particle pool. With no map set yet the mask fails open, so the initial
// spawns land anywhere on the canvas.
func NewLayer(w, h int, opts Options) *Layer {
	opts = opts.withDefaults()
	l := &Layer{
		opts:    opts,
		field:   NewField(),
		surface: NewSurface(w, h),
		rng:     rand.New(rand.NewSource(opts.Seed)),
		parts:   make([]Particle, opts.ParticleCount),
	}
	l.surface.SetFadeKeep(opts.FadeKeep)
	for i := range l.parts {
		l.respawn(&l.parts[i])
	}
	return l
}

// SetField replaces the current sample set wholesale. An empty slice is
// valid and stalls the particles without stopping the animation.
func (l *Layer) SetField(samples []Sample) {
	l.field.Set(samples)
}

// SetMap attaches the water oracle and rebuilds the mask against it. Passing
// nil detaches the map; the mask then fails open.
func (l *Layer) SetMap(q WaterQuery) {
	l.water = q
	l.rebuildMask()
}

// SetBounds updates the geographic window the canvas covers and rebuilds the
// water mask, since a moved viewport puts different water under each pixel.
// Call it when the view settles, not on every frame of a drag.
func (l *Layer) SetBounds(b geo.Bounds) {
	l.bounds = b
	l.rebuildMask()
}

// Bounds returns the geographic window currently mapped to the canvas.
func (l *Layer) Bounds() geo.Bounds {
	return l.bounds
}

// Resize swaps in a fresh transparent surface at the new size and rebuilds
// the mask. Trails do not survive a resize; particles now off-canvas are
// respawned by the next tick.
func (l *Layer) Resize(w, h int) {
	if l.surface == nil {
		return
	}
	l.surface = NewSurface(w, h)
	l.surface.SetFadeKeep(l.opts.FadeKeep)
	l.rebuildMask()
}

func (l *Layer) rebuildMask() {
	if l.surface == nil {
		return
	}
	w, h := l.surface.Size()
	l.mask = BuildMask(l.water, w, h, l.opts.CellSize)
}

// Surface returns the trail raster for compositing, or nil after Teardown.
func (l *Layer) Surface() *Surface {
	return l.surface
}

// Stats returns counters for the most recent Tick.
func (l *Layer) Stats() TickStats {
	return l.stats
}

// WaterCells reports how many mask cells are classified as water. Zero
// until a map and bounds have been set.
func (l *Layer) WaterCells() int {
	return l.mask.WaterCells()
}

// Tick advances the animation one frame: fade the surface, then move, age,
// recycle, and draw every particle. Particles found on land are respawned
// before they move; particles that move off water, off canvas, or past
// their lifetime are respawned after, and neither kind draws this tick.
func (l *Layer) Tick() {
	if l.surface == nil {
		return
	}
	l.stats = TickStats{Particles: len(l.parts)}
	l.speeds = l.speeds[:0]
	l.surface.Fade()
	w, h := l.surface.Size()

	for i := range l.parts {
		p := &l.parts[i]

		if !l.mask.IsWater(p.X, p.Y) {
			l.respawn(p)
			l.stats.Respawned++
			continue
		}

		lat, lon := l.bounds.XYToLatLon(p.X, p.Y, w, h)
		u, v := l.field.At(lat, lon)

		x0, y0 := p.X, p.Y
		p.X += u * l.opts.SpeedScale
		// Positive v points north; canvas y grows south.
		p.Y -= v * l.opts.SpeedScale
		p.Age++

		if p.X < 0 || p.X >= float64(w) || p.Y < 0 || p.Y >= float64(h) ||
			!l.mask.IsWater(p.X, p.Y) || p.Age > p.MaxAge {
			l.respawn(p)
			l.stats.Respawned++
			continue
		}

		speed := math.Hypot(u, v)
		l.surface.DrawSegment(x0, y0, p.X, p.Y, rampColor(speed))
		l.stats.Segments++
		l.speeds = append(l.speeds, speed)
	}
	l.stats.Speeds = l.speeds
}

// Teardown releases the particle pool, mask, map reference, and surface.
// The layer must not be used afterwards; Tick becomes a no-op and Surface
// returns nil.
func (l *Layer) Teardown() {
	l.parts = nil
	l.mask = nil
	l.water = nil
	l.field.Set(nil)
	l.surface = nil
	l.stats = TickStats{}
	l.speeds = nil
}
