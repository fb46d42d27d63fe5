// Package basemap generates the procedural ocean basemap the dashboard runs
// on when no tile service is available: fractal bathymetry classified into
// water and land, rendered with a hypsometric tint.
package basemap

import (
	"github.com/ojrac/opensimplex-go"
)

// Params controls bathymetry generation. Zero values fall back to defaults.
type Params struct {
	NoiseScale float64 // base noise frequency per degree
	Octaves    int     // FBM octaves
	Lacunarity float64 // frequency multiplier per octave
	Gain       float64 // amplitude multiplier per octave
	SeaLevel   float64 // elevation in [0,1] below which is water
}

func (p Params) withDefaults() Params {
	if p.NoiseScale <= 0 {
		p.NoiseScale = 0.11
	}
	if p.Octaves <= 0 {
		p.Octaves = 5
	}
	if p.Lacunarity <= 0 {
		p.Lacunarity = 2.0
	}
	if p.Gain <= 0 {
		p.Gain = 0.5
	}
	if p.SeaLevel <= 0 {
		p.SeaLevel = 0.52
	}
	return p
}

// Terrain is a deterministic elevation function over the globe. The same
// seed and params always describe the same world, so every viewport sees a
// consistent coastline.
type Terrain struct {
	noise  opensimplex.Noise
	params Params
}

// NewTerrain creates terrain from a seed.
func NewTerrain(seed int64, p Params) *Terrain {
	return &Terrain{
		noise:  opensimplex.NewNormalized(seed),
		params: p.withDefaults(),
	}
}

// ElevationAt returns the elevation in [0,1] at a geographic position.
// Fractal sum of normalized simplex octaves.
func (t *Terrain) ElevationAt(lat, lon float64) float64 {
	freq := t.params.NoiseScale
	amp := 1.0
	sum := 0.0
	norm := 0.0
	for o := 0; o < t.params.Octaves; o++ {
		sum += amp * t.noise.Eval2(lon*freq, lat*freq)
		norm += amp
		freq *= t.params.Lacunarity
		amp *= t.params.Gain
	}
	return sum / norm
}

// WaterAtGeo reports whether the position is below sea level.
func (t *Terrain) WaterAtGeo(lat, lon float64) bool {
	return t.ElevationAt(lat, lon) < t.params.SeaLevel
}

// SeaLevel returns the classification threshold.
func (t *Terrain) SeaLevel() float64 {
	return t.params.SeaLevel
}
