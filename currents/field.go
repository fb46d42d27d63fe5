package currents

// Sample is a single ocean-current measurement: a position and the eastward
// (U) and northward (V) velocity components in m/s.
type Sample struct {
	Lat float64
	Lon float64
	U   float64
	V   float64
}

// Field holds the active set of current samples and answers point lookups.
// The set is replaced wholesale via Set and never mutated in place.
type Field struct {
	samples []Sample
}

// NewField returns an empty field. An empty field is valid ("no data yet")
// and reports a zero vector everywhere.
func NewField() *Field {
	return &Field{}
}

// Set replaces the sample set. The slice is copied so later caller mutation
// cannot reach the field. An empty or nil slice clears the field.
func (f *Field) Set(samples []Sample) {
	f.samples = append(f.samples[:0:0], samples...)
}

// Len returns the number of samples in the active set.
func (f *Field) Len() int {
	return len(f.samples)
}

// At returns the current vector at (lat, lon) as the nearest sample by
// squared Euclidean distance in degree space. Sample sets are a few hundred
// points at most, so a linear scan beats maintaining a spatial index.
func (f *Field) At(lat, lon float64) (u, v float64) {
	if len(f.samples) == 0 {
		return 0, 0
	}

	best := 0
	bestDist := distSq(f.samples[0], lat, lon)
	for i := 1; i < len(f.samples); i++ {
		d := distSq(f.samples[i], lat, lon)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return f.samples[best].U, f.samples[best].V
}

func distSq(s Sample, lat, lon float64) float64 {
	dLat := s.Lat - lat
	dLon := s.Lon - lon
	return dLat*dLat + dLon*dLon
}
