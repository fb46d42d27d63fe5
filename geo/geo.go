// Package geo provides geographic bounds and the linear mapping between
// canvas pixels and latitude/longitude shared by the map layers.
package geo

import "math"

// Bounds is a geographic rectangle: the slice of the world visible in the
// viewport, in decimal degrees.
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// LatSpan returns the latitude extent in degrees.
func (b Bounds) LatSpan() float64 {
	return b.MaxLat - b.MinLat
}

// LonSpan returns the longitude extent in degrees.
func (b Bounds) LonSpan() float64 {
	return b.MaxLon - b.MinLon
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() (lat, lon float64) {
	return (b.MinLat + b.MaxLat) * 0.5, (b.MinLon + b.MaxLon) * 0.5
}

// Contains reports whether the point lies inside the bounds.
func (b Bounds) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// XYToLatLon maps a canvas pixel to geographic coordinates by linear
// interpolation inside the bounds. Canvas y grows downward while latitude
// grows northward, so y=0 maps to MaxLat.
func (b Bounds) XYToLatLon(x, y float64, w, h int) (lat, lon float64) {
	lon = b.MinLon + (x/float64(w))*b.LonSpan()
	lat = b.MaxLat - (y/float64(h))*b.LatSpan()
	return lat, lon
}

// LatLonToXY maps geographic coordinates to a canvas pixel. Inverse of
// XYToLatLon; points outside the bounds land outside [0,w)x[0,h).
func (b Bounds) LatLonToXY(lat, lon float64, w, h int) (x, y float64) {
	x = (lon - b.MinLon) / b.LonSpan() * float64(w)
	y = (b.MaxLat - lat) / b.LatSpan() * float64(h)
	return x, y
}

// Scaled returns bounds with the same center and spans multiplied by f.
func (b Bounds) Scaled(f float64) Bounds {
	clat, clon := b.Center()
	halfLat := b.LatSpan() * 0.5 * f
	halfLon := b.LonSpan() * 0.5 * f
	return Bounds{
		MinLat: clat - halfLat,
		MaxLat: clat + halfLat,
		MinLon: clon - halfLon,
		MaxLon: clon + halfLon,
	}
}

// Shifted returns bounds translated by (dLat, dLon).
func (b Bounds) Shifted(dLat, dLon float64) Bounds {
	return Bounds{
		MinLat: b.MinLat + dLat,
		MaxLat: b.MaxLat + dLat,
		MinLon: b.MinLon + dLon,
		MaxLon: b.MaxLon + dLon,
	}
}

// Around builds bounds centered on (lat, lon) spanning latSpan degrees of
// latitude, with the longitude span chosen to match the given pixel aspect
// ratio corrected for longitude compression at that latitude.
func Around(lat, lon, latSpan float64, w, h int) Bounds {
	aspect := float64(w) / float64(h)
	cosLat := math.Cos(lat * math.Pi / 180)
	if cosLat < 0.05 {
		cosLat = 0.05
	}
	lonSpan := latSpan * aspect / cosLat
	return Bounds{
		MinLat: lat - latSpan*0.5,
		MaxLat: lat + latSpan*0.5,
		MinLon: lon - lonSpan*0.5,
		MaxLon: lon + lonSpan*0.5,
	}
}

// Bearing returns the initial compass bearing in degrees (0=north, 90=east)
// from the first point to the second.
func Bearing(lat1, lon1, lat2, lon2 float64) float64 {
	const d = math.Pi / 180
	phi1 := lat1 * d
	phi2 := lat2 * d
	dLon := (lon2 - lon1) * d

	y := math.Sin(dLon) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLon)
	deg := math.Atan2(y, x) / d
	if deg < 0 {
		deg += 360
	}
	return deg
}

// DistanceKm returns the approximate great-circle distance between two
// points using the equirectangular approximation. Good to well under 1%
// over the few hundred kilometers a track segment covers.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	const d = math.Pi / 180
	const earthRadiusKm = 6371.0
	x := (lon2 - lon1) * d * math.Cos((lat1+lat2)*0.5*d)
	y := (lat2 - lat1) * d
	return math.Sqrt(x*x+y*y) * earthRadiusKm
}

// Lerp linearly interpolates between a and b by t in [0,1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
