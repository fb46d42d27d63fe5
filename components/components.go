// Package components defines ECS components for the shark markers.
package components

// GeoPos is an entity's geographic position in degrees.
type GeoPos struct {
	Lat, Lon float64
}

// Motion holds movement state interpolated from the track playback.
type Motion struct {
	HeadingDeg float64 // compass heading, 0 = north, clockwise
	SpeedKmDay float64 // straight-line speed over the active segment
}

// Tag identifies a shark and its predicted behavior at playback time.
type Tag struct {
	ID       string
	Behavior string
}

// OnTrack reports whether the playback clock currently falls inside the
// entity's observed track. Markers outside their track render dimmed.
type OnTrack struct {
	Active bool
}
