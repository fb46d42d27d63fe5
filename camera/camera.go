// Package camera provides a spring-smoothed geographic camera for the
// map viewport. Pan and zoom move a target; the view chases it through
// a damped spring and reports when it has settled, which is the cue to
// rebuild viewport-derived state (water mask, basemap).
package camera

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/Noe-Sanchez/NASA-Space-Apps/geo"
)

// Options configures a Camera. Zero values fall back to sane defaults.
type Options struct {
	// Home center in degrees
	CenterLat float64
	CenterLon float64

	// Latitude span of the viewport at zoom 1.0
	LatSpan float64

	// Zoom constraints (zoom 2.0 = half the span)
	MinZoom float64
	MaxZoom float64

	// Spring parameters (see charmbracelet/harmonica)
	SpringFrequency float64
	SpringDamping   float64

	// Motion below this threshold counts as settled, in degrees
	SettleEpsilon float64

	// Frames per second the spring is stepped at
	FPS int
}

func (o Options) withDefaults() Options {
	if o.LatSpan <= 0 {
		o.LatSpan = 20
	}
	if o.MinZoom <= 0 {
		o.MinZoom = 0.25
	}
	if o.MaxZoom <= o.MinZoom {
		o.MaxZoom = 8
	}
	if o.SpringFrequency <= 0 {
		o.SpringFrequency = 6.0
	}
	if o.SpringDamping <= 0 {
		o.SpringDamping = 0.9
	}
	if o.SettleEpsilon <= 0 {
		o.SettleEpsilon = 0.002
	}
	if o.FPS < 1 {
		o.FPS = 30
	}
	return o
}

// Camera animates a geographic center and zoom level toward their targets.
type Camera struct {
	opts   Options
	spring harmonica.Spring

	lat, latVel   float64
	lon, lonVel   float64
	zoom, zoomVel float64

	targetLat  float64
	targetLon  float64
	targetZoom float64

	settled     bool
	justSettled bool
}

// New creates a camera resting at the home position.
func New(opts Options) *Camera {
	opts = opts.withDefaults()
	zoom := clamp(1.0, opts.MinZoom, opts.MaxZoom)
	return &Camera{
		opts:       opts,
		spring:     harmonica.NewSpring(harmonica.FPS(opts.FPS), opts.SpringFrequency, opts.SpringDamping),
		lat:        opts.CenterLat,
		lon:        opts.CenterLon,
		zoom:       zoom,
		targetLat:  opts.CenterLat,
		targetLon:  opts.CenterLon,
		targetZoom: zoom,
		settled:    true,
	}
}

// Update advances the springs by one frame and refreshes the settle state.
// Call once per frame before reading Bounds.
func (c *Camera) Update() {
	c.lat, c.latVel = c.spring.Update(c.lat, c.latVel, c.targetLat)
	c.lon, c.lonVel = c.spring.Update(c.lon, c.lonVel, c.targetLon)
	c.zoom, c.zoomVel = c.spring.Update(c.zoom, c.zoomVel, c.targetZoom)

	eps := c.opts.SettleEpsilon
	now := math.Abs(c.targetLat-c.lat) < eps &&
		math.Abs(c.targetLon-c.lon) < eps &&
		math.Abs(c.latVel) < eps &&
		math.Abs(c.lonVel) < eps &&
		math.Abs(c.targetZoom-c.zoom) < eps*c.targetZoom &&
		math.Abs(c.zoomVel) < eps*c.targetZoom

	c.justSettled = now && !c.settled
	c.settled = now

	if c.justSettled {
		// Snap so Bounds stops drifting under the rebuilt mask
		c.lat, c.latVel = c.targetLat, 0
		c.lon, c.lonVel = c.targetLon, 0
		c.zoom, c.zoomVel = c.targetZoom, 0
	}
}

// Settled reports whether the camera is at rest on its target.
func (c *Camera) Settled() bool { return c.settled }

// JustSettled reports whether the camera came to rest on the most recent
// Update. True for exactly one frame per settle.
func (c *Camera) JustSettled() bool { return c.justSettled }

// Center returns the animated camera center in degrees.
func (c *Camera) Center() (lat, lon float64) { return c.lat, c.lon }

// Zoom returns the animated zoom level.
func (c *Camera) Zoom() float64 { return c.zoom }

// LatSpan returns the latitude span currently visible.
func (c *Camera) LatSpan() float64 {
	return c.opts.LatSpan / math.Max(c.zoom, 0.01)
}

// Bounds returns the geographic bounds of a w by h viewport at the
// camera's animated position.
func (c *Camera) Bounds(w, h int) geo.Bounds {
	return geo.Around(c.lat, c.lon, c.LatSpan(), w, h)
}

// TargetBounds returns the bounds the camera is heading toward.
func (c *Camera) TargetBounds(w, h int) geo.Bounds {
	span := c.opts.LatSpan / math.Max(c.targetZoom, 0.01)
	return geo.Around(c.targetLat, c.targetLon, span, w, h)
}

// Pan shifts the camera target by a screen-pixel drag delta. The view
// chases the target through the spring, so the settle signal fires once
// the drag stops.
func (c *Camera) Pan(dxPx, dyPx float64, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	b := c.Bounds(w, h)
	// Dragging content right moves the center west, dragging down moves it north
	c.targetLat = clampLat(c.targetLat + dyPx/float64(h)*b.LatSpan())
	c.targetLon = clampLon(c.targetLon - dxPx/float64(w)*b.LonSpan())
}

// ZoomBy multiplies the target zoom by the given factor, clamped to the
// configured range.
func (c *Camera) ZoomBy(factor float64) {
	c.targetZoom = clamp(c.targetZoom*factor, c.opts.MinZoom, c.opts.MaxZoom)
}

// ZoomAt zooms by factor while keeping the geographic point under the
// cursor (mx, my) fixed on screen.
func (c *Camera) ZoomAt(factor, mx, my float64, w, h int) {
	if w <= 0 || h <= 0 {
		c.ZoomBy(factor)
		return
	}

	next := clamp(c.targetZoom*factor, c.opts.MinZoom, c.opts.MaxZoom)
	if next == c.targetZoom {
		return
	}

	b := c.Bounds(w, h)
	plat, plon := b.XYToLatLon(mx, my, w, h)

	// Bounds after the zoom, centered so the cursor keeps its point
	nb := geo.Around(plat, plon, c.opts.LatSpan/next, w, h)
	c.targetZoom = next
	c.targetLat = clampLat(plat - (0.5-my/float64(h))*nb.LatSpan())
	c.targetLon = clampLon(plon - (mx/float64(w)-0.5)*nb.LonSpan())
}

// FocusOn animates the camera toward a point, e.g. a selected shark.
// A zoom of 0 keeps the current target zoom.
func (c *Camera) FocusOn(lat, lon, zoom float64) {
	c.targetLat = clampLat(lat)
	c.targetLon = clampLon(lon)
	if zoom > 0 {
		c.targetZoom = clamp(zoom, c.opts.MinZoom, c.opts.MaxZoom)
	}
}

// Reset animates the camera back to the home position and zoom.
func (c *Camera) Reset() {
	c.targetLat = c.opts.CenterLat
	c.targetLon = c.opts.CenterLon
	c.targetZoom = clamp(1.0, c.opts.MinZoom, c.opts.MaxZoom)
}

func clampLat(lat float64) float64 {
	// Stay clear of the poles where the lon span degenerates
	return clamp(lat, -85, 85)
}

func clampLon(lon float64) float64 {
	return clamp(lon, -180, 180)
}

func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
