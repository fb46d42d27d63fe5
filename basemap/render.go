package basemap

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Noe-Sanchez/NASA-Space-Apps/geo"
)

// Hypsometric ramps, ordered deep to shallow and shore to summit. Blending
// happens in Lab space so the midpoints stay perceptually even.
var (
	waterRamp = []colorful.Color{
		{R: 0.027, G: 0.071, B: 0.161}, // abyss
		{R: 0.051, G: 0.141, B: 0.278},
		{R: 0.110, G: 0.267, B: 0.431},
		{R: 0.231, G: 0.447, B: 0.596}, // shelf
	}
	landRamp = []colorful.Color{
		{R: 0.761, G: 0.698, B: 0.502}, // shore sand
		{R: 0.290, G: 0.486, B: 0.349},
		{R: 0.541, G: 0.435, B: 0.278},
		{R: 0.847, G: 0.827, B: 0.800}, // bare rock
	}
)

// blendRamp interpolates a multi-stop ramp at t in [0,1].
func blendRamp(stops []colorful.Color, t float64) colorful.Color {
	if t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}
	f := t * float64(len(stops)-1)
	i := int(f)
	return stops[i].BlendLab(stops[i+1], f-float64(i)).Clamped()
}

// PixelColor returns the basemap tint for a geographic position.
func (t *Terrain) PixelColor(lat, lon float64) color.RGBA {
	elev := t.ElevationAt(lat, lon)
	sea := t.params.SeaLevel

	var c colorful.Color
	if elev < sea {
		// Square root lifts the shallows so the coastline reads clearly.
		depth := math.Sqrt((sea - elev) / sea)
		c = blendRamp(waterRamp, 1-depth)
	} else {
		height := (elev - sea) / (1 - sea)
		c = blendRamp(landRamp, height)
	}

	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// RenderTo fills pix, a w x h row-major buffer, with the tinted view of the
// given bounds. The buffer is reused across renders; it must hold w*h
// pixels.
func (t *Terrain) RenderTo(pix []color.RGBA, b geo.Bounds, w, h int) {
	if len(pix) < w*h {
		return
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			lat, lon := b.XYToLatLon(float64(x)+0.5, float64(y)+0.5, w, h)
			pix[y*w+x] = t.PixelColor(lat, lon)
		}
	}
}
