package currents

import (
	"image/color"
	"math"
)

// DefaultFadeKeep is the per-tick trail retention numerator out of 256.
// 240/256 leaves a trail visible for roughly half a second at 30 ticks/s.
const DefaultFadeKeep = 240

// speedRamp is the trail palette, ordered calm to strong. Thresholds are
// current speed in m/s; speeds past the last threshold take the last color.
var speedRamp = []struct {
	upTo float64
	c    color.RGBA
}{
	{0.05, color.RGBA{R: 36, G: 78, B: 160, A: 255}},
	{0.15, color.RGBA{R: 38, G: 110, B: 198, A: 255}},
	{0.30, color.RGBA{R: 62, G: 160, B: 224, A: 255}},
	{0.50, color.RGBA{R: 114, G: 204, B: 234, A: 255}},
	{0.80, color.RGBA{R: 180, G: 235, B: 240, A: 255}},
	{math.Inf(1), color.RGBA{R: 240, G: 252, B: 255, A: 255}},
}

// rampColor returns the trail color for a current speed in m/s.
func rampColor(speed float64) color.RGBA {
	for _, b := range speedRamp {
		if speed < b.upTo {
			return b.c
		}
	}
	return speedRamp[len(speedRamp)-1].c
}

// Surface is the persistent RGBA canvas the particle trails accumulate on.
// It starts fully transparent; each tick fades the whole buffer toward
// transparent black, then fresh segments are stamped on top. The raw pixels
// are exposed for the host to upload as a texture and georeference.
type Surface struct {
	pix  []color.RGBA
	w, h int
	fade [256]uint8
}

// NewSurface allocates a transparent surface. Width and height are clamped
// to at least one pixel.
func NewSurface(w, h int) *Surface {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	s := &Surface{
		pix: make([]color.RGBA, w*h),
		w:   w,
		h:   h,
	}
	s.SetFadeKeep(DefaultFadeKeep)
	return s
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (w, h int) {
	return s.w, s.h
}

// Pix returns the backing pixel buffer in row-major order. The slice is the
// live buffer, not a copy.
func (s *Surface) Pix() []color.RGBA {
	return s.pix
}

// At returns the pixel at (x, y), or transparent black outside the surface.
func (s *Surface) At(x, y int) color.RGBA {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return color.RGBA{}
	}
	return s.pix[y*s.w+x]
}

// SetFadeKeep sets the per-tick retention numerator out of 256 and rebuilds
// the decay table. Any value below 256 guarantees every channel eventually
// reaches zero because the multiply truncates.
func (s *Surface) SetFadeKeep(keep int) {
	if keep < 0 {
		keep = 0
	}
	if keep > 255 {
		keep = 255
	}
	for v := 0; v < 256; v++ {
		s.fade[v] = uint8(v * keep / 256)
	}
}

// Fade applies one decay pass: every channel, alpha included, is scaled
// down so old trails dim and finally vanish rather than accumulating.
func (s *Surface) Fade() {
	for i := range s.pix {
		p := &s.pix[i]
		p.R = s.fade[p.R]
		p.G = s.fade[p.G]
		p.B = s.fade[p.B]
		p.A = s.fade[p.A]
	}
}

// Clear resets the surface to fully transparent black.
func (s *Surface) Clear() {
	for i := range s.pix {
		s.pix[i] = color.RGBA{}
	}
}

// DrawSegment stamps a 1-pixel line from (x0, y0) to (x1, y1). Endpoints are
// butt-capped: nothing is drawn past them. Pixels falling outside the
// surface are clipped.
func (s *Surface) DrawSegment(x0, y0, x1, y1 float64, c color.RGBA) {
	dx := x1 - x0
	dy := y1 - y0
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1
	sx := dx / float64(steps)
	sy := dy / float64(steps)

	x, y := x0, y0
	for i := 0; i <= steps; i++ {
		s.set(int(math.Floor(x)), int(math.Floor(y)), c)
		x += sx
		y += sy
	}
}

func (s *Surface) set(x, y int, c color.RGBA) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.pix[y*s.w+x] = c
}
