package basemap

import (
	"fmt"

	"github.com/Noe-Sanchez/NASA-Space-Apps/geo"
)

// Viewport binds terrain to a concrete canvas: a geographic window rendered
// at a pixel size. It answers per-pixel water queries for the current layer's
// mask builder. A viewport is an immutable snapshot; when the camera settles
// on a new view, build a new one.
type Viewport struct {
	terrain *Terrain
	bounds  geo.Bounds
	w, h    int
}

// NewViewport snapshots a view of the terrain.
func NewViewport(t *Terrain, b geo.Bounds, w, h int) *Viewport {
	return &Viewport{terrain: t, bounds: b, w: w, h: h}
}

// Bounds returns the geographic window this viewport covers.
func (v *Viewport) Bounds() geo.Bounds {
	return v.bounds
}

// WaterAt reports whether the canvas pixel lies over water. Queries outside
// the canvas fail; the mask builder treats those cells as land.
func (v *Viewport) WaterAt(x, y float64) (bool, error) {
	if x < 0 || x >= float64(v.w) || y < 0 || y >= float64(v.h) {
		return false, fmt.Errorf("pixel (%.0f, %.0f) outside %dx%d viewport", x, y, v.w, v.h)
	}
	lat, lon := v.bounds.XYToLatLon(x, y, v.w, v.h)
	return v.terrain.WaterAtGeo(lat, lon), nil
}
