package dashboard

import (
	"math"

	"github.com/Noe-Sanchez/NASA-Space-Apps/components"
)

// Max pick distance from a marker center in pixels.
const selectRadius = 16.0

// markerPoint is a marker's screen position, for hit testing.
type markerPoint struct {
	id   string
	x, y float64
}

// nearestMarker returns the id of the point closest to (x, y) within
// maxDist pixels. ok is false when nothing is close enough.
func nearestMarker(x, y float64, pts []markerPoint, maxDist float64) (id string, ok bool) {
	closest := maxDist
	for _, p := range pts {
		dist := math.Hypot(p.x-x, p.y-y)
		if dist < closest {
			closest = dist
			id = p.id
			ok = true
		}
	}
	return id, ok
}

// selectAt picks the marker nearest to a clicked pixel and glides the
// camera onto it. A click on empty water clears the selection.
func (d *Dashboard) selectAt(x, y float64) {
	b := d.cam.Bounds(d.width, d.height)

	var pts []markerPoint
	d.markers.each(func(pos *components.GeoPos, _ *components.Motion, tag *components.Tag, _ *components.OnTrack) {
		px, py := b.LatLonToXY(pos.Lat, pos.Lon, d.width, d.height)
		pts = append(pts, markerPoint{id: tag.ID, x: px, y: py})
	})

	id, ok := nearestMarker(x, y, pts, selectRadius)
	if !ok {
		d.selectedID = ""
		return
	}
	d.selectedID = id
	if pos, _, _, found := d.markers.lookup(id); found {
		// Keep the current zoom; just glide the view onto the shark
		d.cam.FocusOn(pos.Lat, pos.Lon, 0)
	}
}
