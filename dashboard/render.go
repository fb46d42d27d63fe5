package dashboard

import (
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Noe-Sanchez/NASA-Space-Apps/components"
	"github.com/Noe-Sanchez/NASA-Space-Apps/geo"
	"github.com/Noe-Sanchez/NASA-Space-Apps/telemetry"
	"github.com/Noe-Sanchez/NASA-Space-Apps/tracks"
)

// Marker and overlay palette
var (
	colorMigrating = rl.Color{R: 70, G: 200, B: 255, A: 255}
	colorForaging  = rl.Color{R: 255, G: 150, B: 40, A: 255}
	colorHotspot   = rl.Color{R: 255, G: 90, B: 50, A: 255}
	colorOcean     = rl.Color{R: 8, G: 18, B: 34, A: 255}
	colorRoute     = rl.Color{R: 255, G: 255, B: 255, A: 70}
)

const (
	markerRadius = 7.0

	// Cull margin in pixels so shapes straddling an edge still draw
	cullMargin = 40.0

	// Trail alpha ramp from the oldest visible ping to the marker
	trailAlphaMin = 40.0
	trailAlphaMax = 220.0
)

// Draw renders the dashboard and closes the perf tick opened by Update.
func (d *Dashboard) Draw() {
	d.perfCollector.RecordFrame()

	d.perfCollector.StartPhase(telemetry.PhaseUpload)
	if d.showCurrents {
		d.surfaceTex.Upload(d.layer.Surface().Pix())
	}

	d.perfCollector.StartPhase(telemetry.PhaseDraw)
	rl.BeginDrawing()
	rl.ClearBackground(colorOcean)

	// Rasters were rendered at the layer's settled bounds. Projecting that
	// rectangle into the live view keeps them geo-anchored while the
	// camera is still in flight between rebuilds.
	view := d.cam.Bounds(d.width, d.height)
	dst := projectBounds(view, d.layer.Bounds(), d.width, d.height)

	if d.showBasemap {
		d.basemapTex.DrawTo(dst)
	}
	if d.showHotspots {
		d.drawHotspots(view)
	}
	if d.showCurrents {
		d.surfaceTex.DrawTo(dst)
	}
	if d.showTracks {
		d.drawTrails(view)
	}
	d.drawMarkers(view)
	d.drawHUD()
	if d.showPanel {
		d.drawPanel()
	}

	rl.EndDrawing()
	d.perfCollector.EndTick()
}

// projectBounds maps the rectangle r into the screen space of the view
// bounds. When the two coincide the result is exactly the full screen.
func projectBounds(view, r geo.Bounds, w, h int) rl.Rectangle {
	x0, y0 := view.LatLonToXY(r.MaxLat, r.MinLon, w, h)
	x1, y1 := view.LatLonToXY(r.MinLat, r.MaxLon, w, h)
	return rl.Rectangle{
		X:      float32(x0),
		Y:      float32(y0),
		Width:  float32(x1 - x0),
		Height: float32(y1 - y0),
	}
}

// onScreen reports whether a pixel position is within the canvas plus the
// cull margin.
func (d *Dashboard) onScreen(x, y float64) bool {
	return x >= -cullMargin && x <= float64(d.width)+cullMargin &&
		y >= -cullMargin && y <= float64(d.height)+cullMargin
}

// behaviorColor maps a classifier behavior to its marker color.
func behaviorColor(behavior string) rl.Color {
	if behavior == tracks.BehaviorForaging {
		return colorForaging
	}
	return colorMigrating
}

// drawHotspots renders the aggregated foraging bins as translucent discs
// sized by intensity.
func (d *Dashboard) drawHotspots(view geo.Bounds) {
	for _, hs := range d.hotspots {
		x, y := view.LatLonToXY(hs.Lat, hs.Lon, d.width, d.height)
		if !d.onScreen(x, y) {
			continue
		}
		radius := float32(8 + math.Sqrt(hs.Intensity)*6)
		fill := colorHotspot
		fill.A = 45
		ring := colorHotspot
		ring.A = 160
		rl.DrawCircleV(rl.Vector2{X: float32(x), Y: float32(y)}, radius, fill)
		rl.DrawCircleLines(int32(x), int32(y), radius, ring)
	}
}

// drawTrails renders the recent path behind every marker, colored by the
// behavior reported at each ping and fading with age. The selected shark
// additionally shows its whole route as a thin line.
func (d *Dashboard) drawTrails(view geo.Bounds) {
	if d.markers.col == nil {
		return
	}
	now := d.clock.Now()
	window := time.Duration(d.cfg.Tracks.TrailMinutes * float64(time.Minute))
	if window <= 0 {
		return
	}
	from := now.Add(-window)

	d.markers.each(func(pos *components.GeoPos, _ *components.Motion, tag *components.Tag, _ *components.OnTrack) {
		tr := d.markers.col.Tracks[tag.ID]
		if tr == nil {
			return
		}
		selected := tag.ID == d.selectedID
		if selected {
			d.drawRoute(view, tr)
		}
		d.drawTrail(view, tr, pos, now, from, window, selected)
	})
}

// drawRoute renders a track's full ping history as a faint line.
func (d *Dashboard) drawRoute(view geo.Bounds, tr *tracks.Track) {
	for i := 1; i < len(tr.Pings); i++ {
		x0, y0 := view.LatLonToXY(tr.Pings[i-1].Lat, tr.Pings[i-1].Lon, d.width, d.height)
		x1, y1 := view.LatLonToXY(tr.Pings[i].Lat, tr.Pings[i].Lon, d.width, d.height)
		if !d.onScreen(x0, y0) && !d.onScreen(x1, y1) {
			continue
		}
		rl.DrawLineV(
			rl.Vector2{X: float32(x0), Y: float32(y0)},
			rl.Vector2{X: float32(x1), Y: float32(y1)},
			colorRoute,
		)
	}
}

// drawTrail renders the windowed polyline behind one marker: the pings in
// [from, now] joined up, then a closing segment to the live interpolated
// position. Each segment takes the behavior color of the ping it leaves.
func (d *Dashboard) drawTrail(view geo.Bounds, tr *tracks.Track, pos *components.GeoPos, now, from time.Time, window time.Duration, selected bool) {
	thick := float32(1.5)
	if selected {
		thick = 3
	}

	var prevX, prevY float64
	var prev tracks.Ping
	havePrev := false

	drawSeg := func(x1, y1 float64, end time.Time) {
		if d.onScreen(prevX, prevY) || d.onScreen(x1, y1) {
			age := float64(now.Sub(end)) / float64(window)
			if age < 0 {
				age = 0
			}
			if age > 1 {
				age = 1
			}
			c := behaviorColor(prev.Behavior)
			c.A = uint8(trailAlphaMax - age*(trailAlphaMax-trailAlphaMin))
			rl.DrawLineEx(
				rl.Vector2{X: float32(prevX), Y: float32(prevY)},
				rl.Vector2{X: float32(x1), Y: float32(y1)},
				thick,
				c,
			)
		}
	}

	for _, p := range tr.PingsBetween(from, now) {
		x, y := view.LatLonToXY(p.Lat, p.Lon, d.width, d.height)
		if havePrev {
			drawSeg(x, y, p.Time)
		}
		prevX, prevY, prev, havePrev = x, y, p, true
	}

	// Close the gap between the last ping and the marker itself
	if havePrev && now.After(prev.Time) {
		x, y := view.LatLonToXY(pos.Lat, pos.Lon, d.width, d.height)
		drawSeg(x, y, now)
	}
}

// drawMarkers renders every shark as an oriented triangle, dimmed when the
// playback clock is outside its track, with a pulsing ring on the
// selected one.
func (d *Dashboard) drawMarkers(view geo.Bounds) {
	d.markers.each(func(pos *components.GeoPos, mot *components.Motion, tag *components.Tag, on *components.OnTrack) {
		x, y := view.LatLonToXY(pos.Lat, pos.Lon, d.width, d.height)
		if !d.onScreen(x, y) {
			return
		}

		color := behaviorColor(tag.Behavior)
		if !on.Active {
			color.A = 80
		}

		// Compass heading, 0 = north = up on screen
		angle := float32((mot.HeadingDeg - 90) * math.Pi / 180)
		drawOrientedTriangle(float32(x), float32(y), angle, markerRadius, color)

		if tag.ID == d.selectedID {
			pulse := float32(math.Sin(float64(d.tick)*0.1))*0.3 + 0.7
			alpha := uint8(255 * pulse)
			rl.DrawCircleLines(int32(x), int32(y), markerRadius*2.2, rl.Color{R: 255, G: 255, B: 255, A: alpha})
			rl.DrawCircleLines(int32(x), int32(y), markerRadius*2.2+1, rl.Color{R: 255, G: 255, B: 255, A: alpha / 2})
		}
	})
}

// drawOrientedTriangle draws a triangle pointing in the heading direction.
func drawOrientedTriangle(x, y, heading, radius float32, color rl.Color) {
	cos := float32(math.Cos(float64(heading)))
	sin := float32(math.Sin(float64(heading)))

	// Front point
	frontX := x + cos*radius*1.5
	frontY := y + sin*radius*1.5

	// Back left
	backAngle := heading + math.Pi*0.8
	backLeftX := x + float32(math.Cos(float64(backAngle)))*radius
	backLeftY := y + float32(math.Sin(float64(backAngle)))*radius

	// Back right
	backAngle = heading - math.Pi*0.8
	backRightX := x + float32(math.Cos(float64(backAngle)))*radius
	backRightY := y + float32(math.Sin(float64(backAngle)))*radius

	v1 := rl.Vector2{X: frontX, Y: frontY}
	v2 := rl.Vector2{X: backLeftX, Y: backLeftY}
	v3 := rl.Vector2{X: backRightX, Y: backRightY}

	outline := rl.White
	outline.A = color.A

	// DrawTriangle requires counter-clockwise winding (v1, v3, v2)
	rl.DrawTriangle(v1, v3, v2, color)
	rl.DrawTriangleLines(v1, v2, v3, outline)
}

// drawHUD renders the status text block.
func (d *Dashboard) drawHUD() {
	rl.DrawText(d.clock.Now().UTC().Format("2006-01-02 15:04 UTC"), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Sharks: %d  Hotspots: %d", d.markers.count, len(d.hotspots)), 10, 35, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Speed: %s  [</>]", formatSpeed(d.clock.Speed())), 10, 60, 20, rl.White)

	y := int32(85)
	if d.paused {
		rl.DrawText("PAUSED", 10, y, 20, rl.Yellow)
		y += 25
	}
	if d.selectedID != "" {
		if _, mot, tag, found := d.markers.lookup(d.selectedID); found {
			line := fmt.Sprintf("%s  %s  %.0f km/d", tag.ID, tag.Behavior, mot.SpeedKmDay)
			rl.DrawText(line, 10, y, 20, behaviorColor(tag.Behavior))
		}
	}
}

// formatSpeed renders a playback speed as data time per wall second.
func formatSpeed(speed float64) string {
	switch {
	case speed >= 86400:
		return fmt.Sprintf("%.1f d/s", speed/86400)
	case speed >= 3600:
		return fmt.Sprintf("%.1f h/s", speed/3600)
	case speed >= 60:
		return fmt.Sprintf("%.1f min/s", speed/60)
	default:
		return fmt.Sprintf("%.0f s/s", speed)
	}
}
