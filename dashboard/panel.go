package dashboard

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelWidth  = 280
	panelHeight = 300
)

// panelRect returns the control panel's screen rectangle, anchored to the
// top-right corner.
func (d *Dashboard) panelRect() rl.Rectangle {
	return rl.Rectangle{
		X:      float32(d.width) - panelWidth - 10,
		Y:      10,
		Width:  panelWidth,
		Height: panelHeight,
	}
}

// drawPanel renders the control panel: timeline scrubber, playback speed,
// particle count, and the overlay toggles.
func (d *Dashboard) drawPanel() {
	rect := d.panelRect()
	rl.DrawRectangle(int32(rect.X), int32(rect.Y), int32(rect.Width), int32(rect.Height), rl.Color{R: 0, G: 0, B: 0, A: 180})
	rl.DrawRectangleLines(int32(rect.X), int32(rect.Y), int32(rect.Width), int32(rect.Height), rl.Gray)

	px := rect.X + 10
	py := rect.Y + 8
	sliderW := rect.Width - 90

	rl.DrawText("CONTROLS [Tab to close]", int32(px), int32(py), 14, rl.Yellow)
	py += 25

	// Timeline scrubber. Untouched it just displays playback progress;
	// dragging it seeks and snaps the markers to the new time.
	rl.DrawText("Timeline", int32(px), int32(py), 14, rl.Gray)
	py += 18
	frac := float32(d.clock.Fraction())
	newFrac := gui.SliderBar(
		rl.Rectangle{X: px, Y: py, Width: sliderW, Height: 20},
		"", "",
		frac, 0, 1,
	)
	rl.DrawText(d.clock.Now().UTC().Format("Jan 02"), int32(px+sliderW+8), int32(py+2), 16, rl.RayWhite)
	if newFrac != frac {
		d.clock.SeekFraction(float64(newFrac))
		d.markers.advance(d.clock.Now())
	}
	py += 35

	// Speed slider
	rl.DrawText("Playback speed (hours per second)", int32(px), int32(py), 14, rl.Gray)
	py += 18
	newSpeed := gui.SliderBar(
		rl.Rectangle{X: px, Y: py, Width: sliderW, Height: 20},
		"0.1", "48",
		d.panelSpeed, 0.1, 48,
	)
	rl.DrawText(formatSpeed(d.clock.Speed()), int32(px+sliderW+8), int32(py+2), 16, rl.RayWhite)
	if newSpeed != d.panelSpeed {
		d.panelSpeed = newSpeed
		d.clock.SetSpeed(float64(newSpeed) * 3600)
	}
	py += 35

	// Particle count slider
	rl.DrawText("Current particles", int32(px), int32(py), 14, rl.Gray)
	py += 18
	newCount := gui.SliderBar(
		rl.Rectangle{X: px, Y: py, Width: sliderW, Height: 20},
		"200", "5000",
		d.panelCount, 200, 5000,
	)
	rl.DrawText(fmt.Sprintf("%d", d.particleCount), int32(px+sliderW+8), int32(py+2), 16, rl.RayWhite)
	if int(newCount) != d.particleCount {
		d.panelCount = newCount
		d.setParticleCount(int(newCount))
	}
	py += 40

	// Overlay toggles
	bw := (rect.Width - 30) / 2
	if gui.Button(rl.Rectangle{X: px, Y: py, Width: bw, Height: 26}, toggleText(d.showCurrents, "Currents: ON", "Currents: OFF")) {
		d.showCurrents = !d.showCurrents
	}
	if gui.Button(rl.Rectangle{X: px + bw + 10, Y: py, Width: bw, Height: 26}, toggleText(d.showBasemap, "Basemap: ON", "Basemap: OFF")) {
		d.showBasemap = !d.showBasemap
	}
	py += 32
	if gui.Button(rl.Rectangle{X: px, Y: py, Width: bw, Height: 26}, toggleText(d.showTracks, "Tracks: ON", "Tracks: OFF")) {
		d.showTracks = !d.showTracks
	}
	if gui.Button(rl.Rectangle{X: px + bw + 10, Y: py, Width: bw, Height: 26}, toggleText(d.showHotspots, "Hotspots: ON", "Hotspots: OFF")) {
		d.showHotspots = !d.showHotspots
	}
	py += 38

	// Playback controls
	if gui.Button(rl.Rectangle{X: px, Y: py, Width: bw, Height: 30}, toggleText(d.paused, "Resume", "Pause")) {
		d.paused = !d.paused
	}
	if gui.Button(rl.Rectangle{X: px + bw + 10, Y: py, Width: bw, Height: 30}, "Reset View") {
		d.cam.Reset()
	}
	py += 42

	// Performance stats
	stats := d.perfCollector.Stats()
	rl.DrawText(fmt.Sprintf("Tick: %v  FPS: %.0f", stats.AvgTickDuration, stats.FPS), int32(px), int32(py), 12, rl.White)
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
