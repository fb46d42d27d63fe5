package dashboard

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// A press-release pair that moved less than this many pixels counts as a
// click rather than a drag.
const clickDragThreshold = 5.0

// Arrow-key pan step in pixels per frame. Pan converts pixels through the
// current bounds, so the geographic step shrinks as the view zooms in.
const arrowPanStep = 8.0

// handleInput processes keyboard and mouse input.
func (d *Dashboard) handleInput() {
	d.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		d.paused = !d.paused
	}

	// Playback speed control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) {
		d.clock.SetSpeed(d.clock.Speed() / 2)
		d.panelSpeed = float32(d.clock.Speed() / 3600)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		d.clock.SetSpeed(d.clock.Speed() * 2)
		d.panelSpeed = float32(d.clock.Speed() / 3600)
	}

	// Overlay toggles
	if rl.IsKeyPressed(rl.KeyC) {
		d.showCurrents = !d.showCurrents
	}
	if rl.IsKeyPressed(rl.KeyB) {
		d.showBasemap = !d.showBasemap
	}
	if rl.IsKeyPressed(rl.KeyT) {
		d.showTracks = !d.showTracks
	}
	if rl.IsKeyPressed(rl.KeyF) {
		d.showHotspots = !d.showHotspots
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		d.showPanel = !d.showPanel
	}

	d.handleCameraInput()
	d.handleMouse()
}

// handleResize checks for window resize and propagates new dimensions.
func (d *Dashboard) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := rl.GetScreenWidth()
	h := rl.GetScreenHeight()
	if (w == d.width && h == d.height) || w <= 0 || h <= 0 {
		return
	}
	d.width = w
	d.height = h

	d.layer.Resize(w, h)
	d.surfaceTex.Resize(w, h)

	d.basemapW = w / basemapDownscale
	d.basemapH = h / basemapDownscale
	d.basemapPix = make([]color.RGBA, d.basemapW*d.basemapH)
	d.basemapTex.Resize(d.basemapW, d.basemapH)

	d.rebuildViewport()
}

// handleCameraInput processes camera pan/zoom controls.
func (d *Dashboard) handleCameraInput() {
	// Arrow key panning. Pan takes content-drag deltas, so looking east
	// means dragging the map west.
	if rl.IsKeyDown(rl.KeyRight) {
		d.cam.Pan(-arrowPanStep, 0, d.width, d.height)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		d.cam.Pan(arrowPanStep, 0, d.width, d.height)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		d.cam.Pan(0, -arrowPanStep, d.width, d.height)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		d.cam.Pan(0, arrowPanStep, d.width, d.height)
	}

	// Mouse wheel zooms about the cursor so the point under it stays put
	wheelMove := rl.GetMouseWheelMove()
	if wheelMove != 0 {
		mouse := rl.GetMousePosition()
		factor := 1.0 + float64(wheelMove)*0.1
		d.cam.ZoomAt(factor, float64(mouse.X), float64(mouse.Y), d.width, d.height)
	}

	// Keyboard zoom with +/- (= and - keys)
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		d.cam.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		d.cam.ZoomBy(0.8)
	}

	// Home key to reset the view
	if rl.IsKeyPressed(rl.KeyHome) {
		d.cam.Reset()
	}
}

// handleMouse processes drag panning and marker selection. A left press
// that travels under the click threshold selects on release; anything
// longer is a pan. Right click deselects.
func (d *Dashboard) handleMouse() {
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		d.selectedID = ""
	}

	mouse := rl.GetMousePosition()
	overPanel := d.showPanel && rl.CheckCollisionPointRec(mouse, d.panelRect())

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		d.dragDistance = 0
	}

	if rl.IsMouseButtonDown(rl.MouseButtonLeft) && !overPanel {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			d.dragDistance += math.Hypot(float64(delta.X), float64(delta.Y))
			d.cam.Pan(float64(delta.X), float64(delta.Y), d.width, d.height)
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) && !overPanel {
		if d.dragDistance < clickDragThreshold {
			d.selectAt(float64(mouse.X), float64(mouse.Y))
		}
		d.dragDistance = 0
	}
}
