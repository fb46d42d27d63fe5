package camera

import (
	"math"
	"testing"
)

func testOptions() Options {
	return Options{
		CenterLat:     0,
		CenterLon:     0,
		LatSpan:       20,
		MinZoom:       0.25,
		MaxZoom:       8,
		SettleEpsilon: 0.002,
		FPS:           30,
	}
}

// settle steps the camera enough frames for the spring to converge.
func settle(c *Camera, frames int) {
	for i := 0; i < frames; i++ {
		c.Update()
	}
}

func TestNew(t *testing.T) {
	cam := New(testOptions())

	lat, lon := cam.Center()
	if lat != 0 || lon != 0 {
		t.Errorf("expected camera at home (0, 0), got (%f, %f)", lat, lon)
	}
	if cam.Zoom() != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom())
	}
	if !cam.Settled() {
		t.Error("new camera should start settled")
	}
	if cam.JustSettled() {
		t.Error("new camera should not report a settle edge")
	}
}

func TestFocusOnConverges(t *testing.T) {
	cam := New(testOptions())

	cam.FocusOn(5, -10, 2)
	settle(cam, 300)

	lat, lon := cam.Center()
	if math.Abs(lat-5) > 0.01 || math.Abs(lon+10) > 0.01 {
		t.Errorf("expected camera near (5, -10), got (%f, %f)", lat, lon)
	}
	if math.Abs(cam.Zoom()-2) > 0.01 {
		t.Errorf("expected zoom near 2, got %f", cam.Zoom())
	}
	if !cam.Settled() {
		t.Error("camera should settle after convergence")
	}
}

func TestJustSettledFiresOnce(t *testing.T) {
	cam := New(testOptions())
	cam.FocusOn(3, 3, 0)

	edges := 0
	for i := 0; i < 300; i++ {
		cam.Update()
		if cam.JustSettled() {
			edges++
		}
	}

	if edges != 1 {
		t.Errorf("expected exactly one settle edge, got %d", edges)
	}
	if !cam.Settled() {
		t.Error("camera should be settled at the end")
	}
}

func TestMovingTargetUnsettles(t *testing.T) {
	cam := New(testOptions())
	cam.FocusOn(4, 4, 0)
	cam.Update()

	if cam.Settled() {
		t.Error("camera should not be settled right after a target move")
	}
}

func TestPanDirection(t *testing.T) {
	cam := New(testOptions())

	// Drag content right and down
	cam.Pan(100, 50, 800, 400)
	settle(cam, 300)

	lat, lon := cam.Center()
	if lon >= 0 {
		t.Errorf("dragging right should move center west, got lon %f", lon)
	}
	if lat <= 0 {
		t.Errorf("dragging down should move center north, got lat %f", lat)
	}
}

func TestPanSettlesAfterDrag(t *testing.T) {
	cam := New(testOptions())

	// Simulate a held drag: target moves every frame
	for i := 0; i < 10; i++ {
		cam.Pan(20, 0, 800, 400)
		cam.Update()
	}
	if cam.Settled() {
		t.Error("camera should be in motion while dragging")
	}

	edges := 0
	for i := 0; i < 300; i++ {
		cam.Update()
		if cam.JustSettled() {
			edges++
		}
	}
	if edges != 1 {
		t.Errorf("expected one settle edge after drag release, got %d", edges)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(testOptions())

	cam.ZoomBy(1000)
	settle(cam, 400)
	if math.Abs(cam.Zoom()-8) > 0.01 {
		t.Errorf("expected zoom clamped to 8, got %f", cam.Zoom())
	}

	cam.ZoomBy(1e-6)
	settle(cam, 400)
	if math.Abs(cam.Zoom()-0.25) > 0.01 {
		t.Errorf("expected zoom clamped to 0.25, got %f", cam.Zoom())
	}
}

func TestZoomNarrowsBounds(t *testing.T) {
	cam := New(testOptions())
	w, h := 800, 400

	before := cam.Bounds(w, h)

	cam.ZoomBy(2)
	settle(cam, 300)
	after := cam.Bounds(w, h)

	if math.Abs(after.LatSpan()-before.LatSpan()/2) > 0.05 {
		t.Errorf("expected lat span to halve: before %f, after %f",
			before.LatSpan(), after.LatSpan())
	}
}

func TestZoomAtKeepsCursorPoint(t *testing.T) {
	cam := New(testOptions())
	w, h := 800, 400

	// Geographic point under the cursor before zooming
	mx, my := 600.0, 100.0
	wantLat, wantLon := cam.Bounds(w, h).XYToLatLon(mx, my, w, h)

	cam.ZoomAt(2, mx, my, w, h)
	settle(cam, 300)

	gotLat, gotLon := cam.Bounds(w, h).XYToLatLon(mx, my, w, h)
	if math.Abs(gotLat-wantLat) > 0.1 || math.Abs(gotLon-wantLon) > 0.1 {
		t.Errorf("cursor point moved: want (%f, %f), got (%f, %f)",
			wantLat, wantLon, gotLat, gotLon)
	}
}

func TestLatClamp(t *testing.T) {
	cam := New(testOptions())

	cam.FocusOn(89, 0, 0)
	settle(cam, 300)

	lat, _ := cam.Center()
	if lat > 85.01 {
		t.Errorf("expected latitude clamped near 85, got %f", lat)
	}
}

func TestReset(t *testing.T) {
	cam := New(testOptions())

	cam.FocusOn(10, 20, 4)
	settle(cam, 300)

	cam.Reset()
	settle(cam, 400)

	lat, lon := cam.Center()
	if math.Abs(lat) > 0.01 || math.Abs(lon) > 0.01 {
		t.Errorf("expected home (0, 0), got (%f, %f)", lat, lon)
	}
	if math.Abs(cam.Zoom()-1) > 0.01 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom())
	}
}

func TestBoundsCenteredOnCamera(t *testing.T) {
	opts := testOptions()
	opts.CenterLat = 30
	opts.CenterLon = -72
	cam := New(opts)

	b := cam.Bounds(800, 400)
	clat, clon := b.Center()
	if math.Abs(clat-30) > 0.001 || math.Abs(clon+72) > 0.001 {
		t.Errorf("expected bounds centered at (30, -72), got (%f, %f)", clat, clon)
	}
	if math.Abs(b.LatSpan()-20) > 0.001 {
		t.Errorf("expected lat span 20 at zoom 1, got %f", b.LatSpan())
	}
}
