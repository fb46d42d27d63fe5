package geo

import (
	"math"
	"testing"
)

func testBounds() Bounds {
	return Bounds{MinLat: 20, MaxLat: 40, MinLon: -130, MaxLon: -110}
}

func TestXYToLatLonCorners(t *testing.T) {
	b := testBounds()

	// Top-left pixel maps to (MaxLat, MinLon): canvas y grows downward.
	lat, lon := b.XYToLatLon(0, 0, 800, 600)
	if lat != 40 || lon != -130 {
		t.Errorf("expected (40, -130) at origin, got (%f, %f)", lat, lon)
	}

	// Bottom-right corner maps to (MinLat, MaxLon).
	lat, lon = b.XYToLatLon(800, 600, 800, 600)
	if lat != 20 || lon != -110 {
		t.Errorf("expected (20, -110) at far corner, got (%f, %f)", lat, lon)
	}

	// Center of canvas maps to center of bounds.
	lat, lon = b.XYToLatLon(400, 300, 800, 600)
	if math.Abs(lat-30) > 1e-9 || math.Abs(lon+120) > 1e-9 {
		t.Errorf("expected (30, -120) at center, got (%f, %f)", lat, lon)
	}
}

func TestLatLonToXYRoundtrip(t *testing.T) {
	b := testBounds()

	testCases := []struct{ x, y float64 }{
		{400, 300}, // center
		{12, 7},    // near top-left
		{790, 590}, // near bottom-right
	}

	for _, tc := range testCases {
		lat, lon := b.XYToLatLon(tc.x, tc.y, 800, 600)
		x, y := b.LatLonToXY(lat, lon, 800, 600)
		if math.Abs(x-tc.x) > 1e-6 || math.Abs(y-tc.y) > 1e-6 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.x, tc.y, lat, lon, x, y)
		}
	}
}

func TestNorthIsUp(t *testing.T) {
	b := testBounds()

	latTop, _ := b.XYToLatLon(400, 100, 800, 600)
	latBot, _ := b.XYToLatLon(400, 500, 800, 600)
	if latTop <= latBot {
		t.Errorf("expected latitude to decrease downward, got top=%f bottom=%f", latTop, latBot)
	}
}

func TestContains(t *testing.T) {
	b := testBounds()

	if !b.Contains(30, -120) {
		t.Error("center should be inside bounds")
	}
	if b.Contains(50, -120) {
		t.Error("point north of bounds should be outside")
	}
	if b.Contains(30, -100) {
		t.Error("point east of bounds should be outside")
	}
}

func TestScaledKeepsCenter(t *testing.T) {
	b := testBounds()
	half := b.Scaled(0.5)

	clat, clon := b.Center()
	hlat, hlon := half.Center()
	if math.Abs(clat-hlat) > 1e-9 || math.Abs(clon-hlon) > 1e-9 {
		t.Errorf("expected center preserved, got (%f, %f) vs (%f, %f)", clat, clon, hlat, hlon)
	}
	if math.Abs(half.LatSpan()-b.LatSpan()*0.5) > 1e-9 {
		t.Errorf("expected lat span halved, got %f", half.LatSpan())
	}
}

func TestAroundAspect(t *testing.T) {
	// At the equator a square canvas should give equal spans.
	b := Around(0, 0, 10, 600, 600)
	if math.Abs(b.LonSpan()-b.LatSpan()) > 1e-9 {
		t.Errorf("expected square bounds at equator, got lat %f lon %f", b.LatSpan(), b.LonSpan())
	}

	// At high latitude the longitude span widens to cover the same pixels.
	bn := Around(60, 0, 10, 600, 600)
	if bn.LonSpan() <= bn.LatSpan() {
		t.Errorf("expected lon span > lat span at 60N, got lat %f lon %f", bn.LatSpan(), bn.LonSpan())
	}
}

func TestBearingCardinals(t *testing.T) {
	testCases := []struct {
		lat2, lon2 float64
		want       float64
	}{
		{1, 0, 0},    // due north
		{0, 1, 90},   // due east
		{-1, 0, 180}, // due south
		{0, -1, 270}, // due west
	}

	for _, tc := range testCases {
		got := Bearing(0, 0, tc.lat2, tc.lon2)
		if math.Abs(got-tc.want) > 0.01 {
			t.Errorf("bearing to (%f, %f): expected %f, got %f", tc.lat2, tc.lon2, tc.want, got)
		}
	}
}

func TestDistanceKmDegreeOfLatitude(t *testing.T) {
	// One degree of latitude is about 111 km everywhere.
	d := DistanceKm(30, -120, 31, -120)
	if d < 110 || d > 112.5 {
		t.Errorf("expected ~111 km per degree of latitude, got %f", d)
	}
}
