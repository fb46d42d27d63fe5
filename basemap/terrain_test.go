package basemap

import (
	"image/color"
	"testing"

	"github.com/Noe-Sanchez/NASA-Space-Apps/geo"
)

func TestTerrainDeterministic(t *testing.T) {
	a := NewTerrain(7, Params{})
	b := NewTerrain(7, Params{})

	for _, p := range [][2]float64{{30, -72}, {0, 0}, {-45, 120}} {
		ea := a.ElevationAt(p[0], p[1])
		eb := b.ElevationAt(p[0], p[1])
		if ea != eb {
			t.Errorf("same seed disagreed at (%f, %f): %f vs %f", p[0], p[1], ea, eb)
		}
	}

	c := NewTerrain(8, Params{})
	same := true
	for _, p := range [][2]float64{{30, -72}, {0, 0}, {-45, 120}} {
		if a.ElevationAt(p[0], p[1]) != c.ElevationAt(p[0], p[1]) {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical terrain")
	}
}

func TestElevationInRange(t *testing.T) {
	terr := NewTerrain(3, Params{})

	for lat := -60.0; lat <= 60; lat += 7 {
		for lon := -180.0; lon <= 180; lon += 13 {
			e := terr.ElevationAt(lat, lon)
			if e < 0 || e > 1 {
				t.Fatalf("elevation %f out of [0,1] at (%f, %f)", e, lat, lon)
			}
		}
	}
}

func TestWaterMatchesSeaLevel(t *testing.T) {
	terr := NewTerrain(3, Params{SeaLevel: 0.5})

	water, land := 0, 0
	for lat := -60.0; lat <= 60; lat += 3 {
		for lon := -180.0; lon <= 180; lon += 5 {
			wet := terr.WaterAtGeo(lat, lon)
			below := terr.ElevationAt(lat, lon) < 0.5
			if wet != below {
				t.Fatalf("classification disagrees with elevation at (%f, %f)", lat, lon)
			}
			if wet {
				water++
			} else {
				land++
			}
		}
	}
	// A midline threshold over normalized noise should produce both classes.
	if water == 0 || land == 0 {
		t.Errorf("expected a mixed world, got %d water and %d land samples", water, land)
	}
}

func TestViewportWaterAt(t *testing.T) {
	terr := NewTerrain(5, Params{})
	b := geo.Bounds{MinLat: 20, MaxLat: 40, MinLon: -80, MaxLon: -60}
	vp := NewViewport(terr, b, 200, 100)

	// In-canvas answers must agree with the geographic classifier.
	lat, lon := b.XYToLatLon(50, 25, 200, 100)
	wet, err := vp.WaterAt(50, 25)
	if err != nil {
		t.Fatalf("unexpected error inside viewport: %v", err)
	}
	if wet != terr.WaterAtGeo(lat, lon) {
		t.Error("viewport answer disagrees with terrain")
	}

	// Off-canvas queries fail instead of guessing.
	if _, err := vp.WaterAt(-1, 10); err == nil {
		t.Error("expected error left of the canvas")
	}
	if _, err := vp.WaterAt(10, 100); err == nil {
		t.Error("expected error below the canvas")
	}
}

func TestPixelColorSeparatesWaterFromLand(t *testing.T) {
	terr := NewTerrain(5, Params{})

	// Find one wet and one dry spot, then check their tints differ and the
	// water one leans blue.
	var wetColor, dryColor color.RGBA
	foundWet, foundDry := false, false
	for lat := -60.0; lat <= 60 && !(foundWet && foundDry); lat += 2 {
		for lon := -180.0; lon <= 180 && !(foundWet && foundDry); lon += 2 {
			if terr.WaterAtGeo(lat, lon) && !foundWet {
				wetColor = terr.PixelColor(lat, lon)
				foundWet = true
			}
			if !terr.WaterAtGeo(lat, lon) && !foundDry {
				dryColor = terr.PixelColor(lat, lon)
				foundDry = true
			}
		}
	}
	if !foundWet || !foundDry {
		t.Fatal("terrain has only one class; cannot compare tints")
	}
	if wetColor == dryColor {
		t.Error("expected distinct water and land tints")
	}
	if wetColor.B <= wetColor.R {
		t.Errorf("expected blue-dominant water tint, got %v", wetColor)
	}
}

func TestRenderToFillsBuffer(t *testing.T) {
	terr := NewTerrain(5, Params{})
	b := geo.Bounds{MinLat: 20, MaxLat: 40, MinLon: -80, MaxLon: -60}

	pix := make([]color.RGBA, 40*20)
	terr.RenderTo(pix, b, 40, 20)

	for i, p := range pix {
		if p.A != 255 {
			t.Fatalf("pixel %d not opaque: %v", i, p)
		}
	}

	// Undersized buffers are left alone rather than sliced out of range.
	short := make([]color.RGBA, 10)
	terr.RenderTo(short, b, 40, 20)
	for i, p := range short {
		if p != (color.RGBA{}) {
			t.Fatalf("pixel %d written despite short buffer: %v", i, p)
		}
	}
}
