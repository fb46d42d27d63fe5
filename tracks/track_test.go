package tracks

import (
	"math"
	"testing"
	"time"
)

func hoursTrack() *Track {
	t0 := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	return &Track{
		ID: "shark-1",
		Pings: []Ping{
			{Time: t0, Lat: 30, Lon: -72, Behavior: BehaviorMigrating},
			{Time: t0.Add(2 * time.Hour), Lat: 31, Lon: -72, Behavior: BehaviorForaging},
			{Time: t0.Add(4 * time.Hour), Lat: 31, Lon: -71, Behavior: BehaviorForaging},
		},
	}
}

func TestPositionAtInterpolates(t *testing.T) {
	tr := hoursTrack()
	mid := tr.Pings[0].Time.Add(time.Hour)

	lat, lon, ok := tr.PositionAt(mid)
	if !ok {
		t.Fatal("expected a position from a populated track")
	}
	if math.Abs(lat-30.5) > 1e-9 || math.Abs(lon+72) > 1e-9 {
		t.Errorf("expected midpoint (30.5, -72), got (%f, %f)", lat, lon)
	}
}

func TestPositionAtClampsToEndpoints(t *testing.T) {
	tr := hoursTrack()

	lat, lon, _ := tr.PositionAt(tr.Start().Add(-time.Hour))
	if lat != 30 || lon != -72 {
		t.Errorf("expected clamp to first ping, got (%f, %f)", lat, lon)
	}

	lat, lon, _ = tr.PositionAt(tr.End().Add(time.Hour))
	if lat != 31 || lon != -71 {
		t.Errorf("expected clamp to last ping, got (%f, %f)", lat, lon)
	}
}

func TestPositionAtEmptyTrack(t *testing.T) {
	tr := &Track{ID: "empty"}
	if _, _, ok := tr.PositionAt(time.Now()); ok {
		t.Error("expected no position from an empty track")
	}
}

func TestHeadingFollowsSegment(t *testing.T) {
	tr := hoursTrack()

	// First segment runs due north.
	h := tr.HeadingAt(tr.Start().Add(time.Hour))
	if math.Abs(h-0) > 0.5 && math.Abs(h-360) > 0.5 {
		t.Errorf("expected northward heading, got %f", h)
	}

	// Second segment runs due east.
	h = tr.HeadingAt(tr.Start().Add(3 * time.Hour))
	if math.Abs(h-90) > 1.5 {
		t.Errorf("expected eastward heading, got %f", h)
	}

	// Past the end the final segment's heading sticks.
	h = tr.HeadingAt(tr.End().Add(time.Hour))
	if math.Abs(h-90) > 1.5 {
		t.Errorf("expected final heading kept past the end, got %f", h)
	}
}

func TestBehaviorAtUsesSegmentStart(t *testing.T) {
	tr := hoursTrack()

	if b := tr.BehaviorAt(tr.Start().Add(time.Hour)); b != BehaviorMigrating {
		t.Errorf("expected %q during the first segment, got %q", BehaviorMigrating, b)
	}
	if b := tr.BehaviorAt(tr.Start().Add(3 * time.Hour)); b != BehaviorForaging {
		t.Errorf("expected %q during the second segment, got %q", BehaviorForaging, b)
	}
}

func TestSpeedKmDay(t *testing.T) {
	tr := hoursTrack()

	// One degree of latitude (~111 km) in two hours is ~1334 km/day.
	s := tr.SpeedKmDayAt(tr.Start().Add(time.Hour))
	if s < 1300 || s > 1370 {
		t.Errorf("expected roughly 1334 km/day, got %f", s)
	}
	if s := tr.SpeedKmDayAt(tr.Start().Add(-time.Hour)); s != 0 {
		t.Errorf("expected zero speed at the clamped start, got %f", s)
	}
}

func TestSortOrdersPings(t *testing.T) {
	t0 := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	tr := &Track{Pings: []Ping{
		{Time: t0.Add(2 * time.Hour), Lat: 2},
		{Time: t0, Lat: 0},
		{Time: t0.Add(time.Hour), Lat: 1},
	}}
	tr.Sort()

	for i := 1; i < len(tr.Pings); i++ {
		if tr.Pings[i].Time.Before(tr.Pings[i-1].Time) {
			t.Fatal("pings not in time order after Sort")
		}
	}
}

func TestPingsBetween(t *testing.T) {
	tr := hoursTrack()

	got := tr.PingsBetween(tr.Start().Add(time.Hour), tr.Start().Add(3*time.Hour))
	if len(got) != 1 || got[0].Lat != 31 || got[0].Lon != -72 {
		t.Errorf("expected just the middle ping, got %d pings", len(got))
	}

	if got := tr.PingsBetween(tr.End().Add(time.Hour), tr.End().Add(2*time.Hour)); got != nil {
		t.Errorf("expected no pings past the end, got %d", len(got))
	}
}

func TestCollectionTimeRangeAndIDs(t *testing.T) {
	c := NewCollection()
	t0 := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	c.Add(&Track{ID: "b", Pings: []Ping{
		{Time: t0.Add(time.Hour)}, {Time: t0.Add(5 * time.Hour)},
	}})
	c.Add(&Track{ID: "a", Pings: []Ping{
		{Time: t0}, {Time: t0.Add(3 * time.Hour)},
	}})

	ids := c.IDs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("expected sorted ids [a b], got %v", ids)
	}

	start, end, ok := c.TimeRange()
	if !ok {
		t.Fatal("expected a time range from populated tracks")
	}
	if !start.Equal(t0) || !end.Equal(t0.Add(5*time.Hour)) {
		t.Errorf("expected range spanning both tracks, got %v to %v", start, end)
	}

	if _, _, ok := NewCollection().TimeRange(); ok {
		t.Error("expected no time range from an empty collection")
	}
}
