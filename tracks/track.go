// Package tracks models tagged-shark movement: ordered ping series per
// animal, with time interpolation for smooth playback.
package tracks

import (
	"sort"
	"time"

	"github.com/Noe-Sanchez/NASA-Space-Apps/geo"
)

// Tag behaviors as reported by the classifier.
const (
	BehaviorForaging  = "Foraging"
	BehaviorMigrating = "Migrating"
)

// Ping is one tag report from a shark.
type Ping struct {
	Time     time.Time
	Lat      float64
	Lon      float64
	Behavior string
}

// Track is one shark's ping series, ordered by time.
type Track struct {
	ID    string
	Pings []Ping
}

// Sort orders the pings by time. Loaders call this once after ingest; every
// lookup below assumes it.
func (tr *Track) Sort() {
	sort.Slice(tr.Pings, func(i, j int) bool {
		return tr.Pings[i].Time.Before(tr.Pings[j].Time)
	})
}

// Start returns the time of the first ping.
func (tr *Track) Start() time.Time {
	if len(tr.Pings) == 0 {
		return time.Time{}
	}
	return tr.Pings[0].Time
}

// End returns the time of the last ping.
func (tr *Track) End() time.Time {
	if len(tr.Pings) == 0 {
		return time.Time{}
	}
	return tr.Pings[len(tr.Pings)-1].Time
}

// segmentAt returns the pings bracketing t and the interpolation fraction
// between them. Before the first ping both are the first; past the last
// ping both are the last.
func (tr *Track) segmentAt(t time.Time) (a, b Ping, f float64, ok bool) {
	n := len(tr.Pings)
	if n == 0 {
		return Ping{}, Ping{}, 0, false
	}
	if !t.After(tr.Pings[0].Time) {
		return tr.Pings[0], tr.Pings[0], 0, true
	}
	if !t.Before(tr.Pings[n-1].Time) {
		return tr.Pings[n-1], tr.Pings[n-1], 0, true
	}
	i := sort.Search(n, func(i int) bool { return tr.Pings[i].Time.After(t) })
	a, b = tr.Pings[i-1], tr.Pings[i]
	span := b.Time.Sub(a.Time).Seconds()
	if span > 0 {
		f = t.Sub(a.Time).Seconds() / span
	}
	return a, b, f, true
}

// PositionAt returns the interpolated position at time t, clamped to the
// track's endpoints. ok is false only for an empty track.
func (tr *Track) PositionAt(t time.Time) (lat, lon float64, ok bool) {
	a, b, f, ok := tr.segmentAt(t)
	if !ok {
		return 0, 0, false
	}
	return geo.Lerp(a.Lat, b.Lat, f), geo.Lerp(a.Lon, b.Lon, f), true
}

// HeadingAt returns the compass bearing of the segment active at time t.
// A track pinned to a single point reports north.
func (tr *Track) HeadingAt(t time.Time) float64 {
	a, b, _, ok := tr.segmentAt(t)
	if !ok || (a.Lat == b.Lat && a.Lon == b.Lon) {
		// Endpoint clamp: keep the final segment's heading past the end.
		if n := len(tr.Pings); n >= 2 {
			if !t.Before(tr.Pings[n-1].Time) {
				a, b = tr.Pings[n-2], tr.Pings[n-1]
			} else if !t.After(tr.Pings[0].Time) {
				a, b = tr.Pings[0], tr.Pings[1]
			} else {
				return 0
			}
		} else {
			return 0
		}
	}
	return geo.Bearing(a.Lat, a.Lon, b.Lat, b.Lon)
}

// BehaviorAt returns the behavior reported by the ping at or before t.
func (tr *Track) BehaviorAt(t time.Time) string {
	a, _, _, ok := tr.segmentAt(t)
	if !ok {
		return ""
	}
	return a.Behavior
}

// SpeedKmDayAt returns the travel speed over the segment active at t, in
// kilometers per day. Zero at the clamped endpoints.
func (tr *Track) SpeedKmDayAt(t time.Time) float64 {
	a, b, _, ok := tr.segmentAt(t)
	if !ok || a.Time.Equal(b.Time) {
		return 0
	}
	km := geo.DistanceKm(a.Lat, a.Lon, b.Lat, b.Lon)
	days := b.Time.Sub(a.Time).Hours() / 24
	if days <= 0 {
		return 0
	}
	return km / days
}

// PingsBetween returns the pings with from <= time <= to as a subslice of
// the track's storage.
func (tr *Track) PingsBetween(from, to time.Time) []Ping {
	n := len(tr.Pings)
	lo := sort.Search(n, func(i int) bool { return !tr.Pings[i].Time.Before(from) })
	hi := sort.Search(n, func(i int) bool { return tr.Pings[i].Time.After(to) })
	if lo >= hi {
		return nil
	}
	return tr.Pings[lo:hi]
}

// Collection is a set of tracks keyed by shark ID.
type Collection struct {
	Tracks map[string]*Track
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{Tracks: make(map[string]*Track)}
}

// Add inserts a track, replacing any existing track with the same ID.
func (c *Collection) Add(tr *Track) {
	c.Tracks[tr.ID] = tr
}

// Len returns the number of tracks.
func (c *Collection) Len() int {
	return len(c.Tracks)
}

// IDs returns the shark IDs in sorted order for deterministic iteration.
func (c *Collection) IDs() []string {
	ids := make([]string, 0, len(c.Tracks))
	for id := range c.Tracks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TimeRange returns the earliest and latest ping times across all tracks.
// ok is false when the collection holds no pings at all.
func (c *Collection) TimeRange() (start, end time.Time, ok bool) {
	for _, tr := range c.Tracks {
		if len(tr.Pings) == 0 {
			continue
		}
		s, e := tr.Start(), tr.End()
		if !ok || s.Before(start) {
			start = s
		}
		if !ok || e.After(end) {
			end = e
		}
		ok = true
	}
	return start, end, ok
}
