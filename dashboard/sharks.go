package dashboard

import (
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/Noe-Sanchez/NASA-Space-Apps/components"
	"github.com/Noe-Sanchez/NASA-Space-Apps/tracks"
)

// markerSet owns the ECS world with one marker entity per tracked shark.
// Markers follow their tracks as the playback clock moves; the entity set
// itself is fixed after spawn.
type markerSet struct {
	world  *ecs.World
	mapper *ecs.Map4[components.GeoPos, components.Motion, components.Tag, components.OnTrack]
	filter *ecs.Filter4[components.GeoPos, components.Motion, components.Tag, components.OnTrack]
	col    *tracks.Collection
	count  int
}

// newMarkerSet spawns a marker for every track in the collection, resting
// at the track start. A nil collection yields an empty but usable set.
func newMarkerSet(col *tracks.Collection) *markerSet {
	world := ecs.NewWorld()
	m := &markerSet{
		world:  world,
		mapper: ecs.NewMap4[components.GeoPos, components.Motion, components.Tag, components.OnTrack](world),
		filter: ecs.NewFilter4[components.GeoPos, components.Motion, components.Tag, components.OnTrack](world),
		col:    col,
	}
	if col == nil {
		return m
	}
	for _, id := range col.IDs() {
		tr := col.Tracks[id]
		start := tr.Start()
		lat, lon, ok := tr.PositionAt(start)
		if !ok {
			continue
		}
		pos := components.GeoPos{Lat: lat, Lon: lon}
		mot := components.Motion{
			HeadingDeg: tr.HeadingAt(start),
			SpeedKmDay: tr.SpeedKmDayAt(start),
		}
		tag := components.Tag{ID: id, Behavior: tr.BehaviorAt(start)}
		on := components.OnTrack{Active: true}
		m.mapper.NewEntity(&pos, &mot, &tag, &on)
		m.count++
	}
	return m
}

// advance moves every marker to its track state at time t. A marker whose
// track does not cover t parks at the nearest endpoint and goes inactive.
func (m *markerSet) advance(t time.Time) {
	if m.col == nil {
		return
	}
	query := m.filter.Query()
	for query.Next() {
		pos, mot, tag, on := query.Get()
		tr := m.col.Tracks[tag.ID]
		if tr == nil {
			on.Active = false
			continue
		}
		lat, lon, ok := tr.PositionAt(t)
		if !ok {
			on.Active = false
			continue
		}
		pos.Lat, pos.Lon = lat, lon
		mot.HeadingDeg = tr.HeadingAt(t)
		mot.SpeedKmDay = tr.SpeedKmDayAt(t)
		tag.Behavior = tr.BehaviorAt(t)
		on.Active = !t.Before(tr.Start()) && !t.After(tr.End())
	}
}

// each visits every marker. The pointers are live component storage and
// must not be retained past the callback.
func (m *markerSet) each(fn func(pos *components.GeoPos, mot *components.Motion, tag *components.Tag, on *components.OnTrack)) {
	query := m.filter.Query()
	for query.Next() {
		pos, mot, tag, on := query.Get()
		fn(pos, mot, tag, on)
	}
}

// lookup returns a snapshot of the marker components for a shark ID.
// found is false when no marker carries the ID.
func (m *markerSet) lookup(id string) (pos components.GeoPos, mot components.Motion, tag components.Tag, found bool) {
	query := m.filter.Query()
	for query.Next() {
		p, mo, tg, _ := query.Get()
		if tg.ID == id {
			pos, mot, tag, found = *p, *mo, *tg, true
		}
	}
	return
}
