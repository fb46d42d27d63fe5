package feed

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Noe-Sanchez/NASA-Space-Apps/tracks"
)

// The tracker backend groups pings per shark and reports positions as
// GeoJSON points, coordinates ordered longitude first.
type sharksJSON struct {
	Sharks map[string][]pingJSON `json:"sharks"`
}

type pingJSON struct {
	ID        string       `json:"id"`
	Timestamp string       `json:"timestamp"`
	Location  geometryJSON `json:"location"`
	Doing     string       `json:"doing"`
}

type geometryJSON struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Timestamp layouts seen in backend dumps: RFC 3339 from fresh exports,
// space-separated pandas renderings from older ones.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05.999999-07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// LoadTracks reads a shark-track dump in the backend's /sharks response
// shape. Pings with malformed timestamps or geometry are dropped; a file
// that yields no usable pings at all is an error.
func LoadTracks(path string) (*tracks.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tracks file: %w", err)
	}

	var doc sharksJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing tracks file: %w", err)
	}

	col := tracks.NewCollection()
	for id, pings := range doc.Sharks {
		tr := &tracks.Track{ID: id}
		for _, p := range pings {
			if len(p.Location.Coordinates) < 2 {
				continue
			}
			ts, err := parseTimestamp(p.Timestamp)
			if err != nil {
				continue
			}
			tr.Pings = append(tr.Pings, tracks.Ping{
				Time:     ts,
				Lon:      p.Location.Coordinates[0],
				Lat:      p.Location.Coordinates[1],
				Behavior: p.Doing,
			})
		}
		if len(tr.Pings) == 0 {
			continue
		}
		tr.Sort()
		col.Add(tr)
	}

	if col.Len() == 0 && len(doc.Sharks) > 0 {
		return nil, fmt.Errorf("tracks file %s: no usable pings", path)
	}
	return col, nil
}
