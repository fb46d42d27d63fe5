package feed

import (
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/gocarina/gocsv"

	"github.com/Noe-Sanchez/NASA-Space-Apps/tracks"
)

// ForagingArea is one observation row from the predictive model's CSV
// export. Columns the dashboard does not use are ignored on load.
type ForagingArea struct {
	SharkID    string  `csv:"shark_id"`
	Lat        float64 `csv:"latitude"`
	Lon        float64 `csv:"longitude"`
	Datetime   string  `csv:"datetime"`
	Behavior   string  `csv:"behavior"`
	Confidence float64 `csv:"confidence"`
	SpeedKmDay float64 `csv:"speed_km_day"`
	ChlorA     float64 `csv:"chlor_a"`
	SST        float64 `csv:"sst"`
	WaterDepth float64 `csv:"water_depth"`
}

// LoadForaging reads the model's foraging-area export.
func LoadForaging(path string) ([]ForagingArea, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening foraging file: %w", err)
	}
	defer f.Close()

	var rows []ForagingArea
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parsing foraging file: %w", err)
	}
	return rows, nil
}

// Hotspot is a grid bin of foraging observations, ranked for overlay
// rendering: more observations from more sharks at higher confidence glow
// brighter.
type Hotspot struct {
	Lat       float64 `csv:"lat"`
	Lon       float64 `csv:"lon"`
	Count     int     `csv:"observations"`   // foraging observations in the bin
	Sharks    int     `csv:"sharks"`         // distinct sharks seen foraging there
	AvgConf   float64 `csv:"avg_confidence"` // mean prediction confidence
	Intensity float64 `csv:"intensity"`      // Count weighted by AvgConf
}

// AggregateHotspots bins foraging observations onto a binDeg grid (0.1
// degrees is roughly 11 km) and returns the bins sorted by intensity,
// strongest first. Observations below minConf or with a non-foraging
// behavior are left out.
func AggregateHotspots(areas []ForagingArea, binDeg, minConf float64) []Hotspot {
	if binDeg <= 0 {
		binDeg = 0.1
	}

	type binKey struct{ la, lo int }
	type binAcc struct {
		count   int
		confSum float64
		sharks  map[string]struct{}
	}

	bins := make(map[binKey]*binAcc)
	for _, a := range areas {
		if a.Behavior != tracks.BehaviorForaging || a.Confidence < minConf {
			continue
		}
		k := binKey{
			la: int(math.Round(a.Lat / binDeg)),
			lo: int(math.Round(a.Lon / binDeg)),
		}
		acc := bins[k]
		if acc == nil {
			acc = &binAcc{sharks: make(map[string]struct{})}
			bins[k] = acc
		}
		acc.count++
		acc.confSum += a.Confidence
		acc.sharks[a.SharkID] = struct{}{}
	}

	out := make([]Hotspot, 0, len(bins))
	for k, acc := range bins {
		avg := acc.confSum / float64(acc.count)
		out = append(out, Hotspot{
			Lat:       float64(k.la) * binDeg,
			Lon:       float64(k.lo) * binDeg,
			Count:     acc.count,
			Sharks:    len(acc.sharks),
			AvgConf:   avg,
			Intensity: float64(acc.count) * avg,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Intensity != out[j].Intensity {
			return out[i].Intensity > out[j].Intensity
		}
		if out[i].Lat != out[j].Lat {
			return out[i].Lat < out[j].Lat
		}
		return out[i].Lon < out[j].Lon
	})
	return out
}
