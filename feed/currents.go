// Package feed loads the dashboard's data files: current-vector CSVs, the
// tracker backend's shark JSON, and the predictive model's foraging export.
package feed

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/Noe-Sanchez/NASA-Space-Apps/currents"
)

// currentRow is one row of a current-vector CSV.
type currentRow struct {
	Lat float64 `csv:"latitude"`
	Lon float64 `csv:"longitude"`
	U   float64 `csv:"u"`
	V   float64 `csv:"v"`
}

// LoadCurrents reads current samples from a CSV with latitude, longitude, u
// and v columns, velocities in m/s. Extra columns are ignored.
func LoadCurrents(path string) ([]currents.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening currents file: %w", err)
	}
	defer f.Close()

	var rows []currentRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parsing currents file: %w", err)
	}

	samples := make([]currents.Sample, len(rows))
	for i, r := range rows {
		samples[i] = currents.Sample{Lat: r.Lat, Lon: r.Lon, U: r.U, V: r.V}
	}
	return samples, nil
}
