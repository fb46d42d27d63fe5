// Current field generator - synthesizes an ocean-current CSV for the
// dashboard from layered simplex noise. The field is the rotated gradient
// of a fractal stream function, so it is divergence-free: particles swirl
// along eddies instead of piling up or draining away.
//
// Usage: go run ./cmd/fieldgen -out currents.csv
package main

import (
	"flag"
	"log/slog"
	"math"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/ojrac/opensimplex-go"
)

type row struct {
	Lat float64 `csv:"latitude"`
	Lon float64 `csv:"longitude"`
	U   float64 `csv:"u"`
	V   float64 `csv:"v"`
}

func main() {
	out := flag.String("out", "currents.csv", "Output CSV path")
	seed := flag.Int64("seed", 7, "Noise seed")
	minLat := flag.Float64("min-lat", 15, "South edge in degrees")
	maxLat := flag.Float64("max-lat", 45, "North edge in degrees")
	minLon := flag.Float64("min-lon", -85, "West edge in degrees")
	maxLon := flag.Float64("max-lon", -55, "East edge in degrees")
	step := flag.Float64("step", 0.5, "Grid spacing in degrees")
	scale := flag.Float64("scale", 0.15, "Noise frequency per degree")
	octaves := flag.Int("octaves", 3, "FBM octaves")
	maxSpeed := flag.Float64("max-speed", 1.8, "Fastest current in m/s")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if *step <= 0 || *maxLat <= *minLat || *maxLon <= *minLon {
		slog.Error("bad grid", "step", *step,
			"lat", [2]float64{*minLat, *maxLat},
			"lon", [2]float64{*minLon, *maxLon})
		os.Exit(1)
	}

	gen := fieldGen{
		noise:   opensimplex.NewNormalized(*seed),
		scale:   *scale,
		octaves: *octaves,
	}
	rows := gen.grid(*minLat, *maxLat, *minLon, *maxLon, *step, *maxSpeed)

	f, err := os.Create(*out)
	if err != nil {
		slog.Error("failed to create output file", "path", *out, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		slog.Error("failed to write CSV", "path", *out, "error", err)
		os.Exit(1)
	}

	slog.Info("wrote current field", "path", *out, "samples", len(rows))
}

type fieldGen struct {
	noise   opensimplex.Noise
	scale   float64
	octaves int
}

// stream evaluates the fractal stream function at a geographic position.
func (g fieldGen) stream(lat, lon float64) float64 {
	freq := g.scale
	amp := 1.0
	sum := 0.0
	norm := 0.0
	for i := 0; i < g.octaves; i++ {
		sum += amp * g.noise.Eval2(lon*freq, lat*freq)
		norm += amp
		freq *= 2
		amp *= 0.5
	}
	return sum / norm
}

// at returns the unscaled current vector: the stream function's gradient
// rotated a quarter turn, so flow follows its contours.
func (g fieldGen) at(lat, lon float64) (u, v float64) {
	const eps = 0.05
	dLat := (g.stream(lat+eps, lon) - g.stream(lat-eps, lon)) / (2 * eps)
	dLon := (g.stream(lat, lon+eps) - g.stream(lat, lon-eps)) / (2 * eps)
	return dLat, -dLon
}

// grid samples the field over the box and rescales it so the fastest cell
// moves at exactly maxSpeed m/s.
func (g fieldGen) grid(minLat, maxLat, minLon, maxLon, step, maxSpeed float64) []row {
	nLat := int((maxLat-minLat)/step) + 1
	nLon := int((maxLon-minLon)/step) + 1

	rows := make([]row, 0, nLat*nLon)
	maxMag := 0.0
	for i := 0; i < nLat; i++ {
		lat := minLat + float64(i)*step
		for j := 0; j < nLon; j++ {
			lon := minLon + float64(j)*step
			u, v := g.at(lat, lon)
			if mag := math.Hypot(u, v); mag > maxMag {
				maxMag = mag
			}
			rows = append(rows, row{Lat: lat, Lon: lon, U: u, V: v})
		}
	}

	if maxMag > 0 {
		k := maxSpeed / maxMag
		for i := range rows {
			rows[i].U *= k
			rows[i].V *= k
		}
	}
	return rows
}
