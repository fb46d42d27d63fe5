package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Noe-Sanchez/NASA-Space-Apps/config"
	"github.com/Noe-Sanchez/NASA-Space-Apps/currents"
	"github.com/Noe-Sanchez/NASA-Space-Apps/dashboard"
	"github.com/Noe-Sanchez/NASA-Space-Apps/feed"
	"github.com/Noe-Sanchez/NASA-Space-Apps/tracks"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	currentsPath := flag.String("currents", "", "Path to ocean current samples CSV")
	sharksPath := flag.String("sharks", "", "Path to shark tracks JSON")
	foragingPath := flag.String("foraging", "", "Path to foraging predictions CSV")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Load the data feeds; each degrades to empty when missing so the
	// dashboard always comes up
	samples := loadCurrents(*currentsPath)
	col := loadTracks(*sharksPath)
	areas := loadForaging(*foragingPath)

	opts := dashboard.Options{
		Seed:           rngSeed,
		Headless:       *headless,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
		Samples:        samples,
		Tracks:         col,
		Areas:          areas,
	}

	if *headless {
		// Headless mode - playback and particle engine only, no raylib needed
		d := dashboard.New(opts)
		defer d.Unload()

		slog.Info("starting headless dashboard",
			"seed", rngSeed,
			"max_ticks", *maxTicks,
			"field_samples", len(samples),
			"tracks", col.Len(),
		)

		for {
			d.UpdateHeadless()

			if *maxTicks > 0 && int(d.Tick()) >= *maxTicks {
				slog.Info("max ticks reached", "tick", d.Tick())
				return
			}
		}
	} else {
		// Graphical mode
		rl.SetConfigFlags(rl.FlagWindowResizable)
		rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Sharks from Space")
		defer rl.CloseWindow()

		rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

		d := dashboard.New(opts)
		defer d.Unload()

		for !rl.WindowShouldClose() {
			d.Update()
			d.Draw()

			if *maxTicks > 0 && int(d.Tick()) >= *maxTicks {
				break
			}
		}
	}
}

// loadCurrents reads the current-field CSV. Missing or bad input yields an
// empty field: particles stall but the dashboard still runs.
func loadCurrents(path string) []currents.Sample {
	if path == "" {
		slog.Warn("no currents file given; particle field will be empty")
		return nil
	}
	samples, err := feed.LoadCurrents(path)
	if err != nil {
		slog.Error("failed to load currents", "path", path, "error", err)
		return nil
	}
	slog.Info("loaded currents", "path", path, "samples", len(samples))
	return samples
}

// loadTracks reads the shark track JSON. Missing or bad input yields an
// empty collection.
func loadTracks(path string) *tracks.Collection {
	if path == "" {
		slog.Warn("no sharks file given; no markers to show")
		return tracks.NewCollection()
	}
	col, err := feed.LoadTracks(path)
	if err != nil {
		slog.Error("failed to load tracks", "path", path, "error", err)
		return tracks.NewCollection()
	}
	slog.Info("loaded tracks", "path", path, "sharks", col.Len())
	return col
}

// loadForaging reads the foraging prediction CSV. Missing or bad input
// yields no hotspot overlay.
func loadForaging(path string) []feed.ForagingArea {
	if path == "" {
		return nil
	}
	areas, err := feed.LoadForaging(path)
	if err != nil {
		slog.Error("failed to load foraging areas", "path", path, "error", err)
		return nil
	}
	slog.Info("loaded foraging areas", "path", path, "areas", len(areas))
	return areas
}
