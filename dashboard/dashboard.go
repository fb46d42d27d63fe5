// Package dashboard assembles the map view: procedural basemap, the
// ocean-current particle layer, shark track playback, foraging hotspots,
// and the camera, input handling, and telemetry that tie them together.
package dashboard

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/Noe-Sanchez/NASA-Space-Apps/basemap"
	"github.com/Noe-Sanchez/NASA-Space-Apps/camera"
	"github.com/Noe-Sanchez/NASA-Space-Apps/config"
	"github.com/Noe-Sanchez/NASA-Space-Apps/currents"
	"github.com/Noe-Sanchez/NASA-Space-Apps/feed"
	"github.com/Noe-Sanchez/NASA-Space-Apps/telemetry"
	"github.com/Noe-Sanchez/NASA-Space-Apps/tracks"
)

// The basemap is rendered at a reduced resolution and stretched onto the
// screen with bilinear filtering. Divisor 2 keeps coastlines crisp enough
// while quartering the per-rebuild noise evaluations.
const basemapDownscale = 2

// Options configures a new Dashboard.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string

	// Loaded data feeds. All of them may be empty or nil; the dashboard
	// degrades to whatever it was given.
	Samples []currents.Sample
	Tracks  *tracks.Collection
	Areas   []feed.ForagingArea
}

// Dashboard holds the complete dashboard state.
type Dashboard struct {
	cfg *config.Config

	// Map state
	cam      *camera.Camera
	terrain  *basemap.Terrain
	layer    *currents.Layer
	markers  *markerSet
	clock    *Clock
	samples  []currents.Sample
	hotspots []feed.Hotspot

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool

	// Render state, windowed mode only
	surfaceTex         pixelTexture
	basemapTex         pixelTexture
	basemapPix         []color.RGBA
	basemapW, basemapH int

	// Overlay toggles
	showCurrents bool
	showBasemap  bool
	showTracks   bool
	showHotspots bool
	showPanel    bool

	// Selection and panel state
	selectedID    string
	dragDistance  float64
	panelSpeed    float32 // slider value, hours of data per wall second
	panelCount    float32 // slider value, particle count
	particleCount int

	// State
	tick          int32
	paused        bool
	headless      bool
	width, height int
	seed          int64
}

// New creates a dashboard from loaded feeds. Windowed mode requires the
// raylib window to exist already; with Headless set no rendering state is
// touched and the dashboard can run without graphics.
func New(opts Options) *Dashboard {
	cfg := config.Cfg()
	w, h := cfg.Screen.Width, cfg.Screen.Height

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	d := &Dashboard{
		cfg:      cfg,
		samples:  opts.Samples,
		logStats: opts.LogStats,
		headless: opts.Headless,
		width:    w,
		height:   h,
		seed:     opts.Seed,

		showCurrents: true,
		showBasemap:  true,
		showTracks:   true,
		showHotspots: true,

		particleCount: cfg.Particles.Count,

		collector:     telemetry.NewCollector(statsWindow, cfg.Screen.TargetFPS),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
	}

	d.cam = camera.New(camera.Options{
		CenterLat:       cfg.Region.CenterLat,
		CenterLon:       cfg.Region.CenterLon,
		LatSpan:         cfg.Region.LatSpan,
		MinZoom:         cfg.Region.MinZoom,
		MaxZoom:         cfg.Region.MaxZoom,
		SpringFrequency: cfg.Camera.SpringFrequency,
		SpringDamping:   cfg.Camera.SpringDamping,
		SettleEpsilon:   cfg.Camera.SettleEpsilon,
		FPS:             cfg.Screen.TargetFPS,
	})

	d.terrain = basemap.NewTerrain(opts.Seed, basemap.Params{
		NoiseScale: cfg.Basemap.NoiseScale,
		Octaves:    cfg.Basemap.Octaves,
		Lacunarity: cfg.Basemap.Lacunarity,
		Gain:       cfg.Basemap.Gain,
		SeaLevel:   cfg.Basemap.SeaLevel,
	})

	d.layer = currents.NewLayer(w, h, particleOptions(cfg, d.particleCount, opts.Seed))
	d.layer.SetField(opts.Samples)
	d.applyViewport()

	d.markers = newMarkerSet(opts.Tracks)
	d.clock = newTrackClock(opts.Tracks, cfg)
	d.hotspots = feed.AggregateHotspots(opts.Areas, cfg.Foraging.BinDegrees, cfg.Foraging.MinConfidence)

	d.panelSpeed = float32(d.clock.Speed() / 3600)
	d.panelCount = float32(d.particleCount)

	if !d.headless {
		d.basemapW = w / basemapDownscale
		d.basemapH = h / basemapDownscale
		d.basemapPix = make([]color.RGBA, d.basemapW*d.basemapH)
		d.basemapTex = newPixelTexture(d.basemapW, d.basemapH)
		d.surfaceTex = newPixelTexture(w, h)
		d.renderBasemap()
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "dir", opts.OutputDir, "error", err)
		om = nil
	}
	d.outputManager = om
	if d.outputManager != nil {
		if err := d.outputManager.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config snapshot", "error", err)
		}
		if err := d.outputManager.WriteHotspots(d.hotspots); err != nil {
			slog.Error("failed to write hotspots", "error", err)
		}
	}

	return d
}

// newTrackClock builds the playback clock over the collection's covered
// range. With no pings the clock gets an empty range and stays inert.
func newTrackClock(col *tracks.Collection, cfg *config.Config) *Clock {
	var start, end time.Time
	if col != nil {
		if s, e, ok := col.TimeRange(); ok {
			start, end = s, e
		}
	}
	return NewClock(start, end, cfg.Playback.Speed, cfg.Playback.Loop)
}

// particleOptions maps the particles config section onto layer options.
func particleOptions(cfg *config.Config, count int, seed int64) currents.Options {
	return currents.Options{
		ParticleCount: count,
		CellSize:      cfg.Particles.CellSize,
		SpeedScale:    cfg.Particles.SpeedScale,
		FadeKeep:      cfg.Particles.FadeKeep,
		SpawnAgeMax:   cfg.Particles.SpawnAgeMax,
		MaxAgeMin:     cfg.Particles.MaxAgeMin,
		MaxAgeMax:     cfg.Particles.MaxAgeMax,
		SpawnTries:    cfg.Particles.SpawnTries,
		Seed:          seed,
	}
}

// applyViewport points the layer at the camera's settled view: geographic
// bounds for the field lookup and a fresh water mask for the coastline.
func (d *Dashboard) applyViewport() {
	b := d.cam.Bounds(d.width, d.height)
	d.layer.SetBounds(b)
	d.layer.SetMap(basemap.NewViewport(d.terrain, b, d.width, d.height))
}

// renderBasemap redraws the hypsometric tint for the layer's view and
// uploads it. Windowed mode only. Rendering at the layer's bounds keeps
// the raster and the particle surface anchored to the same geography.
func (d *Dashboard) renderBasemap() {
	b := d.layer.Bounds()
	d.terrain.RenderTo(d.basemapPix, b, d.basemapW, d.basemapH)
	d.basemapTex.Upload(d.basemapPix)
}

// setParticleCount swaps in a layer with a new pool size. Trails restart
// from scratch; field, bounds, and mask carry over.
func (d *Dashboard) setParticleCount(count int) {
	if count <= 0 || count == d.particleCount {
		return
	}
	d.particleCount = count
	old := d.layer
	d.layer = currents.NewLayer(d.width, d.height, particleOptions(d.cfg, count, d.seed))
	d.layer.SetField(d.samples)
	d.applyViewport()
	old.Teardown()
}

// Unload releases all resources.
func (d *Dashboard) Unload() {
	d.layer.Teardown()
	if !d.headless {
		d.basemapTex.Unload()
		d.surfaceTex.Unload()
	}
	if d.outputManager != nil {
		if err := d.outputManager.Close(); err != nil {
			slog.Error("failed to close output manager", "error", err)
		}
	}
}

// Tick returns the current dashboard tick.
func (d *Dashboard) Tick() int32 {
	return d.tick
}

// SelectedID returns the ID of the selected shark, or "" when none is.
func (d *Dashboard) SelectedID() string {
	return d.selectedID
}
