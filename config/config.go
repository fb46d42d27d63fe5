// Package config provides configuration loading and access for the dashboard.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all dashboard configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Region    RegionConfig    `yaml:"region"`
	Particles ParticlesConfig `yaml:"particles"`
	Basemap   BasemapConfig   `yaml:"basemap"`
	Camera    CameraConfig    `yaml:"camera"`
	Playback  PlaybackConfig  `yaml:"playback"`
	Tracks    TracksConfig    `yaml:"tracks"`
	Foraging  ForagingConfig  `yaml:"foraging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// RegionConfig holds the geographic home view and zoom limits. Spans are in
// decimal degrees of latitude; longitude follows from the aspect ratio.
type RegionConfig struct {
	CenterLat float64 `yaml:"center_lat"`
	CenterLon float64 `yaml:"center_lon"`
	LatSpan   float64 `yaml:"lat_span"`
	MinZoom   float64 `yaml:"min_zoom"` // widest view, as a multiple of lat_span
	MaxZoom   float64 `yaml:"max_zoom"` // tightest view
}

// ParticlesConfig holds the current-layer animation parameters.
type ParticlesConfig struct {
	Count       int     `yaml:"count"`
	CellSize    int     `yaml:"cell_size"`     // water mask cell size in pixels
	SpeedScale  float64 `yaml:"speed_scale"`   // pixels per m/s per tick
	FadeKeep    int     `yaml:"fade_keep"`     // trail retention out of 256
	SpawnAgeMax int     `yaml:"spawn_age_max"` // spawn age drawn from [0, this]
	MaxAgeMin   int     `yaml:"max_age_min"`   // lifetime range in ticks
	MaxAgeMax   int     `yaml:"max_age_max"`
	SpawnTries  int     `yaml:"spawn_tries"` // water-position attempts per spawn
}

// BasemapConfig holds procedural bathymetry parameters.
type BasemapConfig struct {
	NoiseScale float64 `yaml:"noise_scale"` // base noise frequency per degree
	Octaves    int     `yaml:"octaves"`     // FBM octaves (detail level)
	Lacunarity float64 `yaml:"lacunarity"`  // frequency multiplier per octave
	Gain       float64 `yaml:"gain"`        // amplitude multiplier per octave
	SeaLevel   float64 `yaml:"sea_level"`   // elevation in [0,1] below which is water
}

// CameraConfig holds viewport smoothing parameters.
type CameraConfig struct {
	SpringFrequency float64 `yaml:"spring_frequency"` // angular frequency of the pan/zoom spring
	SpringDamping   float64 `yaml:"spring_damping"`   // <1 underdamped, 1 critically damped
	SettleEpsilon   float64 `yaml:"settle_epsilon"`   // residual motion treated as settled
}

// PlaybackConfig holds track playback parameters.
type PlaybackConfig struct {
	Speed float64 `yaml:"speed"` // simulated seconds per wall second
	Loop  bool    `yaml:"loop"`
}

// TracksConfig holds shark track display parameters.
type TracksConfig struct {
	TrailMinutes float64 `yaml:"trail_minutes"` // fading polyline window behind each marker
}

// ForagingConfig holds foraging-area overlay parameters.
type ForagingConfig struct {
	MinConfidence float64 `yaml:"min_confidence"` // hide predictions below this
	BinDegrees    float64 `yaml:"bin_degrees"`    // hotspot aggregation bin size
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	// Keep the zoom range sane whatever the file says.
	if c.Region.MinZoom <= 0 {
		c.Region.MinZoom = 0.25
	}
	if c.Region.MaxZoom < c.Region.MinZoom {
		c.Region.MaxZoom = c.Region.MinZoom
	}
	if c.Region.LatSpan <= 0 {
		c.Region.LatSpan = 20
	}
	if c.Playback.Speed <= 0 {
		c.Playback.Speed = 3600
	}
	if c.Foraging.BinDegrees <= 0 {
		c.Foraging.BinDegrees = 0.5
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
