package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated dashboard statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	WallTimeSec     float64 `csv:"wall_time"`

	// Engine activity during the window
	Ticks     int `csv:"ticks"`
	Particles int `csv:"particles"`
	Respawned int `csv:"respawned"`
	Segments  int `csv:"segments"`

	// Per particle-tick rates
	RespawnRate float64 `csv:"respawn_rate"`
	DrawRate    float64 `csv:"draw_rate"`

	// Current speed over drawn segments, m/s
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	// Data gauges at window end
	FieldSamples int `csv:"field_samples"`
	WaterCells   int `csv:"water_cells"`
	SharkCount   int `csv:"sharks"`
}

// speedStats summarizes a speed sample set. Quantiles interpolate the
// empirical distribution.
func speedStats(values []float64) (mean, std, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	if n >= 2 {
		std = stat.StdDev(sorted, nil)
	}
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return mean, std, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("wall_time", s.WallTimeSec),
		slog.Int("ticks", s.Ticks),
		slog.Int("particles", s.Particles),
		slog.Int("respawned", s.Respawned),
		slog.Int("segments", s.Segments),
		slog.Float64("respawn_rate", s.RespawnRate),
		slog.Float64("draw_rate", s.DrawRate),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Int("field_samples", s.FieldSamples),
		slog.Int("water_cells", s.WaterCells),
		slog.Int("sharks", s.SharkCount),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"wall_time", s.WallTimeSec,
		"ticks", s.Ticks,
		"particles", s.Particles,
		"respawned", s.Respawned,
		"segments", s.Segments,
		"respawn_rate", s.RespawnRate,
		"draw_rate", s.DrawRate,
		"speed_mean", s.SpeedMean,
		"speed_std", s.SpeedStd,
		"speed_p50", s.SpeedP50,
		"speed_p90", s.SpeedP90,
		"field_samples", s.FieldSamples,
		"water_cells", s.WaterCells,
		"sharks", s.SharkCount,
	)
}
