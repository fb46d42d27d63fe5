package dashboard

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Noe-Sanchez/NASA-Space-Apps/telemetry"
)

// Update advances the dashboard one frame in windowed mode. The perf tick
// opened here is closed at the end of Draw, so upload and draw phases land
// in the same sample.
func (d *Dashboard) Update() {
	d.perfCollector.StartTick()

	d.handleInput()

	d.cam.Update()
	if d.cam.JustSettled() {
		d.rebuildViewport()
	}

	if d.paused {
		return
	}
	d.step(float64(rl.GetFrameTime()))
}

// UpdateHeadless advances one tick without graphics, pacing the clock as
// if frames arrived at the target FPS.
func (d *Dashboard) UpdateHeadless() {
	d.perfCollector.StartTick()
	if !d.paused {
		d.step(1.0 / float64(d.cfg.Screen.TargetFPS))
	}
	d.perfCollector.EndTick()
}

// step runs one tick of playback and the particle engine.
func (d *Dashboard) step(wallDt float64) {
	d.perfCollector.StartPhase(telemetry.PhaseTracks)
	d.clock.Advance(wallDt)
	d.markers.advance(d.clock.Now())

	d.perfCollector.StartPhase(telemetry.PhaseTick)
	d.layer.Tick()
	stats := d.layer.Stats()
	d.collector.RecordTick(stats.Particles, stats.Respawned, stats.Segments, stats.Speeds)
	d.tick++

	d.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	d.flushTelemetry()
}

// rebuildViewport re-derives everything that depends on the settled view:
// the layer's bounds and water mask, and the basemap raster.
func (d *Dashboard) rebuildViewport() {
	d.perfCollector.StartPhase(telemetry.PhaseMask)
	d.applyViewport()
	if !d.headless {
		d.perfCollector.StartPhase(telemetry.PhaseBasemap)
		d.renderBasemap()
	}
}

// flushTelemetry closes the stats window when due and hands the results to
// the configured sinks.
func (d *Dashboard) flushTelemetry() {
	if !d.collector.ShouldFlush(d.tick) {
		return
	}

	stats := d.collector.Flush(d.tick, len(d.samples), d.layer.WaterCells(), d.markers.count)
	perfStats := d.perfCollector.Stats()

	if d.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if d.outputManager != nil {
		if err := d.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := d.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
