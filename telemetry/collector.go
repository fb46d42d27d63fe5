package telemetry

// Collector accumulates engine activity within time windows and produces
// WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	tickSec             float64

	// Current window tracking
	windowStartTick int32

	// Accumulators for the current window
	ticks         int
	particleTicks int
	particles     int
	respawned     int
	segments      int
	speeds        []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in wall seconds
// targetFPS: ticks per second (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, targetFPS int) *Collector {
	if targetFPS < 1 {
		targetFPS = 30
	}
	ticksPerWindow := int32(windowDurationSec * float64(targetFPS))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		tickSec:             1.0 / float64(targetFPS),
		windowStartTick:     0,
	}
}

// RecordTick folds one engine tick into the current window. The speeds slice
// is copied, so the engine's reused buffer is safe to pass.
func (c *Collector) RecordTick(particles, respawned, segments int, speeds []float64) {
	c.ticks++
	c.particles = particles
	c.particleTicks += particles
	c.respawned += respawned
	c.segments += segments
	c.speeds = append(c.speeds, speeds...)
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// The gauges are sampled at flush time rather than accumulated:
// fieldSamples is the active current sample count, waterCells the mask
// size, sharks the number of loaded tracks.
func (c *Collector) Flush(currentTick int32, fieldSamples, waterCells, sharks int) WindowStats {
	var respawnRate, drawRate float64
	if c.particleTicks > 0 {
		respawnRate = float64(c.respawned) / float64(c.particleTicks)
		drawRate = float64(c.segments) / float64(c.particleTicks)
	}

	mean, std, p50, p90 := speedStats(c.speeds)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		WallTimeSec:     float64(currentTick) * c.tickSec,

		Ticks:     c.ticks,
		Particles: c.particles,
		Respawned: c.respawned,
		Segments:  c.segments,

		RespawnRate: respawnRate,
		DrawRate:    drawRate,

		SpeedMean: mean,
		SpeedStd:  std,
		SpeedP50:  p50,
		SpeedP90:  p90,

		FieldSamples: fieldSamples,
		WaterCells:   waterCells,
		SharkCount:   sharks,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.ticks = 0
	c.particleTicks = 0
	c.respawned = 0
	c.segments = 0
	c.speeds = c.speeds[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
