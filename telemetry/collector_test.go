package telemetry

import (
	"math"
	"testing"
)

func TestCollectorWindowTicks(t *testing.T) {
	c := NewCollector(5.0, 30)

	if c.WindowDurationTicks() != 150 {
		t.Errorf("expected 150 ticks per window, got %d", c.WindowDurationTicks())
	}

	// Degenerate inputs fall back to sane values
	c = NewCollector(5.0, 0)
	if c.WindowDurationTicks() != 150 {
		t.Errorf("expected fps fallback to 30, got %d ticks", c.WindowDurationTicks())
	}

	c = NewCollector(0.001, 30)
	if c.WindowDurationTicks() != 1 {
		t.Errorf("expected window floor of 1 tick, got %d", c.WindowDurationTicks())
	}
}

func TestCollectorShouldFlush(t *testing.T) {
	c := NewCollector(2.0, 30) // 60 ticks per window

	if c.ShouldFlush(59) {
		t.Error("should not flush before window elapses")
	}
	if !c.ShouldFlush(60) {
		t.Error("should flush once window elapses")
	}

	c.Flush(60, 0, 0, 0)

	// Window start advances on flush
	if c.ShouldFlush(119) {
		t.Error("should not flush mid-way through second window")
	}
	if !c.ShouldFlush(120) {
		t.Error("should flush at end of second window")
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(2.0, 30)

	// Two ticks: 100 particles each, 5+5 respawns, 95+95 segments
	c.RecordTick(100, 5, 95, []float64{0.1, 0.2})
	c.RecordTick(100, 5, 95, []float64{0.3, 0.4})

	stats := c.Flush(60, 12, 340, 7)

	if stats.Ticks != 2 {
		t.Errorf("expected 2 ticks, got %d", stats.Ticks)
	}
	if stats.Particles != 100 {
		t.Errorf("expected 100 particles, got %d", stats.Particles)
	}
	if stats.Respawned != 10 {
		t.Errorf("expected 10 respawned, got %d", stats.Respawned)
	}
	if stats.Segments != 190 {
		t.Errorf("expected 190 segments, got %d", stats.Segments)
	}

	// Rates are per particle-tick: 200 particle-ticks in the window
	if math.Abs(stats.RespawnRate-0.05) > 1e-9 {
		t.Errorf("respawn rate = %v, want 0.05", stats.RespawnRate)
	}
	if math.Abs(stats.DrawRate-0.95) > 1e-9 {
		t.Errorf("draw rate = %v, want 0.95", stats.DrawRate)
	}

	if math.Abs(stats.SpeedMean-0.25) > 1e-9 {
		t.Errorf("speed mean = %v, want 0.25", stats.SpeedMean)
	}

	// Gauges pass straight through
	if stats.FieldSamples != 12 || stats.WaterCells != 340 || stats.SharkCount != 7 {
		t.Errorf("gauges = %d/%d/%d, want 12/340/7",
			stats.FieldSamples, stats.WaterCells, stats.SharkCount)
	}

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 60 {
		t.Errorf("window = [%d, %d], want [0, 60]",
			stats.WindowStartTick, stats.WindowEndTick)
	}
	if math.Abs(stats.WallTimeSec-2.0) > 1e-9 {
		t.Errorf("wall time = %v, want 2.0", stats.WallTimeSec)
	}
}

func TestCollectorFlushResets(t *testing.T) {
	c := NewCollector(2.0, 30)

	c.RecordTick(100, 5, 95, []float64{0.5})
	c.Flush(60, 0, 0, 0)

	// Second window saw no activity
	stats := c.Flush(120, 0, 0, 0)

	if stats.Ticks != 0 || stats.Respawned != 0 || stats.Segments != 0 {
		t.Errorf("expected zeroed counters after reset, got ticks=%d respawned=%d segments=%d",
			stats.Ticks, stats.Respawned, stats.Segments)
	}
	if stats.RespawnRate != 0 || stats.DrawRate != 0 {
		t.Errorf("expected zero rates with no particle-ticks, got %v/%v",
			stats.RespawnRate, stats.DrawRate)
	}
	if stats.SpeedMean != 0 || stats.SpeedP90 != 0 {
		t.Errorf("expected zero speed stats, got mean=%v p90=%v",
			stats.SpeedMean, stats.SpeedP90)
	}
	if stats.WindowStartTick != 60 {
		t.Errorf("expected window start 60, got %d", stats.WindowStartTick)
	}
}

func TestCollectorCopiesSpeeds(t *testing.T) {
	c := NewCollector(2.0, 30)

	buf := []float64{1.0, 2.0}
	c.RecordTick(2, 0, 2, buf)

	// The engine reuses its speed buffer between ticks
	buf[0] = 99
	buf[1] = 99

	stats := c.Flush(60, 0, 0, 0)

	if math.Abs(stats.SpeedMean-1.5) > 1e-9 {
		t.Errorf("speed mean = %v, want 1.5 (recorded values, not mutated buffer)", stats.SpeedMean)
	}
}
