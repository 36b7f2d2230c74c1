package telemetry

import (
	"math"
	"testing"
)

func TestFrameTimingStatsEmpty(t *testing.T) {
	mean, p50, p95, max := FrameTimingStats(nil)
	if mean != 0 || p50 != 0 || p95 != 0 || max != 0 {
		t.Errorf("empty input should give zeros, got %v %v %v %v", mean, p50, p95, max)
	}
}

func TestFrameTimingStats(t *testing.T) {
	frames := []float64{16, 16, 16, 16, 16, 16, 16, 16, 16, 33}

	mean, p50, p95, max := FrameTimingStats(frames)

	if math.Abs(mean-17.7) > 0.01 {
		t.Errorf("mean = %v, want 17.7", mean)
	}
	if p50 != 16 {
		t.Errorf("p50 = %v, want 16", p50)
	}
	if p95 < 16 || p95 > 33 {
		t.Errorf("p95 = %v, want within [16, 33]", p95)
	}
	if max != 33 {
		t.Errorf("max = %v, want 33", max)
	}
}

func TestFrameTimingStatsDoesNotMutateInput(t *testing.T) {
	frames := []float64{30, 10, 20}
	FrameTimingStats(frames)
	if frames[0] != 30 || frames[1] != 10 || frames[2] != 20 {
		t.Errorf("input slice was reordered: %v", frames)
	}
}

func TestCollectorWindowBoundary(t *testing.T) {
	c := NewCollector(2.0, 1.0/60.0) // 120 ticks per window

	if c.WindowDurationTicks() != 120 {
		t.Fatalf("window ticks = %d, want 120", c.WindowDurationTicks())
	}
	if c.ShouldFlush(119) {
		t.Error("should not flush before the window closes")
	}
	if !c.ShouldFlush(120) {
		t.Error("should flush at the window boundary")
	}
}

func TestCollectorFlushResets(t *testing.T) {
	c := NewCollector(1.0, 1.0/60.0)

	for i := 0; i < 60; i++ {
		c.RecordFrame(16.0)
	}
	progress := map[string]float32{
		LayerFoliage:   0.5,
		LayerLights:    0.3,
		LayerOrnaments: 0.4,
		LayerTopper:    0.2,
		LayerGifts:     0.4,
	}

	stats := c.Flush(60, "formed", progress)

	if stats.Frames != 60 {
		t.Errorf("frames = %d, want 60", stats.Frames)
	}
	if stats.Target != "formed" {
		t.Errorf("target = %q, want formed", stats.Target)
	}
	if math.Abs(stats.FoliageProgress-0.5) > 1e-6 {
		t.Errorf("foliage progress = %v, want 0.5", stats.FoliageProgress)
	}
	if math.Abs(stats.LightsProgress-0.3) > 1e-6 {
		t.Errorf("lights progress = %v, want 0.3", stats.LightsProgress)
	}
	if math.Abs(stats.FrameMeanMS-16) > 1e-6 {
		t.Errorf("frame mean = %v, want 16", stats.FrameMeanMS)
	}
	if math.Abs(stats.FPS-62.5) > 0.01 {
		t.Errorf("fps = %v, want 62.5", stats.FPS)
	}
	if math.Abs(stats.SimTimeSec-1.0) > 1e-6 {
		t.Errorf("sim time = %v, want 1.0", stats.SimTimeSec)
	}

	// Next window starts empty.
	next := c.Flush(120, "formed", progress)
	if next.Frames != 0 {
		t.Errorf("frames after reset = %d, want 0", next.Frames)
	}
	if next.WindowStartTick != 60 {
		t.Errorf("window start = %d, want 60", next.WindowStartTick)
	}
}
