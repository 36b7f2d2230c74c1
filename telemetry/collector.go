package telemetry

// Layer name keys used across stats, events and logs.
const (
	LayerFoliage   = "foliage"
	LayerLights    = "lights"
	LayerOrnaments = "ornaments"
	LayerTopper    = "topper"
	LayerGifts     = "gifts"
)

// Layers lists the layer keys in assembly order.
var Layers = []string{LayerFoliage, LayerLights, LayerOrnaments, LayerTopper, LayerGifts}

// Collector accumulates frame timings within fixed tick windows and produces
// WindowStats when flushed.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	windowStartTick int32
	framesMS        []float64
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in animation seconds.
// dt: seconds per tick, used for tick-to-time conversion.
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		framesMS:            make([]float64, 0, ticksPerWindow),
	}
}

// RecordFrame records one frame's duration in milliseconds.
func (c *Collector) RecordFrame(ms float64) {
	c.framesMS = append(c.framesMS, ms)
}

// ShouldFlush returns true once enough ticks have passed to close the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats from the accumulated frames plus the morph
// state sampled at window end, then resets for the next window.
func (c *Collector) Flush(currentTick int32, target string, progress map[string]float32) WindowStats {
	mean, p50, p95, max := FrameTimingStats(c.framesMS)

	var fps float64
	if mean > 0 {
		fps = 1000 / mean
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),

		Target:           target,
		FoliageProgress:  float64(progress[LayerFoliage]),
		LightsProgress:   float64(progress[LayerLights]),
		OrnamentProgress: float64(progress[LayerOrnaments]),
		TopperProgress:   float64(progress[LayerTopper]),
		GiftProgress:     float64(progress[LayerGifts]),

		Frames:      len(c.framesMS),
		FrameMeanMS: mean,
		FrameP50MS:  p50,
		FrameP95MS:  p95,
		FrameMaxMS:  max,
		FPS:         fps,
	}

	c.windowStartTick = currentTick
	c.framesMS = c.framesMS[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
