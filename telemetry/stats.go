// Package telemetry tracks morph progress, frame timing and convergence
// events, and exports them as CSV for offline analysis.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one stats window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Morph state at window end
	Target           string  `csv:"target"`
	FoliageProgress  float64 `csv:"foliage_progress"`
	LightsProgress   float64 `csv:"lights_progress"`
	OrnamentProgress float64 `csv:"ornament_progress"`
	TopperProgress   float64 `csv:"topper_progress"`
	GiftProgress     float64 `csv:"gift_progress"`

	// Frame timing over the window
	Frames      int     `csv:"frames"`
	FrameMeanMS float64 `csv:"frame_mean_ms"`
	FrameP50MS  float64 `csv:"frame_p50_ms"`
	FrameP95MS  float64 `csv:"frame_p95_ms"`
	FrameMaxMS  float64 `csv:"frame_max_ms"`
	FPS         float64 `csv:"fps"`
}

// FrameTimingStats summarizes a batch of frame durations in milliseconds.
func FrameTimingStats(framesMS []float64) (mean, p50, p95, max float64) {
	n := len(framesMS)
	if n == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, n)
	copy(sorted, framesMS)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	max = sorted[n-1]
	return mean, p50, p95, max
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.String("target", s.Target),
		slog.Float64("foliage", s.FoliageProgress),
		slog.Float64("lights", s.LightsProgress),
		slog.Float64("ornaments", s.OrnamentProgress),
		slog.Float64("topper", s.TopperProgress),
		slog.Float64("gifts", s.GiftProgress),
		slog.Int("frames", s.Frames),
		slog.Float64("frame_mean_ms", s.FrameMeanMS),
		slog.Float64("frame_p95_ms", s.FrameP95MS),
		slog.Float64("fps", s.FPS),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"target", s.Target,
		"foliage", s.FoliageProgress,
		"lights", s.LightsProgress,
		"ornaments", s.OrnamentProgress,
		"topper", s.TopperProgress,
		"gifts", s.GiftProgress,
		"frames", s.Frames,
		"frame_mean_ms", s.FrameMeanMS,
		"frame_p50_ms", s.FrameP50MS,
		"frame_p95_ms", s.FrameP95MS,
		"frame_max_ms", s.FrameMaxMS,
		"fps", s.FPS,
	)
}
