package telemetry

import "log/slog"

// MorphEvent records one completed morph: when it was requested, which shape
// it targeted, and how long each layer took to settle within epsilon of the
// target. One row per toggle in morphs.csv.
type MorphEvent struct {
	Index        int     `csv:"index"`
	StartTick    int32   `csv:"start_tick"`
	StartTimeSec float64 `csv:"start_time"`
	Target       string  `csv:"target"`

	FoliageSec  float64 `csv:"foliage_sec"`
	LightsSec   float64 `csv:"lights_sec"`
	OrnamentSec float64 `csv:"ornament_sec"`
	TopperSec   float64 `csv:"topper_sec"`
	GiftSec     float64 `csv:"gift_sec"`
	TotalSec    float64 `csv:"total_sec"`
}

// LogEvent logs the completed morph using slog.
func (e MorphEvent) LogEvent() {
	slog.Info("morph complete",
		"index", e.Index,
		"target", e.Target,
		"start_time", e.StartTimeSec,
		"foliage_sec", e.FoliageSec,
		"lights_sec", e.LightsSec,
		"ornaments_sec", e.OrnamentSec,
		"topper_sec", e.TopperSec,
		"gifts_sec", e.GiftSec,
		"total_sec", e.TotalSec,
	)
}

// MorphTracker watches per-layer progress after each toggle and stamps the
// moment every layer converges. A retarget mid-flight abandons the pending
// event and starts a fresh one; only completed morphs are emitted.
type MorphTracker struct {
	epsilon float32
	dt      float32

	active    bool
	index     int
	startTick int32
	target    string
	targetP   float32
	layerSec  map[string]float64
}

// NewMorphTracker creates a tracker. epsilon is the convergence band around
// the target progress; dt is seconds per tick.
func NewMorphTracker(epsilon, dt float32) *MorphTracker {
	return &MorphTracker{
		epsilon: epsilon,
		dt:      dt,
	}
}

// Begin starts tracking a new morph toward targetProgress (0 or 1).
func (m *MorphTracker) Begin(tick int32, target string, targetProgress float32) {
	m.active = true
	m.index++
	m.startTick = tick
	m.target = target
	m.targetP = targetProgress
	m.layerSec = make(map[string]float64, len(Layers))
}

// Active reports whether a morph is still settling.
func (m *MorphTracker) Active() bool {
	return m.active
}

// Observe samples per-layer progress at the given tick. When the last layer
// enters the epsilon band the completed event is returned; otherwise ok is
// false.
func (m *MorphTracker) Observe(tick int32, progress map[string]float32) (MorphEvent, bool) {
	if !m.active {
		return MorphEvent{}, false
	}

	elapsed := float64(tick-m.startTick) * float64(m.dt)
	done := true
	for _, layer := range Layers {
		if _, settled := m.layerSec[layer]; settled {
			continue
		}
		p := progress[layer]
		if abs32(p-m.targetP) <= m.epsilon {
			m.layerSec[layer] = elapsed
		} else {
			done = false
		}
	}
	if !done {
		return MorphEvent{}, false
	}

	m.active = false
	e := MorphEvent{
		Index:        m.index,
		StartTick:    m.startTick,
		StartTimeSec: float64(m.startTick) * float64(m.dt),
		Target:       m.target,

		FoliageSec:  m.layerSec[LayerFoliage],
		LightsSec:   m.layerSec[LayerLights],
		OrnamentSec: m.layerSec[LayerOrnaments],
		TopperSec:   m.layerSec[LayerTopper],
		GiftSec:     m.layerSec[LayerGifts],
	}
	for _, sec := range m.layerSec {
		if sec > e.TotalSec {
			e.TotalSec = sec
		}
	}
	return e, true
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
