// Package game is the presentation shell: it owns the tree, the orbit
// camera, the renderers and the telemetry plumbing, and drives them from
// raylib's frame clock (or a fixed step when headless).
package game

import (
	"fmt"
	"log/slog"

	"github.com/mkort/tannen/camera"
	"github.com/mkort/tannen/config"
	"github.com/mkort/tannen/renderer"
	"github.com/mkort/tannen/shape"
	"github.com/mkort/tannen/telemetry"
	"github.com/mkort/tannen/tree"
	"github.com/mkort/tannen/ui"
)

// DT is the fixed step used in headless mode, seconds per tick.
const DT = 1.0 / 60.0

// Options configures a game instance.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
}

// Game holds the complete application state.
type Game struct {
	tree  *tree.Tree
	orbit *camera.Orbit

	// Renderers; all nil in headless mode.
	foliage *renderer.Foliage
	decor   *renderer.Decor
	star    *renderer.Star
	bloom   *renderer.Bloom
	hud     *ui.HUD
	panel   *ui.ControlPanel

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	morphs    *telemetry.MorphTracker
	output    *telemetry.OutputManager

	tick      int32
	elapsed   float32
	autoOrbit bool
	headless  bool
	logStats  bool

	screenW, screenH int32
}

// New creates a game instance. In graphical mode it compiles shaders and
// uploads meshes, so it must run after rl.InitWindow; any GPU acquisition
// failure is returned as a fatal error.
func New(opts Options) (*Game, error) {
	cfg := config.Cfg()

	g := &Game{
		tree:      tree.New(opts.Seed),
		headless:  opts.Headless,
		logStats:  opts.LogStats,
		autoOrbit: true,
		screenW:   int32(cfg.Screen.Width),
		screenH:   int32(cfg.Screen.Height),
	}

	lookAt := shape.Vec3{Y: float32(cfg.Foliage.Height) * 0.45}
	g.orbit = camera.New(
		lookAt,
		float32(cfg.Camera.Distance),
		float32(cfg.Camera.MinDistance),
		float32(cfg.Camera.MaxDistance),
		float32(cfg.Camera.PitchDeg)*degToRad,
		float32(cfg.Camera.OrbitSpeed),
	)

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(statsWindow, DT)
	g.perf = telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow)
	g.morphs = telemetry.NewMorphTracker(float32(cfg.Telemetry.ConvergeEpsilon), DT)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output: %w", err)
	}
	g.output = om
	if err := g.output.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	if !opts.Headless {
		if g.foliage, err = renderer.NewFoliage(g.tree.Foliage); err != nil {
			return nil, err
		}
		if g.decor, err = renderer.NewDecor(); err != nil {
			return nil, err
		}
		if g.star, err = renderer.NewStar(); err != nil {
			return nil, err
		}
		if g.bloom, err = renderer.NewBloom(g.screenW, g.screenH); err != nil {
			return nil, err
		}
		g.hud = ui.NewHUD()
		g.panel = ui.NewControlPanel(220)
	}

	return g, nil
}

const degToRad = 3.14159265358979 / 180

// Tick returns the current tick count.
func (g *Game) Tick() int32 {
	return g.tick
}

// Tree exposes the scene for inspection.
func (g *Game) Tree() *tree.Tree {
	return g.tree
}

// toggleTarget flips the morph target and starts convergence tracking.
func (g *Game) toggleTarget() {
	s := g.tree.Toggle()
	g.morphs.Begin(g.tick, s.String(), targetProgress(s))
	slog.Info("morph target", "target", s.String(), "tick", g.tick)
}

func targetProgress(s tree.Shape) float32 {
	if s == tree.Formed {
		return 1
	}
	return 0
}

// step advances the animation by dt seconds.
func (g *Game) step(dt float32) {
	g.tick++
	g.elapsed += dt

	g.tree.Advance(dt, g.elapsed)
	if g.autoOrbit {
		g.orbit.Advance(dt)
	}

	if e, ok := g.morphs.Observe(g.tick, g.tree.LayerProgress()); ok {
		e.LogEvent()
		if err := g.output.WriteMorph(e); err != nil {
			slog.Error("failed to write morph event", "error", err)
		}
	}
}

// stepTelemetry records the frame and flushes window stats at boundaries.
func (g *Game) stepTelemetry(frameMS float64) {
	if frameMS > 0 {
		g.collector.RecordFrame(frameMS)
	}
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.tree.Target().String(), g.tree.LayerProgress())
	if g.logStats {
		stats.LogStats()
	}
	if err := g.output.WriteStats(stats); err != nil {
		slog.Error("failed to write stats", "error", err)
	}

	perfStats := g.perf.Stats()
	if g.logStats {
		perfStats.LogStats()
	}
	if err := g.output.WritePerf(perfStats, g.tick); err != nil {
		slog.Error("failed to write perf stats", "error", err)
	}
}

// UpdateHeadless runs one fixed-dt tick without any rendering. With nothing
// driving input, it ping-pongs the morph target: as soon as one morph
// settles, the next one starts, so soak runs exercise the transition
// continuously.
func (g *Game) UpdateHeadless() {
	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhaseAdvance)

	if !g.morphs.Active() {
		g.toggleTarget()
	}
	g.step(DT)

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.stepTelemetry(DT * 1000)
	g.perf.EndTick()
}

// Unload releases resources and flushes output.
func (g *Game) Unload() {
	if g.foliage != nil {
		g.foliage.Unload()
	}
	if g.decor != nil {
		g.decor.Unload()
	}
	if g.star != nil {
		g.star.Unload()
	}
	if g.bloom != nil {
		g.bloom.Unload()
	}
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
