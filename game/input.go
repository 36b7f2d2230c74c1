package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/mkort/tannen/renderer"
	"github.com/mkort/tannen/telemetry"
)

// Mouse orbit sensitivity, radians per pixel.
const dragSensitivity = 0.005

// Update runs one graphical frame: input, then animation, then telemetry.
// Draw must follow in the same frame to close the perf tick.
func (g *Game) Update() {
	g.perf.RecordFrame()
	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhaseInput)
	g.handleInput()

	g.perf.StartPhase(telemetry.PhaseAdvance)
	dt := rl.GetFrameTime()
	if dt > 0.1 {
		// Window drags and breakpoints produce huge deltas; cap them so the
		// dampers don't snap.
		dt = 0.1
	}
	g.step(dt)

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.stepTelemetry(g.perf.FrameDurationMS())
}

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.toggleTarget()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyO) {
		g.autoOrbit = !g.autoOrbit
	}
	if rl.IsKeyPressed(rl.KeyB) {
		g.bloom.SetEnabled(!g.bloom.Enabled())
	}

	// Click toggles the morph. Suppressed while the panel is open so panel
	// clicks don't also retarget the tree.
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !g.panel.IsVisible() {
		g.toggleTarget()
	}

	// Right-drag orbits manually.
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		delta := rl.GetMouseDelta()
		g.orbit.Rotate(delta.X*dragSensitivity, -delta.Y*dragSensitivity)
	}

	// Wheel dollies in and out.
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.orbit.Dolly(-wheel * 0.8)
	}
}

// handleResize propagates new window dimensions to the offscreen target.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	if w == g.screenW && h == g.screenH {
		return
	}
	g.screenW = w
	g.screenH = h

	// The bloom target is sized to the window; rebuild it.
	enabled := g.bloom.Enabled()
	g.bloom.Unload()
	b, err := renderer.NewBloom(w, h)
	if err != nil {
		slog.Error("failed to rebuild bloom target", "error", err)
		return
	}
	b.SetEnabled(enabled)
	g.bloom = b
}
