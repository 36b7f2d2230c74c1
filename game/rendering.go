package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/mkort/tannen/config"
	"github.com/mkort/tannen/telemetry"
	"github.com/mkort/tannen/tree"
	"github.com/mkort/tannen/ui"
)

const controlsLegend = "Space/Click: toggle | RMB drag: orbit | Wheel: zoom | Tab: panel | O: auto-orbit | B: bloom"

// Draw renders the frame: 3D scene into the bloom target, post pass, HUD.
func (g *Game) Draw() {
	cam := g.rlCamera()

	rl.BeginDrawing()

	g.bloom.Begin()
	g.drawBackground()

	rl.BeginMode3D(cam)
	g.drawGround()

	// Opaque decorations first, then the additive layers on top.
	g.perf.StartPhase(telemetry.PhaseDecor)
	g.decor.DrawOrnaments(g.tree.Ornaments)
	g.decor.DrawGifts(g.tree.Gifts)

	g.perf.StartPhase(telemetry.PhaseFoliage)
	g.foliage.Draw(cam, g.tree.Foliage.Progress(), g.elapsed)
	g.decor.DrawLights(g.tree.Lights)
	g.star.Draw(g.tree.Topper)
	rl.EndMode3D()

	g.bloom.End()

	g.perf.StartPhase(telemetry.PhasePostFX)
	g.bloom.Present()

	g.perf.StartPhase(telemetry.PhaseUI)
	g.drawHUD()

	rl.EndDrawing()
	g.perf.EndTick()
}

// rlCamera converts the orbit pose into a raylib camera.
func (g *Game) rlCamera() rl.Camera3D {
	pos := g.orbit.Position()
	target := g.orbit.Target
	return rl.Camera3D{
		Position:   rl.NewVector3(pos.X, pos.Y, pos.Z),
		Target:     rl.NewVector3(target.X, target.Y, target.Z),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       float32(config.Cfg().Camera.FovY),
		Projection: rl.CameraPerspective,
	}
}

// drawBackground paints the night-sky gradient.
func (g *Game) drawBackground() {
	top := rl.Color{R: 6, G: 8, B: 20, A: 255}
	bottom := rl.Color{R: 20, G: 26, B: 46, A: 255}
	rl.DrawRectangleGradientV(0, 0, g.screenW, g.screenH, top, bottom)
}

// drawGround draws a dim disc under the tree so the gifts have a floor.
func (g *Game) drawGround() {
	radius := float32(config.Cfg().Foliage.BaseRadius) * 2.2
	rl.DrawCylinder(rl.NewVector3(0, -0.06, 0), radius, radius, 0.05, 48, rl.Color{R: 16, G: 24, B: 20, A: 255})
}

// drawHUD renders the overlay text, progress bars and control panel.
func (g *Game) drawHUD() {
	progress := g.tree.LayerProgress()
	layers := make([]ui.LayerProgress, 0, len(telemetry.Layers))
	for _, name := range telemetry.Layers {
		layers = append(layers, ui.LayerProgress{Name: name, Value: progress[name]})
	}

	g.hud.Draw(ui.HUDData{
		Title:        "Tannen",
		Target:       g.tree.Target().String(),
		Morphing:     g.morphs.Active(),
		Tick:         g.tick,
		FPS:          rl.GetFPS(),
		ScreenWidth:  g.screenW,
		ScreenHeight: g.screenH,
		Layers:       layers,
	})
	g.hud.DrawControls(g.screenW, g.screenH, controlsLegend)

	state := ui.ControlState{
		Formed:     g.tree.Target() == tree.Formed,
		AutoOrbit:  g.autoOrbit,
		Bloom:      g.bloom.Enabled(),
		OrbitSpeed: g.orbit.AutoSpeed,
	}
	next := g.panel.Draw(g.screenW, state)

	if next.Formed != state.Formed {
		g.toggleTarget()
	}
	g.autoOrbit = next.AutoOrbit
	g.bloom.SetEnabled(next.Bloom)
	g.orbit.AutoSpeed = next.OrbitSpeed
}
