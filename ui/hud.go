package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title        string
	Target       string
	Morphing     bool
	Tick         int32
	FPS          int32
	ScreenWidth  int32
	ScreenHeight int32

	// Layer progress in assembly order, as (name, value) pairs.
	Layers []LayerProgress
}

// LayerProgress is one HUD progress bar row.
type LayerProgress struct {
	Name  string
	Value float32
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	status := "settled"
	if data.Morphing {
		status = "morphing"
	}
	rl.DrawText(
		fmt.Sprintf("Target: %s (%s) | Tick: %d | FPS: %d", data.Target, status, data.Tick, data.FPS),
		10, 35, 16, rl.LightGray,
	)

	// Per-layer progress bars
	r := h.renderer
	width := int32(240)
	y := int32(60)
	for _, layer := range data.Layers {
		y = r.DrawBar(10, y, layer.Name, layer.Value, width)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
