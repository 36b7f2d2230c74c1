package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlState mirrors the toggles and sliders the panel edits. The caller
// passes the current values in and applies whatever came back changed.
type ControlState struct {
	Formed     bool
	AutoOrbit  bool
	Bloom      bool
	OrbitSpeed float32
}

// ControlPanel renders the right-side raygui panel.
type ControlPanel struct {
	renderer *Renderer
	width    int32
	visible  bool
}

// NewControlPanel creates the panel. It starts hidden; Tab toggles it.
func NewControlPanel(width int32) *ControlPanel {
	return &ControlPanel{
		renderer: NewRenderer(),
		width:    width,
		visible:  false,
	}
}

// Toggle switches panel visibility and returns the new state.
func (c *ControlPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlPanel) IsVisible() bool {
	return c.visible
}

// Draw renders the panel and returns the possibly-edited state.
func (c *ControlPanel) Draw(screenWidth int32, state ControlState) ControlState {
	if !c.visible {
		return state
	}

	r := c.renderer
	padding := r.Theme.Padding
	x := screenWidth - c.width - 10
	y := int32(10)
	innerW := float32(c.width - padding*2)

	r.DrawPanel(x, y, c.width, 180)
	px := float32(x + padding)
	py := float32(y + padding)

	rl.DrawText("Controls", x+padding, y+padding, 16, rl.White)
	py += 28

	label := "Form Tree"
	if state.Formed {
		label = "Scatter"
	}
	if gui.Button(rl.Rectangle{X: px, Y: py, Width: innerW, Height: 28}, label) {
		state.Formed = !state.Formed
	}
	py += 36

	state.AutoOrbit = gui.CheckBox(rl.Rectangle{X: px, Y: py, Width: 16, Height: 16}, "Auto orbit", state.AutoOrbit)
	py += 24

	state.Bloom = gui.CheckBox(rl.Rectangle{X: px, Y: py, Width: 16, Height: 16}, "Bloom", state.Bloom)
	py += 28

	rl.DrawText("Orbit speed", int32(px), int32(py), 12, rl.Gray)
	py += 16
	state.OrbitSpeed = gui.SliderBar(
		rl.Rectangle{X: px, Y: py, Width: innerW - 40, Height: 16},
		"0", "1.0",
		state.OrbitSpeed, 0, 1.0,
	)

	return state
}
