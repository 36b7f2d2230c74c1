// Shape generator preview tool - interactive point cloud visualization with
// sliders for the cone, jitter and scatter parameters.
//
// Usage: go run ./cmd/shapepreview
package main

import (
	"fmt"
	"math"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/mkort/tannen/config"
	"github.com/mkort/tannen/shape"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	panelWidth   = 330
)

// Generator modes.
const (
	modeSpiral = iota
	modeSphere
	modeRadial
)

var modeNames = []string{"Conical spiral", "Uniform sphere", "Biased radial"}

// PreviewParams holds the generator parameters.
type PreviewParams struct {
	Mode       int
	Count      int
	Height     float32
	BaseRadius float32
	Jitter     float32
	Radius     float32 // sphere radius / radial spread
	Seed       int64
}

// defaultParams seeds the sliders from the shipped scene configuration so the
// preview starts on the same cone the app renders.
func defaultParams() PreviewParams {
	cfg := config.Cfg()
	return PreviewParams{
		Mode:       modeSpiral,
		Count:      3000,
		Height:     float32(cfg.Foliage.Height),
		BaseRadius: float32(cfg.Foliage.BaseRadius),
		Jitter:     float32(cfg.Foliage.Jitter),
		Radius:     6.0,
		Seed:       1,
	}
}

// generate builds the point cloud for the current parameters.
func generate(p PreviewParams) []shape.Vec3 {
	rng := rand.New(rand.NewSource(p.Seed))
	cone := shape.Cone{Height: p.Height, BaseRadius: p.BaseRadius}

	points := make([]shape.Vec3, p.Count)
	for i := range points {
		switch p.Mode {
		case modeSphere:
			v := shape.UniformSphere(rng, p.Radius)
			v.Y += p.Height / 2
			points[i] = v
		case modeRadial:
			points[i] = shape.BiasedRadial(i, p.Count, rng, p.Radius, p.Height*0.3)
		default:
			points[i] = shape.Jitter(rng, shape.ConicalSpiral(i, p.Count, cone), p.Jitter)
		}
	}
	return points
}

func main() {
	config.MustInit("")

	rl.InitWindow(windowWidth, windowHeight, "Shape Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	params := defaultParams()
	points := generate(params)
	yaw := float32(0)

	for !rl.WindowShouldClose() {
		yaw += rl.GetFrameTime() * 0.4

		camDist := params.Height * 1.8
		cam := rl.Camera3D{
			Position: rl.NewVector3(
				camDist*float32(math.Cos(float64(yaw))),
				params.Height*0.7,
				camDist*float32(math.Sin(float64(yaw))),
			),
			Target:     rl.NewVector3(0, params.Height*0.4, 0),
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       50,
			Projection: rl.CameraPerspective,
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 12, G: 14, B: 24, A: 255})

		rl.BeginMode3D(cam)
		rl.DrawGrid(12, 1)
		for _, pt := range points {
			rl.DrawPoint3D(rl.NewVector3(pt.X, pt.Y, pt.Z), rl.Color{R: 90, G: 190, B: 110, A: 255})
		}
		rl.EndMode3D()

		// Parameter panel
		panelX := float32(windowWidth - panelWidth - 20)
		panelY := float32(20)
		needsRegen := false

		rl.DrawText("Generator Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		rl.DrawText(fmt.Sprintf("Mode: %s", modeNames[params.Mode]), int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 20
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 100, Height: 26}, "Spiral") {
			params.Mode = modeSpiral
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 105, Y: panelY, Width: 100, Height: 26}, "Sphere") {
			params.Mode = modeSphere
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 210, Y: panelY, Width: 100, Height: 26}, "Radial") {
			params.Mode = modeRadial
			needsRegen = true
		}
		panelY += 40

		rl.DrawText("Count", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newCount := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
			"100", "20000",
			float32(params.Count), 100, 20000,
		)
		rl.DrawText(fmt.Sprintf("%d", params.Count), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.RayWhite)
		if int(newCount) != params.Count {
			params.Count = int(newCount)
			needsRegen = true
		}
		panelY += 35

		rl.DrawText("Height (cone)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newHeight := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
			"3", "15",
			params.Height, 3, 15,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.Height), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.RayWhite)
		if newHeight != params.Height {
			params.Height = newHeight
			needsRegen = true
		}
		panelY += 35

		rl.DrawText("Base radius (cone)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newBase := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
			"1", "8",
			params.BaseRadius, 1, 8,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.BaseRadius), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.RayWhite)
		if newBase != params.BaseRadius {
			params.BaseRadius = newBase
			needsRegen = true
		}
		panelY += 35

		rl.DrawText("Jitter (spiral)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newJitter := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
			"0", "2.0",
			params.Jitter, 0, 2.0,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.Jitter), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.RayWhite)
		if newJitter != params.Jitter {
			params.Jitter = newJitter
			needsRegen = true
		}
		panelY += 35

		rl.DrawText("Radius (sphere/radial)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newRadius := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
			"1", "12",
			params.Radius, 1, 12,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.Radius), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.RayWhite)
		if newRadius != params.Radius {
			params.Radius = newRadius
			needsRegen = true
		}
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 150, Height: 30}, "Random Seed") {
			params.Seed = int64(rl.GetRandomValue(1, 1<<30))
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 160, Y: panelY, Width: 150, Height: 30}, "Reset All") {
			params = defaultParams()
			needsRegen = true
		}

		if needsRegen {
			points = generate(params)
		}

		rl.DrawFPS(10, 10)
		rl.EndDrawing()
	}
}
