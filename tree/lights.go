package tree

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/mkort/tannen/components"
	"github.com/mkort/tannen/config"
	"github.com/mkort/tannen/motion"
	"github.com/mkort/tannen/shape"
)

// LightTints are the bulb colors, cycled by index. Each tint is one instanced
// draw batch, so the renderer draws the whole string in len(LightTints) calls.
var LightTints = []rl.Color{
	{R: 255, G: 214, B: 130, A: 255}, // warm white
	{R: 235, G: 80, B: 80, A: 255},   // red
	{R: 120, G: 190, B: 255, A: 255}, // ice blue
	{R: 150, G: 230, B: 140, A: 255}, // green
}

// Lights is the fairy-light string: bulbs spiral around the cone just outside
// the foliage. Pure position interpolation, fully re-derived each frame from
// the stored endpoints; no secondary motion.
type Lights struct {
	count  int
	damper *motion.Damper
	filter ecs.Filter3[components.Anchor, components.Decor, components.Lamp]

	// buckets holds per-tint transform buffers, overwritten every frame.
	buckets [][]rl.Matrix
}

// NewLights generates the bulb string and its ECS records.
func NewLights(world *ecs.World, rng *rand.Rand, cone shape.Cone) *Lights {
	cfg := config.Cfg().Lights
	n := cfg.Count
	if n < 0 {
		n = 0
	}

	l := &Lights{
		count:   n,
		damper:  motion.NewDamper(float32(cfg.Tau), 0),
		filter:  *ecs.NewFilter3[components.Anchor, components.Decor, components.Lamp](world),
		buckets: make([][]rl.Matrix, len(LightTints)),
	}

	mapper := ecs.NewMap3[components.Anchor, components.Decor, components.Lamp](world)

	// Bulbs sit slightly outside the foliage silhouette and stop short of
	// the apex so the topper keeps its clearance.
	stringCone := shape.Cone{
		Height:     cone.Height * 0.94,
		BaseRadius: cone.BaseRadius + float32(cfg.RadiusOffset),
	}
	center := shape.Vec3{Y: cone.Height * 0.5}

	counts := make([]int, len(LightTints))
	for i := 0; i < n; i++ {
		anchor := components.Anchor{
			Formed:    shape.ConicalSpiral(i, n, stringCone),
			Scattered: center.Add(shape.UniformSphere(rng, float32(cfg.ScatterRadius))),
		}
		bucket := uint8(i % len(LightTints))
		decor := components.Decor{
			Slot:        counts[bucket],
			Bucket:      bucket,
			Scale:       float32(cfg.BulbRadius) * (0.8 + 0.4*rng.Float32()),
			SpeedFactor: 1,
		}
		counts[bucket]++
		lamp := components.Lamp{}
		mapper.NewEntity(&anchor, &decor, &lamp)
	}

	for b := range l.buckets {
		l.buckets[b] = make([]rl.Matrix, counts[b])
	}

	return l
}

// SetTarget retargets the layer's progress damper.
func (l *Lights) SetTarget(p float32) {
	l.damper.SetTarget(p)
}

// Advance steps progress and rewrites every bulb transform from its stored
// endpoints at the eased blend parameter.
func (l *Lights) Advance(dt float32) {
	p := l.damper.Step(dt)
	t := motion.EaseCubicInOut(p)

	query := l.filter.Query()
	for query.Next() {
		anchor, decor, _ := query.Get()
		pos := lerpVec(anchor.Scattered, anchor.Formed, t)
		s := decor.Scale
		m := rl.MatrixMultiply(
			rl.MatrixScale(s, s, s),
			rl.MatrixTranslate(pos.X, pos.Y, pos.Z),
		)
		l.buckets[decor.Bucket][decor.Slot] = m
	}
}

// Progress returns the current progress scalar in [0,1].
func (l *Lights) Progress() float32 {
	return l.damper.Value()
}

// Buckets returns the per-tint transform buffers for instanced drawing.
// Index b pairs with LightTints[b].
func (l *Lights) Buckets() [][]rl.Matrix {
	return l.buckets
}

// Count returns the bulb count.
func (l *Lights) Count() int {
	return l.count
}
