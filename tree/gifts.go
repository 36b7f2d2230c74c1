package tree

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/mkort/tannen/components"
	"github.com/mkort/tannen/config"
	"github.com/mkort/tannen/motion"
	"github.com/mkort/tannen/shape"
)

// GiftTints are the box colors, cycled by index.
var GiftTints = []rl.Color{
	{R: 170, G: 50, B: 60, A: 255},  // crimson
	{R: 60, G: 120, B: 80, A: 255},  // pine
	{R: 190, G: 150, B: 70, A: 255}, // ochre
}

// Gifts are the sparse ground accents under the tree. They share the
// ornament animation path minus the float: eased blend from a scattered
// endpoint to a ground-biased golden-angle placement, growing in with
// formation.
type Gifts struct {
	count  int
	damper *motion.Damper
	filter ecs.Filter4[components.Anchor, components.Decor, components.Spin, components.GiftBox]

	buckets [][]rl.Matrix
}

// NewGifts generates the accent boxes.
func NewGifts(world *ecs.World, rng *rand.Rand) *Gifts {
	cfg := config.Cfg().Gifts
	n := cfg.Count
	if n < 0 {
		n = 0
	}

	g := &Gifts{
		count:   n,
		damper:  motion.NewDamper(float32(config.Cfg().Ornaments.Tau), 0),
		filter:  *ecs.NewFilter4[components.Anchor, components.Decor, components.Spin, components.GiftBox](world),
		buckets: make([][]rl.Matrix, len(GiftTints)),
	}

	mapper := ecs.NewMap4[components.Anchor, components.Decor, components.Spin, components.GiftBox](world)

	center := shape.Vec3{Y: float32(config.Cfg().Foliage.Height) * 0.5}
	counts := make([]int, len(GiftTints))
	for i := 0; i < n; i++ {
		anchor := components.Anchor{
			Formed:    shape.BiasedRadial(i, n, rng, float32(cfg.Spread), float32(cfg.MaxHeight)),
			Scattered: center.Add(shape.UniformSphere(rng, float32(cfg.ScatterRadius))),
		}
		bucket := uint8(i % len(GiftTints))
		size := float32(cfg.MinSize) + rng.Float32()*float32(cfg.MaxSize-cfg.MinSize)
		decor := components.Decor{
			Slot:        counts[bucket],
			Bucket:      bucket,
			Scale:       size,
			SpeedFactor: 1,
		}
		counts[bucket]++
		// Boxes keep a fixed random facing; no time-driven spin.
		spin := components.Spin{
			Base: shape.Vec3{Y: rng.Float32() * 2 * math.Pi},
		}
		box := components.GiftBox{}
		mapper.NewEntity(&anchor, &decor, &spin, &box)
	}

	for b := range g.buckets {
		g.buckets[b] = make([]rl.Matrix, counts[b])
	}

	return g
}

// SetTarget retargets the layer's progress damper.
func (g *Gifts) SetTarget(p float32) {
	g.damper.SetTarget(p)
}

// Advance steps progress and rewrites the box transforms. The box rests on
// its placement point, so the translation lifts it by half its current
// height.
func (g *Gifts) Advance(dt float32) {
	p := g.damper.Step(dt)
	t := motion.EaseCubicInOut(p)

	query := g.filter.Query()
	for query.Next() {
		anchor, decor, spin, _ := query.Get()

		pos := lerpVec(anchor.Scattered, anchor.Formed, t)
		s := decor.Scale * t
		m := rl.MatrixMultiply(
			rl.MatrixMultiply(rl.MatrixScale(s, s, s), rl.MatrixRotateY(spin.Base.Y)),
			rl.MatrixTranslate(pos.X, pos.Y+s*0.5, pos.Z),
		)
		g.buckets[decor.Bucket][decor.Slot] = m
	}
}

// Progress returns the current progress scalar in [0,1].
func (g *Gifts) Progress() float32 {
	return g.damper.Value()
}

// Buckets returns the per-tint transform buffers for instanced drawing.
// Index b pairs with GiftTints[b].
func (g *Gifts) Buckets() [][]rl.Matrix {
	return g.buckets
}

// Count returns the box count.
func (g *Gifts) Count() int {
	return g.count
}
