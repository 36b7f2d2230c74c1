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

// OrnamentTints are the bauble colors, cycled by index; one instanced batch
// per tint, like the lights.
var OrnamentTints = []rl.Color{
	{R: 200, G: 40, B: 50, A: 255},   // red
	{R: 218, G: 165, B: 60, A: 255},  // gold
	{R: 60, G: 90, B: 180, A: 255},   // blue
	{R: 225, G: 225, B: 230, A: 255}, // silver
}

// Ornaments is the bauble layer: eased position blend plus a vertical float
// that fades out as the tree forms, continuous time-driven spin, and a scale
// that grows with formation so baubles are invisible while scattered. Tint
// and base rotation are assigned once at generation, never recomputed.
type Ornaments struct {
	count  int
	damper *motion.Damper
	filter ecs.Filter4[components.Anchor, components.Decor, components.Spin, components.Bauble]

	buckets [][]rl.Matrix
}

// NewOrnaments generates the bauble records.
func NewOrnaments(world *ecs.World, rng *rand.Rand, cone shape.Cone) *Ornaments {
	cfg := config.Cfg().Ornaments
	n := cfg.Count
	if n < 0 {
		n = 0
	}

	o := &Ornaments{
		count:   n,
		damper:  motion.NewDamper(float32(cfg.Tau), 0),
		filter:  *ecs.NewFilter4[components.Anchor, components.Decor, components.Spin, components.Bauble](world),
		buckets: make([][]rl.Matrix, len(OrnamentTints)),
	}

	mapper := ecs.NewMap4[components.Anchor, components.Decor, components.Spin, components.Bauble](world)

	hangCone := shape.Cone{
		Height:     cone.Height * 0.9,
		BaseRadius: cone.BaseRadius + float32(cfg.RadiusOffset),
	}
	center := shape.Vec3{Y: cone.Height * 0.5}

	counts := make([]int, len(OrnamentTints))
	for i := 0; i < n; i++ {
		anchor := components.Anchor{
			Formed:    shape.ConicalSpiral(i, n, hangCone),
			Scattered: center.Add(shape.UniformSphere(rng, float32(cfg.ScatterRadius))),
		}
		bucket := uint8(i % len(OrnamentTints))
		decor := components.Decor{
			Slot:        counts[bucket],
			Bucket:      bucket,
			Scale:       float32(cfg.BaubleRadius) * (0.85 + 0.3*rng.Float32()),
			SpeedFactor: 0.7 + 0.6*rng.Float32(),
		}
		counts[bucket]++
		spin := components.Spin{
			Base:  shape.RandomRotation(rng),
			Speed: float32(cfg.SpinSpeed) * (0.6 + 0.8*rng.Float32()),
			Phase: rng.Float32() * 2 * math.Pi,
		}
		bauble := components.Bauble{
			FloatAmplitude: float32(cfg.FloatAmplitude) * (0.6 + 0.8*rng.Float32()),
		}
		mapper.NewEntity(&anchor, &decor, &spin, &bauble)
	}

	for b := range o.buckets {
		o.buckets[b] = make([]rl.Matrix, counts[b])
	}

	return o
}

// SetTarget retargets the layer's progress damper.
func (o *Ornaments) SetTarget(p float32) {
	o.damper.SetTarget(p)
}

// Advance steps progress and recomputes every bauble transform. The float
// amplitude scales by (1-t) so formed baubles hang still; the spin runs on
// elapsed time regardless of progress.
func (o *Ornaments) Advance(dt, elapsed float32) {
	p := o.damper.Step(dt)
	t := motion.EaseCubicInOut(p)

	query := o.filter.Query()
	for query.Next() {
		anchor, decor, spin, bauble := query.Get()

		pos := lerpVec(anchor.Scattered, anchor.Formed, t)
		bob := float32(math.Sin(float64(elapsed*decor.SpeedFactor + spin.Phase)))
		pos.Y += bob * bauble.FloatAmplitude * (1 - t)

		s := decor.Scale * t
		rot := rl.MatrixRotateXYZ(rl.Vector3{
			X: spin.Base.X,
			Y: spin.Base.Y + elapsed*spin.Speed,
			Z: spin.Base.Z,
		})
		m := rl.MatrixMultiply(
			rl.MatrixMultiply(rl.MatrixScale(s, s, s), rot),
			rl.MatrixTranslate(pos.X, pos.Y, pos.Z),
		)
		o.buckets[decor.Bucket][decor.Slot] = m
	}
}

// Progress returns the current progress scalar in [0,1].
func (o *Ornaments) Progress() float32 {
	return o.damper.Value()
}

// Buckets returns the per-tint transform buffers for instanced drawing.
// Index b pairs with OrnamentTints[b].
func (o *Ornaments) Buckets() [][]rl.Matrix {
	return o.buckets
}

// Count returns the bauble count.
func (o *Ornaments) Count() int {
	return o.count
}
