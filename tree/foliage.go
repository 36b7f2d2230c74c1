package tree

import (
	"math/rand"

	"github.com/mkort/tannen/config"
	"github.com/mkort/tannen/motion"
	"github.com/mkort/tannen/shape"
)

// Foliage palette: needles blend between two greens by seed, and the
// renderer's shader adds a gold rim that intensifies as the tree forms.
var (
	needleDeep  = [3]uint8{18, 84, 38}
	needleLight = [3]uint8{74, 158, 72}
)

// Foliage is the high-count needle cloud. Unlike the decoration layers it
// owns no per-frame CPU transforms: generation fills flat parallel attribute
// buffers that the renderer uploads to the GPU once, and each frame the
// layer only advances its progress scalar. Interpolation, breathing and
// coloring all happen in the vertex shader, which receives exactly two
// animated scalars per frame (time and progress).
type Foliage struct {
	count  int
	damper *motion.Damper

	// Per-particle attribute staging, parallel by index, immutable after
	// generation.
	Scattered []float32 // xyz
	Formed    []float32 // xyz
	SeedSize  []float32 // random seed, sprite size
	Colors    []uint8   // rgba base color

	breatheAmplitude float32
}

// NewFoliage generates the needle cloud from config.
func NewFoliage(rng *rand.Rand, cone shape.Cone) *Foliage {
	cfg := config.Cfg().Foliage
	n := cfg.Count
	if n < 0 {
		n = 0
	}

	f := &Foliage{
		count:            n,
		damper:           motion.NewDamper(float32(cfg.Tau), 0),
		Scattered:        make([]float32, n*3),
		Formed:           make([]float32, n*3),
		SeedSize:         make([]float32, n*2),
		Colors:           make([]uint8, n*4),
		breatheAmplitude: float32(cfg.BreatheAmplitude),
	}

	clump := shape.NewClump(rng.Int63(), cfg.ClumpFrequency)
	center := shape.Vec3{Y: cone.Height * 0.5}
	jitter := float32(cfg.Jitter)
	spriteSize := float32(cfg.SpriteSize)

	for i := 0; i < n; i++ {
		formed := shape.Jitter(rng, shape.ConicalSpiral(i, n, cone), jitter)
		if formed.Y < 0 {
			formed.Y = -formed.Y // jitter must not push needles underground
		}
		scattered := center.Add(shape.UniformSphere(rng, float32(cfg.ScatterRadius)))

		seed := rng.Float32()
		cf := clump.Factor(formed)
		size := spriteSize * (0.6 + 0.8*seed) * (0.7 + 0.6*cf)

		f.Formed[i*3] = formed.X
		f.Formed[i*3+1] = formed.Y
		f.Formed[i*3+2] = formed.Z
		f.Scattered[i*3] = scattered.X
		f.Scattered[i*3+1] = scattered.Y
		f.Scattered[i*3+2] = scattered.Z
		f.SeedSize[i*2] = seed
		f.SeedSize[i*2+1] = size

		mix := 0.55*seed + 0.45*cf
		f.Colors[i*4] = mix8(needleDeep[0], needleLight[0], mix)
		f.Colors[i*4+1] = mix8(needleDeep[1], needleLight[1], mix)
		f.Colors[i*4+2] = mix8(needleDeep[2], needleLight[2], mix)
		f.Colors[i*4+3] = 255
	}

	return f
}

// SetTarget retargets the layer's progress damper.
func (f *Foliage) SetTarget(p float32) {
	f.damper.SetTarget(p)
}

// Advance steps progress by one frame. All per-particle work is on the GPU.
func (f *Foliage) Advance(dt float32) {
	f.damper.Step(dt)
}

// Progress returns the current progress scalar in [0,1].
func (f *Foliage) Progress() float32 {
	return f.damper.Value()
}

// BreatheAmplitude returns the scattered-state oscillation amplitude the
// shader scales down as the tree forms.
func (f *Foliage) BreatheAmplitude() float32 {
	return f.breatheAmplitude
}

// Count returns the particle count. Zero is valid and renders nothing.
func (f *Foliage) Count() int {
	return f.count
}

func mix8(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + (float32(b)-float32(a))*t)
}
