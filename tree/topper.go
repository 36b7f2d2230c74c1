package tree

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/mkort/tannen/config"
	"github.com/mkort/tannen/motion"
	"github.com/mkort/tannen/shape"
)

// TopperTint is the star color.
var TopperTint = rl.Color{R: 255, G: 222, B: 110, A: 255}

// Topper is the single star above the apex. It is the degenerate one-particle
// case: position blends like any other layer, while visibility is a second
// damper driving scale toward 0 or 1, and the star spins on elapsed time.
type Topper struct {
	progress   *motion.Damper
	visibility *motion.Damper

	formed    shape.Vec3
	scattered shape.Vec3
	scale     float32
	spinSpeed float32

	transform rl.Matrix
}

// NewTopper places the star above the cone apex with a random scattered
// endpoint.
func NewTopper(rng *rand.Rand, cone shape.Cone) *Topper {
	cfg := config.Cfg().Topper
	center := shape.Vec3{Y: cone.Height * 0.5}

	t := &Topper{
		progress:   motion.NewDamper(float32(cfg.Tau), 0),
		visibility: motion.NewDamper(float32(cfg.Tau), 0),
		formed:     shape.Vec3{Y: cone.Height + float32(cfg.HeightOffset)},
		scattered:  center.Add(shape.UniformSphere(rng, float32(cfg.ScatterRadius))),
		scale:      float32(cfg.Scale),
		spinSpeed:  float32(cfg.SpinSpeed),
	}
	t.transform = rl.MatrixScale(0, 0, 0)
	return t
}

// SetTarget retargets both the position progress and the visibility scale.
func (t *Topper) SetTarget(p float32) {
	t.progress.SetTarget(p)
	t.visibility.SetTarget(p)
}

// Advance steps both dampers and rebuilds the star transform.
func (t *Topper) Advance(dt, elapsed float32) {
	p := t.progress.Step(dt)
	e := motion.EaseCubicInOut(p)
	vis := t.visibility.Step(dt)

	pos := lerpVec(t.scattered, t.formed, e)
	s := t.scale * vis
	t.transform = rl.MatrixMultiply(
		rl.MatrixMultiply(rl.MatrixScale(s, s, s), rl.MatrixRotateY(elapsed*t.spinSpeed)),
		rl.MatrixTranslate(pos.X, pos.Y, pos.Z),
	)
}

// Progress returns the current position progress in [0,1].
func (t *Topper) Progress() float32 {
	return t.progress.Value()
}

// Visible reports whether the star is worth drawing at all.
func (t *Topper) Visible() bool {
	return t.visibility.Value() > 0.01
}

// Transform returns the star's current transform matrix.
func (t *Topper) Transform() rl.Matrix {
	return t.transform
}
