// Package tree implements the morphing particle tree: five independently
// animated layers that blend between a scattered cloud and a formed tree in
// response to a single target toggle. The composer owns the layers and the
// ECS world backing the CPU-animated decorations; it performs no per-particle
// work itself.
package tree

import (
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/mkort/tannen/config"
	"github.com/mkort/tannen/shape"
)

// Shape is the externally-owned morph target.
type Shape int

const (
	// Scattered is the loose particle cloud.
	Scattered Shape = iota
	// Formed is the assembled tree.
	Formed
)

// String implements fmt.Stringer for logging.
func (s Shape) String() string {
	if s == Formed {
		return "formed"
	}
	return "scattered"
}

// progressTarget maps the shape enum onto the damper target scalar.
func (s Shape) progressTarget() float32 {
	if s == Formed {
		return 1
	}
	return 0
}

// Tree composes the five layers into one scene. Changing the target has no
// immediate visual effect; it only retargets each layer's progress damper,
// and the layers desynchronize naturally through their different time
// constants.
type Tree struct {
	Foliage   *Foliage
	Lights    *Lights
	Ornaments *Ornaments
	Topper    *Topper
	Gifts     *Gifts

	world  *ecs.World
	target Shape
}

// New builds all layers from the global config using a single seeded rng, so
// the same seed reproduces the same tree.
func New(seed int64) *Tree {
	cfg := config.Cfg()
	rng := rand.New(rand.NewSource(seed))
	world := ecs.NewWorld()

	cone := shape.Cone{
		Height:     float32(cfg.Foliage.Height),
		BaseRadius: float32(cfg.Foliage.BaseRadius),
	}

	t := &Tree{
		world:     world,
		Foliage:   NewFoliage(rng, cone),
		Lights:    NewLights(world, rng, cone),
		Ornaments: NewOrnaments(world, rng, cone),
		Topper:    NewTopper(rng, cone),
		Gifts:     NewGifts(world, rng),
	}

	slog.Info("tree built",
		"seed", seed,
		"foliage", t.Foliage.Count(),
		"lights", t.Lights.Count(),
		"ornaments", t.Ornaments.Count(),
		"gifts", t.Gifts.Count(),
	)

	return t
}

// SetTarget broadcasts the morph target unchanged to every layer. Calling it
// mid-transition is always valid; progress simply redirects.
func (t *Tree) SetTarget(s Shape) {
	t.target = s
	p := s.progressTarget()
	t.Foliage.SetTarget(p)
	t.Lights.SetTarget(p)
	t.Ornaments.SetTarget(p)
	t.Topper.SetTarget(p)
	t.Gifts.SetTarget(p)
}

// Toggle flips the target shape and returns the new value.
func (t *Tree) Toggle() Shape {
	if t.target == Formed {
		t.SetTarget(Scattered)
	} else {
		t.SetTarget(Formed)
	}
	return t.target
}

// Target returns the current morph target.
func (t *Tree) Target() Shape {
	return t.target
}

// Advance runs one frame of progress integration and CPU transform
// composition for every layer. dt is the frame delta and elapsed the time
// since start, both in seconds, both supplied by the external driver; the
// tree never reads the wall clock itself.
func (t *Tree) Advance(dt, elapsed float32) {
	t.Foliage.Advance(dt)
	t.Lights.Advance(dt)
	t.Ornaments.Advance(dt, elapsed)
	t.Topper.Advance(dt, elapsed)
	t.Gifts.Advance(dt)
}

// LayerProgress reports each layer's current progress scalar, keyed by layer
// name, for the HUD and telemetry.
func (t *Tree) LayerProgress() map[string]float32 {
	return map[string]float32{
		"foliage":   t.Foliage.Progress(),
		"lights":    t.Lights.Progress(),
		"ornaments": t.Ornaments.Progress(),
		"topper":    t.Topper.Progress(),
		"gifts":     t.Gifts.Progress(),
	}
}

// lerpVec blends two points at parameter t.
func lerpVec(a, b shape.Vec3, t float32) shape.Vec3 {
	return shape.Vec3{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}
