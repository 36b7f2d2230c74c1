// Package components defines ECS components for the CPU-animated decoration
// layers. All components are generation-time attributes: they are written
// once when a layer is built and never mutated afterwards. Per-frame results
// go into separate transform buffers owned by the layers, never back into
// the components.
package components

import "github.com/mkort/tannen/shape"

// Anchor holds the two endpoint positions a particle blends between.
type Anchor struct {
	Formed    shape.Vec3
	Scattered shape.Vec3
}

// Decor holds the static draw attributes of a decoration particle.
type Decor struct {
	// Slot indexes the particle's entry in its bucket's transform buffer.
	// Slots are dense per bucket and assigned at generation.
	Slot int

	// Bucket selects the tint batch the particle is drawn with.
	Bucket uint8

	// Scale is the particle's full-size scale once formed.
	Scale float32

	// SpeedFactor individualizes secondary motion frequency.
	SpeedFactor float32
}

// Spin holds a particle's rotational state: a base orientation assigned at
// generation plus a continuous time-driven rotation around the Y axis.
type Spin struct {
	Base  shape.Vec3
	Speed float32 // radians per second, 0 for static decorations
	Phase float32 // per-particle phase offset for secondary motion
}

// Lamp marks a fairy-light bulb. Bulbs interpolate position only; they have
// no secondary motion.
type Lamp struct{}

// Bauble marks a hanging ornament and carries its vertical float amplitude,
// which fades out as the tree forms.
type Bauble struct {
	FloatAmplitude float32
}

// GiftBox marks a ground accent box.
type GiftBox struct{}
