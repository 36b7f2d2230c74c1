// Package camera provides an orbit camera for viewing the scene.
package camera

import (
	"math"

	"github.com/mkort/tannen/shape"
)

// Orbit circles a target point at a controlled distance. It supports manual
// drag orbiting, wheel dollying and an idle auto-orbit, and stays pure math
// so it can be tested headless; the shell converts its pose into whatever
// the renderer needs.
type Orbit struct {
	// Target is the point the camera looks at.
	Target shape.Vec3

	// Yaw is the azimuth angle in radians; Pitch the elevation.
	Yaw, Pitch float32

	// Distance from the target, clamped to [MinDistance, MaxDistance].
	Distance                 float32
	MinDistance, MaxDistance float32

	// AutoSpeed is the idle orbit rate in radians per second. Zero disables.
	AutoSpeed float32
}

// Pitch limits keep the camera off the poles where the view basis degenerates.
const (
	minPitch = -1.45
	maxPitch = 1.45
)

// New creates an orbit camera looking at target from the given distance and
// pitch.
func New(target shape.Vec3, distance, minDist, maxDist, pitch, autoSpeed float32) *Orbit {
	o := &Orbit{
		Target:      target,
		Pitch:       pitch,
		Distance:    distance,
		MinDistance: minDist,
		MaxDistance: maxDist,
		AutoSpeed:   autoSpeed,
	}
	o.clamp()
	return o
}

// Rotate applies a manual orbit delta in radians.
func (o *Orbit) Rotate(dyaw, dpitch float32) {
	o.Yaw += dyaw
	o.Pitch += dpitch
	o.clamp()
}

// Dolly moves the camera toward (negative) or away from (positive) the
// target, clamped to the configured range.
func (o *Orbit) Dolly(delta float32) {
	o.Distance += delta
	o.clamp()
}

// Advance runs the idle auto-orbit for dt seconds.
func (o *Orbit) Advance(dt float32) {
	if o.AutoSpeed == 0 {
		return
	}
	o.Yaw += o.AutoSpeed * dt
	// Keep yaw bounded so long sessions don't lose float precision.
	if o.Yaw > 2*math.Pi {
		o.Yaw -= 2 * math.Pi
	} else if o.Yaw < -2*math.Pi {
		o.Yaw += 2 * math.Pi
	}
}

// Position returns the camera's world position for the current pose.
func (o *Orbit) Position() shape.Vec3 {
	cp := float32(math.Cos(float64(o.Pitch)))
	return shape.Vec3{
		X: o.Target.X + o.Distance*cp*float32(math.Cos(float64(o.Yaw))),
		Y: o.Target.Y + o.Distance*float32(math.Sin(float64(o.Pitch))),
		Z: o.Target.Z + o.Distance*cp*float32(math.Sin(float64(o.Yaw))),
	}
}

func (o *Orbit) clamp() {
	if o.Pitch < minPitch {
		o.Pitch = minPitch
	} else if o.Pitch > maxPitch {
		o.Pitch = maxPitch
	}
	if o.MinDistance > 0 && o.Distance < o.MinDistance {
		o.Distance = o.MinDistance
	}
	if o.MaxDistance > 0 && o.Distance > o.MaxDistance {
		o.Distance = o.MaxDistance
	}
}
