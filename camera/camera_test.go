package camera

import (
	"math"
	"testing"

	"github.com/mkort/tannen/shape"
)

func dist(a, b shape.Vec3) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	dz := float64(a.Z - b.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func TestPositionKeepsDistance(t *testing.T) {
	target := shape.Vec3{X: 1, Y: 4, Z: -2}
	o := New(target, 15, 6, 30, 0.2, 0)

	for i := 0; i < 50; i++ {
		o.Rotate(0.37, 0.05)
		if d := dist(o.Position(), target); math.Abs(d-15) > 0.001 {
			t.Fatalf("distance drifted to %v after rotate", d)
		}
	}
}

func TestPitchClamped(t *testing.T) {
	o := New(shape.Vec3{}, 15, 6, 30, 0, 0)

	o.Rotate(0, 10)
	if o.Pitch > 1.45 {
		t.Errorf("pitch exceeded limit: %v", o.Pitch)
	}
	o.Rotate(0, -20)
	if o.Pitch < -1.45 {
		t.Errorf("pitch exceeded lower limit: %v", o.Pitch)
	}
}

func TestDollyClamped(t *testing.T) {
	o := New(shape.Vec3{}, 15, 6, 30, 0, 0)

	o.Dolly(-100)
	if o.Distance != 6 {
		t.Errorf("dolly below min: %v", o.Distance)
	}
	o.Dolly(1000)
	if o.Distance != 30 {
		t.Errorf("dolly above max: %v", o.Distance)
	}
}

func TestAutoOrbitAdvance(t *testing.T) {
	o := New(shape.Vec3{}, 15, 6, 30, 0, 0.5)

	start := o.Yaw
	o.Advance(2)
	if math.Abs(float64(o.Yaw-start)-1.0) > 1e-6 {
		t.Errorf("auto orbit advanced %v rad, want 1.0", o.Yaw-start)
	}

	// Disabled auto-orbit holds still.
	o.AutoSpeed = 0
	yaw := o.Yaw
	o.Advance(5)
	if o.Yaw != yaw {
		t.Errorf("yaw moved with auto orbit disabled")
	}
}

func TestYawStaysBounded(t *testing.T) {
	o := New(shape.Vec3{}, 15, 6, 30, 0, 1)
	for i := 0; i < 1000; i++ {
		o.Advance(0.1)
	}
	if o.Yaw > 2*math.Pi+0.2 || o.Yaw < -2*math.Pi-0.2 {
		t.Errorf("yaw unbounded after long run: %v", o.Yaw)
	}
}
