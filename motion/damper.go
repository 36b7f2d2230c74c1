package motion

import "math"

// Damper advances a scalar toward a target with exponential smoothing.
// Convergence is asymptotic: the value approaches the target but never
// arrives in finite time, so readers must tolerate a near-0/near-1 range
// rather than expect a discrete arrival.
type Damper struct {
	// Tau is the time constant in seconds. After tau seconds of stepping
	// the value has covered about 63% of the remaining distance.
	Tau float32

	value  float32
	target float32
}

// NewDamper creates a damper holding value with the given time constant.
func NewDamper(tau, value float32) *Damper {
	if tau <= 0 {
		tau = 1
	}
	return &Damper{Tau: tau, value: value, target: value}
}

// SetTarget retargets the damper. Retargeting mid-flight is always valid
// and simply redirects subsequent steps; the last write wins.
func (d *Damper) SetTarget(target float32) {
	d.target = target
}

// Target returns the current target.
func (d *Damper) Target() float32 {
	return d.target
}

// Value returns the current smoothed value without advancing it.
func (d *Damper) Value() float32 {
	return d.value
}

// Step advances the value toward the target by dt seconds and returns it.
// At the fixed point (value == target) stepping is a no-op.
func (d *Damper) Step(dt float32) float32 {
	if dt <= 0 {
		return d.value
	}
	k := 1 - float32(math.Exp(float64(-dt/d.Tau)))
	d.value += (d.target - d.value) * k
	return d.value
}

// Snap jumps the value straight to v without smoothing.
func (d *Damper) Snap(v float32) {
	d.value = v
	d.target = v
}
