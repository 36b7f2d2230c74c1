// Package motion provides the easing and damped-smoothing primitives that
// drive every animated layer in the scene.
package motion

// EaseCubicInOut maps t in [0,1] through a cubic ease-in-out curve.
// All layers share this one curve so they accelerate and settle in unison
// even when their progress scalars differ.
func EaseCubicInOut(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Lerp linearly interpolates between a and b at parameter t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
