// Package shape provides the procedural point generators for every particle
// layer. Generators are pure functions of (index, total, parameters, random
// source): they never depend on prior calls except through the injected rng,
// so layers can be rebuilt deterministically from a seed.
package shape

import (
	"math"
	"math/rand"
)

// GoldenAngle is the golden angle in radians (~137.5 degrees). Stepping the
// azimuth by this per index spreads points evenly around the axis with no
// periodic alignment, so no two nearby heights share an azimuth.
const GoldenAngle = 2.39996322972865332

// Vec3 is a plain 3D point. The shape package stays independent of any
// rendering types so the generators can be tested headless.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Cone describes the tree silhouette: a linear taper from BaseRadius at
// height 0 to a point at Height.
type Cone struct {
	Height     float32
	BaseRadius float32
}

// RadiusAt returns the cone radius at the given height, clamped to zero
// above the apex.
func (c Cone) RadiusAt(h float32) float32 {
	if c.Height <= 0 {
		return 0
	}
	r := (1 - h/c.Height) * c.BaseRadius
	if r < 0 {
		return 0
	}
	return r
}

// UniformSphere draws a point uniformly by volume from a sphere of the given
// radius centered at the origin. Inverse-transform sampling: two uniforms map
// to the spherical angles and the radius takes the cube root of a third, which
// counteracts the center bias a naive uniform radius would produce.
func UniformSphere(rng *rand.Rand, radius float32) Vec3 {
	theta := 2 * math.Pi * rng.Float64()
	phi := math.Acos(2*rng.Float64() - 1)
	r := float64(radius) * math.Cbrt(rng.Float64())

	sinPhi := math.Sin(phi)
	return Vec3{
		X: float32(r * sinPhi * math.Cos(theta)),
		Y: float32(r * math.Cos(phi)),
		Z: float32(r * sinPhi * math.Sin(theta)),
	}
}

// ConicalSpiral places point i of n on a golden-angle spiral over the cone
// surface: height climbs linearly with index, radius tapers linearly with
// height, azimuth advances by the golden angle per index.
func ConicalSpiral(i, n int, cone Cone) Vec3 {
	if n <= 0 {
		return Vec3{}
	}
	h := float32(i) / float32(n) * cone.Height
	r := cone.RadiusAt(h)
	a := float64(i) * GoldenAngle
	return Vec3{
		X: r * float32(math.Cos(a)),
		Y: h,
		Z: r * float32(math.Sin(a)),
	}
}

// Jitter offsets each coordinate of p by a bounded uniform amount in
// [-amount, amount]. Used by foliage to break the spiral's regularity into
// an organic silhouette.
func Jitter(rng *rand.Rand, p Vec3, amount float32) Vec3 {
	return Vec3{
		X: p.X + (rng.Float32()*2-1)*amount,
		Y: p.Y + (rng.Float32()*2-1)*amount,
		Z: p.Z + (rng.Float32()*2-1)*amount,
	}
}

// BiasedRadial places sparse accent i of n around the trunk, biased toward
// the ground: height uses a squared uniform so accents cluster near the
// ground plane, and azimuth uses the golden-angle multiple of the index for
// anti-clustering.
func BiasedRadial(i, n int, rng *rand.Rand, spread, maxHeight float32) Vec3 {
	u := rng.Float32()
	h := maxHeight * u * u
	r := spread * (0.35 + 0.65*rng.Float32())
	a := float64(i) * GoldenAngle
	return Vec3{
		X: r * float32(math.Cos(a)),
		Y: h,
		Z: r * float32(math.Sin(a)),
	}
}

// RandomRotation draws a uniform Euler rotation triple in [0, 2pi) per axis.
func RandomRotation(rng *rand.Rand) Vec3 {
	return Vec3{
		X: rng.Float32() * 2 * math.Pi,
		Y: rng.Float32() * 2 * math.Pi,
		Z: rng.Float32() * 2 * math.Pi,
	}
}
