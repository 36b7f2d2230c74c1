package shape

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestConicalSpiralTaper(t *testing.T) {
	cone := Cone{Height: 9, BaseRadius: 3.6}
	n := 5000

	prevH := float32(-1)
	prevR := float32(math.MaxFloat32)
	for i := 0; i < n; i++ {
		p := ConicalSpiral(i, n, cone)

		if p.Y < prevH {
			t.Fatalf("height decreased at index %d: %v < %v", i, p.Y, prevH)
		}
		r := float32(math.Hypot(float64(p.X), float64(p.Z)))
		if r > prevR+1e-4 {
			t.Fatalf("radius increased at index %d: %v > %v", i, r, prevR)
		}
		prevH = p.Y
		prevR = r
	}

	// Endpoints: base radius at the ground, near-apex at the top.
	first := ConicalSpiral(0, n, cone)
	if r := float32(math.Hypot(float64(first.X), float64(first.Z))); math.Abs(float64(r-cone.BaseRadius)) > 1e-4 {
		t.Errorf("base radius = %v, want %v", r, cone.BaseRadius)
	}
	last := ConicalSpiral(n-1, n, cone)
	if last.Y >= cone.Height {
		t.Errorf("top height = %v, want < %v", last.Y, cone.Height)
	}
}

func TestConicalSpiralAzimuthSpread(t *testing.T) {
	// Consecutive points must never share an azimuth: the golden angle is
	// irrational in turns, so the smallest angular gap between neighbors
	// stays large.
	cone := Cone{Height: 9, BaseRadius: 3.6}
	n := 500
	for i := 1; i < n; i++ {
		a := ConicalSpiral(i-1, n, cone)
		b := ConicalSpiral(i, n, cone)
		da := math.Atan2(float64(a.Z), float64(a.X))
		db := math.Atan2(float64(b.Z), float64(b.X))
		gap := math.Abs(math.Mod(db-da+3*math.Pi, 2*math.Pi) - math.Pi)
		if gap < 0.5 {
			t.Fatalf("azimuth gap %v too small at index %d", gap, i)
		}
	}
}

func TestUniformSphereVolumetric(t *testing.T) {
	// For uniform-by-volume sampling, r^3 is uniform on [0, R^3]. Bin r^3
	// into equal-mass buckets and chi-square against the flat expectation.
	rng := rand.New(rand.NewSource(7))
	const (
		samples = 20000
		radius  = 11.0
		bins    = 10
	)

	obs := make([]float64, bins)
	r3max := math.Pow(radius, 3)
	for i := 0; i < samples; i++ {
		p := UniformSphere(rng, radius)
		r := float64(p.Length())
		if r > radius+1e-3 {
			t.Fatalf("sample outside sphere: r = %v", r)
		}
		b := int(math.Pow(r, 3) / r3max * bins)
		if b >= bins {
			b = bins - 1
		}
		obs[b]++
	}

	exp := make([]float64, bins)
	for i := range exp {
		exp[i] = samples / float64(bins)
	}

	// 9 degrees of freedom; chi2 > 27.9 would reject uniformity at p=0.001.
	chi2 := stat.ChiSquare(obs, exp)
	if chi2 > 27.9 {
		t.Errorf("r^3 distribution not uniform: chi2 = %v, counts = %v", chi2, obs)
	}
}

func TestUniformSphereCentered(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	var sum Vec3
	const samples = 20000
	for i := 0; i < samples; i++ {
		sum = sum.Add(UniformSphere(rng, 5))
	}
	mean := sum.Scale(1.0 / samples)
	if mean.Length() > 0.15 {
		t.Errorf("sample mean %v too far from origin", mean)
	}
}

func TestBiasedRadialGroundBias(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const n = 2000
	spread := float32(2.6)
	maxH := float32(0.5)

	low := 0
	for i := 0; i < n; i++ {
		p := BiasedRadial(i, n, rng, spread, maxH)
		if p.Y < 0 || p.Y > maxH {
			t.Fatalf("accent height out of range: %v", p.Y)
		}
		r := float32(math.Hypot(float64(p.X), float64(p.Z)))
		if r > spread {
			t.Fatalf("accent outside spread: %v > %v", r, spread)
		}
		if p.Y < maxH*0.25 {
			low++
		}
	}

	// Squared-uniform height: P(h < q*maxH) = sqrt(q), so half the accents
	// land in the bottom quarter. Uniform height would put only a quarter
	// there.
	if frac := float64(low) / n; frac < 0.4 {
		t.Errorf("only %.2f of accents in the bottom quarter, want ground bias", frac)
	}
}

func TestGeneratorsDeterministic(t *testing.T) {
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		pa := UniformSphere(a, 10)
		pb := UniformSphere(b, 10)
		if pa != pb {
			t.Fatalf("same seed diverged at sample %d: %v vs %v", i, pa, pb)
		}
	}
}

func TestClumpRange(t *testing.T) {
	c := NewClump(99, 0.8)
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		f := c.Factor(UniformSphere(rng, 9))
		if f < 0 || f > 1 {
			t.Fatalf("clump factor out of range: %v", f)
		}
	}
}

func TestZeroCountSpiral(t *testing.T) {
	// Degenerate layer: zero particles must not panic or divide by zero.
	p := ConicalSpiral(0, 0, Cone{Height: 9, BaseRadius: 3.6})
	if p != (Vec3{}) {
		t.Errorf("zero-count spiral = %v, want origin", p)
	}
}
