package tree

import (
	"math"
	"testing"

	"github.com/mkort/tannen/config"
)

const frameDT = float32(1.0 / 60.0)

// testConfig loads embedded defaults shrunk to test-friendly counts.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	if err := config.Init(""); err != nil {
		t.Fatalf("config init: %v", err)
	}
	cfg := config.Cfg()
	cfg.Foliage.Count = 500
	cfg.Lights.Count = 40
	cfg.Ornaments.Count = 24
	cfg.Gifts.Count = 5
	return cfg
}

func stepFor(tr *Tree, seconds float32) {
	frames := int(seconds / frameDT)
	elapsed := float32(0)
	for i := 0; i < frames; i++ {
		elapsed += frameDT
		tr.Advance(frameDT, elapsed)
	}
}

func TestSetTargetBroadcast(t *testing.T) {
	testConfig(t)
	tr := New(1)

	tr.SetTarget(Formed)
	stepFor(tr, 12) // many time constants

	for name, p := range tr.LayerProgress() {
		if p < 0.99 {
			t.Errorf("layer %s progress = %v, want near 1 after long settle", name, p)
		}
	}
}

func TestLayersDesynchronize(t *testing.T) {
	cfg := testConfig(t)
	if cfg.Lights.Tau <= cfg.Foliage.Tau {
		t.Fatalf("defaults changed: lights tau %v should exceed foliage tau %v",
			cfg.Lights.Tau, cfg.Foliage.Tau)
	}
	tr := New(1)

	tr.SetTarget(Formed)
	stepFor(tr, 1.0) // mid-transition

	p := tr.LayerProgress()
	if p["lights"] >= p["foliage"] {
		t.Errorf("lights (tau %v) should lag foliage (tau %v): %v vs %v",
			cfg.Lights.Tau, cfg.Foliage.Tau, p["lights"], p["foliage"])
	}
}

func TestToggleRoundTrip(t *testing.T) {
	testConfig(t)
	tr := New(2)

	tr.SetTarget(Formed)
	stepFor(tr, 12)
	tr.SetTarget(Scattered)
	stepFor(tr, 12)

	for name, p := range tr.LayerProgress() {
		if p > 0.01 {
			t.Errorf("layer %s did not reconverge to scattered: %v", name, p)
		}
	}
}

func TestDoubleToggleIsNetTarget(t *testing.T) {
	testConfig(t)
	tr := New(3)

	// Two flips within one frame interval: the net target wins and the
	// system stays well-defined.
	tr.Toggle()
	tr.Toggle()
	if tr.Target() != Scattered {
		t.Fatalf("net target = %v, want scattered", tr.Target())
	}
	tr.Advance(frameDT, frameDT)
	for name, p := range tr.LayerProgress() {
		if p != 0 {
			t.Errorf("layer %s moved to %v despite net target scattered", name, p)
		}
	}
}

func TestZeroCountLayersAreNoOps(t *testing.T) {
	cfg := testConfig(t)
	cfg.Foliage.Count = 0
	cfg.Lights.Count = 0
	cfg.Ornaments.Count = 0
	cfg.Gifts.Count = 0

	tr := New(4)
	tr.SetTarget(Formed)
	stepFor(tr, 1) // must not panic

	if tr.Foliage.Count() != 0 || len(tr.Foliage.Formed) != 0 {
		t.Errorf("zero-count foliage still has data")
	}
	for _, bucket := range tr.Ornaments.Buckets() {
		if len(bucket) != 0 {
			t.Errorf("zero-count ornaments still has transforms")
		}
	}
	for _, bucket := range tr.Lights.Buckets() {
		if len(bucket) != 0 {
			t.Errorf("zero-count lights still has transforms")
		}
	}
}

func TestBucketSlotInvariants(t *testing.T) {
	testConfig(t)
	tr := New(5)

	total := 0
	for _, bucket := range tr.Lights.Buckets() {
		total += len(bucket)
	}
	if total != tr.Lights.Count() {
		t.Errorf("light bucket slots = %d, want %d", total, tr.Lights.Count())
	}

	total = 0
	for _, bucket := range tr.Ornaments.Buckets() {
		total += len(bucket)
	}
	if total != tr.Ornaments.Count() {
		t.Errorf("ornament bucket slots = %d, want %d", total, tr.Ornaments.Count())
	}
}

func TestFoliageBuffersParallel(t *testing.T) {
	testConfig(t)
	tr := New(6)

	n := tr.Foliage.Count()
	if len(tr.Foliage.Formed) != n*3 {
		t.Errorf("formed buffer = %d, want %d", len(tr.Foliage.Formed), n*3)
	}
	if len(tr.Foliage.Scattered) != n*3 {
		t.Errorf("scattered buffer = %d, want %d", len(tr.Foliage.Scattered), n*3)
	}
	if len(tr.Foliage.SeedSize) != n*2 {
		t.Errorf("seed/size buffer = %d, want %d", len(tr.Foliage.SeedSize), n*2)
	}
	if len(tr.Foliage.Colors) != n*4 {
		t.Errorf("color buffer = %d, want %d", len(tr.Foliage.Colors), n*4)
	}

	// Needles never start underground.
	for i := 0; i < n; i++ {
		if y := tr.Foliage.Formed[i*3+1]; y < 0 {
			t.Fatalf("needle %d formed below ground: y=%v", i, y)
		}
	}
}

func TestSameSeedSameTree(t *testing.T) {
	testConfig(t)
	a := New(42)
	b := New(42)

	for i := range a.Foliage.Formed {
		if a.Foliage.Formed[i] != b.Foliage.Formed[i] {
			t.Fatalf("same seed produced different foliage at %d", i)
		}
	}
}

func TestOrnamentsGrowWithFormation(t *testing.T) {
	testConfig(t)
	tr := New(7)

	// Scattered: baubles collapse to zero scale, so every transform's
	// translation is all that remains and the linear part is ~0.
	tr.Advance(frameDT, frameDT)
	for _, bucket := range tr.Ornaments.Buckets() {
		for _, m := range bucket {
			if math.Abs(float64(m.M0))+math.Abs(float64(m.M5))+math.Abs(float64(m.M10)) > 1e-5 {
				t.Fatalf("scattered bauble has nonzero scale")
			}
		}
	}

	tr.SetTarget(Formed)
	stepFor(tr, 12)
	grown := false
	for _, bucket := range tr.Ornaments.Buckets() {
		for _, m := range bucket {
			if math.Abs(float64(m.M0))+math.Abs(float64(m.M5))+math.Abs(float64(m.M10)) > 0.05 {
				grown = true
			}
		}
	}
	if !grown {
		t.Errorf("formed baubles never grew in")
	}
}

func TestTopperVisibility(t *testing.T) {
	testConfig(t)
	tr := New(8)

	tr.Advance(frameDT, frameDT)
	if tr.Topper.Visible() {
		t.Errorf("topper visible while scattered")
	}

	tr.SetTarget(Formed)
	stepFor(tr, 12)
	if !tr.Topper.Visible() {
		t.Errorf("topper still hidden after forming")
	}
}
