package motion

import (
	"math"
	"testing"
)

func TestEaseEndpoints(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"half", 0.5, 0.5},
		{"below range", -0.3, 0},
		{"above range", 1.7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EaseCubicInOut(tt.in)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("EaseCubicInOut(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEaseMonotonic(t *testing.T) {
	prev := float32(0)
	for i := 0; i <= 1000; i++ {
		v := EaseCubicInOut(float32(i) / 1000)
		if v < prev {
			t.Fatalf("ease not monotonic at t=%v: %v < %v", float32(i)/1000, v, prev)
		}
		prev = v
	}
}

func TestEaseSlowStartFastMiddle(t *testing.T) {
	// Cubic ease-in-out is below the diagonal in the first half
	// and above it in the second.
	if v := EaseCubicInOut(0.25); v >= 0.25 {
		t.Errorf("ease(0.25) = %v, want < 0.25", v)
	}
	if v := EaseCubicInOut(0.75); v <= 0.75 {
		t.Errorf("ease(0.75) = %v, want > 0.75", v)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 10, 0.5); got != 6 {
		t.Errorf("Lerp(2,10,0.5) = %v, want 6", got)
	}
	if got := Lerp(-1, 1, 0); got != -1 {
		t.Errorf("Lerp(-1,1,0) = %v, want -1", got)
	}
	if got := Lerp(-1, 1, 1); got != 1 {
		t.Errorf("Lerp(-1,1,1) = %v, want 1", got)
	}
}
