package shape

import opensimplex "github.com/ojrac/opensimplex-go"

// Clump samples low-frequency simplex noise over formed positions so that
// nearby needles share a brightness/size factor, giving the foliage visible
// density variation instead of a uniform fuzz.
type Clump struct {
	noise     opensimplex.Noise
	frequency float64
}

// NewClump creates a clump field with the given seed and spatial frequency.
func NewClump(seed int64, frequency float64) *Clump {
	if frequency <= 0 {
		frequency = 1
	}
	return &Clump{
		noise:     opensimplex.NewNormalized(seed),
		frequency: frequency,
	}
}

// Factor returns the clump factor in [0,1] at p.
func (c *Clump) Factor(p Vec3) float32 {
	v := c.noise.Eval3(
		float64(p.X)*c.frequency,
		float64(p.Y)*c.frequency,
		float64(p.Z)*c.frequency,
	)
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return float32(v)
}
