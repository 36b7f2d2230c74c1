package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/mkort/tannen/tree"
)

// Star renders the topper: a faceted five-point star drawn unlit and
// additive so it reads as a light source. Spin and scale-in come from the
// topper's transform; the mesh itself is unit sized.
type Star struct {
	mesh     rl.Mesh
	material rl.Material
	uploaded bool

	vertices []float32
}

// NewStar builds and uploads the star mesh. It reuses the default material,
// so a failed upload is the only error path.
func NewStar() (*Star, error) {
	s := &Star{}
	s.buildMesh(5, 1.0, 0.45, 0.28)

	rl.UploadMesh(&s.mesh, false)
	s.uploaded = true

	s.material = rl.LoadMaterialDefault()
	s.material.Maps.Color = tree.TopperTint

	return s, nil
}

// buildMesh fans 2*points triangles from a front apex and another 2*points
// from a back apex over a perimeter that alternates outer and inner radius.
func (s *Star) buildMesh(points int, outer, inner, depth float32) {
	rim := 2 * points
	perimeter := make([][2]float32, rim)
	for i := 0; i < rim; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		// Start at the top and walk clockwise.
		a := math.Pi/2 - 2*math.Pi*float64(i)/float64(rim)
		perimeter[i] = [2]float32{r * float32(math.Cos(a)), r * float32(math.Sin(a))}
	}

	faces := 2 * rim
	s.vertices = make([]float32, 0, faces*3*3)
	push := func(x, y, z float32) {
		s.vertices = append(s.vertices, x, y, z)
	}
	for i := 0; i < rim; i++ {
		a, b := perimeter[i], perimeter[(i+1)%rim]
		// Front fan, CCW toward +Z.
		push(0, 0, depth)
		push(a[0], a[1], 0)
		push(b[0], b[1], 0)
		// Back fan, CCW toward -Z.
		push(0, 0, -depth)
		push(b[0], b[1], 0)
		push(a[0], a[1], 0)
	}

	s.mesh = rl.Mesh{
		VertexCount:   int32(faces * 3),
		TriangleCount: int32(faces),
	}
	s.mesh.Vertices = &s.vertices[0]
}

// Draw renders the star with the topper's current transform. Hidden toppers
// are skipped entirely rather than drawn at zero scale.
func (s *Star) Draw(t *tree.Topper) {
	if !t.Visible() {
		return
	}
	rl.BeginBlendMode(rl.BlendAdditive)
	rl.DrawMesh(s.mesh, s.material, t.Transform())
	rl.EndBlendMode()
}

// Unload releases GPU resources.
func (s *Star) Unload() {
	if s.uploaded {
		rl.UnloadMesh(&s.mesh)
	}
}
