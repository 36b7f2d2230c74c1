package renderer

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/mkort/tannen/tree"
)

// billboard corner order, two CCW triangles per sprite
var spriteCorners = [6][2]float32{
	{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5},
	{-0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5},
}

// Foliage owns the needle cloud's GPU resources. The per-particle endpoint
// and seed attributes upload once at startup; each frame the draw call sends
// only the progress/time uniforms and the billboard basis, and the vertex
// shader does all interpolation with no cross-particle communication.
type Foliage struct {
	mesh     rl.Mesh
	material rl.Material
	shader   rl.Shader

	progressLoc int32
	timeLoc     int32
	breatheLoc  int32
	camRightLoc int32
	camUpLoc    int32

	breathe float32
	count   int

	// Backing buffers must outlive the mesh; raylib keeps pointers into them.
	vertices  []float32
	normals   []float32
	texcoords []float32
	texcoord2 []float32
	colors    []uint8
}

// NewFoliage compiles the morph shader and uploads the needle mesh. A shader
// or mesh failure is a fatal startup error for the caller; there is no
// recovery path.
func NewFoliage(f *tree.Foliage) (*Foliage, error) {
	r := &Foliage{
		count:   f.Count(),
		breathe: f.BreatheAmplitude(),
	}

	r.shader = rl.LoadShaderFromMemory(foliageVS, foliageFS)
	if r.shader.ID == 0 {
		return nil, errors.New("foliage shader failed to compile")
	}
	r.progressLoc = rl.GetShaderLocation(r.shader, "progress")
	r.timeLoc = rl.GetShaderLocation(r.shader, "time")
	r.breatheLoc = rl.GetShaderLocation(r.shader, "breathe")
	r.camRightLoc = rl.GetShaderLocation(r.shader, "camRight")
	r.camUpLoc = rl.GetShaderLocation(r.shader, "camUp")

	if r.count == 0 {
		// Degenerate layer: keep the shader so Unload stays uniform, draw nothing.
		return r, nil
	}

	n := r.count
	r.vertices = make([]float32, n*6*3)
	r.normals = make([]float32, n*6*3)
	r.texcoords = make([]float32, n*6*2)
	r.texcoord2 = make([]float32, n*6*2)
	r.colors = make([]uint8, n*6*4)

	for i := 0; i < n; i++ {
		for c := 0; c < 6; c++ {
			v := i*6 + c

			r.vertices[v*3] = f.Scattered[i*3]
			r.vertices[v*3+1] = f.Scattered[i*3+1]
			r.vertices[v*3+2] = f.Scattered[i*3+2]

			r.normals[v*3] = f.Formed[i*3]
			r.normals[v*3+1] = f.Formed[i*3+1]
			r.normals[v*3+2] = f.Formed[i*3+2]

			r.texcoords[v*2] = spriteCorners[c][0]
			r.texcoords[v*2+1] = spriteCorners[c][1]

			r.texcoord2[v*2] = f.SeedSize[i*2]
			r.texcoord2[v*2+1] = f.SeedSize[i*2+1]

			copy(r.colors[v*4:v*4+4], f.Colors[i*4:i*4+4])
		}
	}

	r.mesh = rl.Mesh{
		VertexCount:   int32(n * 6),
		TriangleCount: int32(n * 2),
	}
	r.mesh.Vertices = &r.vertices[0]
	r.mesh.Normals = &r.normals[0]
	r.mesh.Texcoords = &r.texcoords[0]
	r.mesh.Texcoords2 = &r.texcoord2[0]
	r.mesh.Colors = &r.colors[0]

	rl.UploadMesh(&r.mesh, false)
	if r.mesh.VaoID == 0 {
		return nil, errors.New("foliage mesh upload failed")
	}

	r.material = rl.LoadMaterialDefault()
	r.material.Shader = r.shader

	return r, nil
}

// Draw renders the cloud for the current progress and elapsed time. The
// billboard basis comes from the camera so sprites always face the viewer.
func (r *Foliage) Draw(cam rl.Camera3D, progress, elapsed float32) {
	if r.count == 0 {
		return
	}

	rl.SetShaderValue(r.shader, r.progressLoc, []float32{progress}, rl.ShaderUniformFloat)
	rl.SetShaderValue(r.shader, r.timeLoc, []float32{elapsed}, rl.ShaderUniformFloat)
	rl.SetShaderValue(r.shader, r.breatheLoc, []float32{r.breathe}, rl.ShaderUniformFloat)

	forward := rl.Vector3Normalize(rl.Vector3Subtract(cam.Target, cam.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, cam.Up))
	up := rl.Vector3CrossProduct(right, forward)
	rl.SetShaderValue(r.shader, r.camRightLoc, []float32{right.X, right.Y, right.Z}, rl.ShaderUniformVec3)
	rl.SetShaderValue(r.shader, r.camUpLoc, []float32{up.X, up.Y, up.Z}, rl.ShaderUniformVec3)

	// Additive blending: order-independent, and overlapping needles glow.
	rl.BeginBlendMode(rl.BlendAdditive)
	rl.DrawMesh(r.mesh, r.material, rl.MatrixIdentity())
	rl.EndBlendMode()
}

// Unload releases GPU resources.
func (r *Foliage) Unload() {
	if r.count > 0 {
		rl.UnloadMesh(&r.mesh)
	}
	rl.UnloadShader(r.shader)
}
