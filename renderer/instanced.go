package renderer

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/mkort/tannen/tree"
)

// Decor draws the low-count decoration layers with one instanced call per
// tint bucket. The instancing shader reads each transform from the
// instanceTransform vertex attribute, so a batch of baubles costs a single
// draw regardless of count.
type Decor struct {
	shader   rl.Shader
	material rl.Material

	sphere rl.Mesh
	cube   rl.Mesh

	emissiveLoc int32
}

// NewDecor compiles the instancing shader and generates the shared unit
// meshes. Instance transforms carry all scale and placement, so a single
// sphere serves both bulbs and baubles.
func NewDecor() (*Decor, error) {
	d := &Decor{}

	d.shader = rl.LoadShaderFromMemory(instancedVS, instancedFS)
	if d.shader.ID == 0 {
		return nil, errors.New("instancing shader failed to compile")
	}
	d.shader.UpdateLocation(rl.ShaderLocMatrixMvp, rl.GetShaderLocation(d.shader, "mvp"))
	d.shader.UpdateLocation(rl.ShaderLocMatrixModel, rl.GetShaderLocationAttrib(d.shader, "instanceTransform"))
	d.emissiveLoc = rl.GetShaderLocation(d.shader, "emissive")

	d.sphere = rl.GenMeshSphere(1, 12, 16)
	d.cube = rl.GenMeshCube(1, 1, 1)

	d.material = rl.LoadMaterialDefault()
	d.material.Shader = d.shader

	return d, nil
}

func (d *Decor) drawBuckets(mesh rl.Mesh, tints []rl.Color, buckets [][]rl.Matrix) {
	for b, transforms := range buckets {
		if len(transforms) == 0 {
			continue
		}
		d.material.Maps.Color = tints[b]
		rl.DrawMeshInstanced(mesh, d.material, transforms, len(transforms))
	}
}

func (d *Decor) setEmissive(v float32) {
	rl.SetShaderValue(d.shader, d.emissiveLoc, []float32{v}, rl.ShaderUniformFloat)
}

// DrawLights renders the fairy light string. Bulbs are unshaded and
// additively blended so crossing strands brighten instead of occluding.
func (d *Decor) DrawLights(l *tree.Lights) {
	d.setEmissive(1)
	rl.BeginBlendMode(rl.BlendAdditive)
	d.drawBuckets(d.sphere, tree.LightTints, l.Buckets())
	rl.EndBlendMode()
}

// DrawOrnaments renders the bauble batches with key-light shading.
func (d *Decor) DrawOrnaments(o *tree.Ornaments) {
	d.setEmissive(0)
	d.drawBuckets(d.sphere, tree.OrnamentTints, o.Buckets())
}

// DrawGifts renders the gift boxes under the tree.
func (d *Decor) DrawGifts(g *tree.Gifts) {
	d.setEmissive(0)
	d.drawBuckets(d.cube, tree.GiftTints, g.Buckets())
}

// Unload releases GPU resources.
func (d *Decor) Unload() {
	rl.UnloadMesh(&d.sphere)
	rl.UnloadMesh(&d.cube)
	rl.UnloadShader(d.shader)
}
