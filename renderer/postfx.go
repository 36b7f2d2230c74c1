package renderer

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/mkort/tannen/config"
)

// Bloom is the full-screen glow pass. The 3D scene renders into an offscreen
// target, then Present blits it through the bloom shader. When disabled in
// config the pass degrades to a plain blit so the frame flow stays the same.
type Bloom struct {
	target  rl.RenderTexture2D
	shader  rl.Shader
	enabled bool
	width   int32
	height  int32
}

// NewBloom allocates the offscreen target and compiles the blur shader.
func NewBloom(width, height int32) (*Bloom, error) {
	cfg := config.Cfg().PostFX

	b := &Bloom{
		enabled: cfg.Bloom,
		width:   width,
		height:  height,
	}

	b.target = rl.LoadRenderTexture(width, height)
	if b.target.ID == 0 {
		return nil, fmt.Errorf("render target %dx%d allocation failed", width, height)
	}

	b.shader = rl.LoadShaderFromMemory(baseVS, bloomFS)
	if b.shader.ID == 0 {
		return nil, errors.New("bloom shader failed to compile")
	}
	sizeLoc := rl.GetShaderLocation(b.shader, "size")
	rl.SetShaderValue(b.shader, sizeLoc, []float32{float32(width), float32(height)}, rl.ShaderUniformVec2)
	samplesLoc := rl.GetShaderLocation(b.shader, "samples")
	rl.SetShaderValue(b.shader, samplesLoc, []float32{float32(cfg.BloomSamples)}, rl.ShaderUniformFloat)
	qualityLoc := rl.GetShaderLocation(b.shader, "quality")
	rl.SetShaderValue(b.shader, qualityLoc, []float32{float32(cfg.BloomQuality)}, rl.ShaderUniformFloat)

	return b, nil
}

// Begin redirects subsequent drawing into the offscreen target.
func (b *Bloom) Begin() {
	rl.BeginTextureMode(b.target)
}

// End stops offscreen rendering.
func (b *Bloom) End() {
	rl.EndTextureMode()
}

// Present blits the captured frame to the screen, through the bloom shader
// when enabled. The source rect flips vertically because render textures are
// stored bottom-up.
func (b *Bloom) Present() {
	src := rl.NewRectangle(0, 0, float32(b.width), -float32(b.height))
	if b.enabled {
		rl.BeginShaderMode(b.shader)
	}
	rl.DrawTextureRec(b.target.Texture, src, rl.NewVector2(0, 0), rl.White)
	if b.enabled {
		rl.EndShaderMode()
	}
}

// SetEnabled toggles the glow pass at runtime.
func (b *Bloom) SetEnabled(on bool) {
	b.enabled = on
}

// Enabled reports whether the glow pass is active.
func (b *Bloom) Enabled() bool {
	return b.enabled
}

// Unload releases GPU resources.
func (b *Bloom) Unload() {
	rl.UnloadRenderTexture(b.target)
	rl.UnloadShader(b.shader)
}
