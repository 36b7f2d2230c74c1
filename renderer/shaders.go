// Package renderer draws the tree: the GPU-resident foliage morph, the
// instanced decoration batches, the topper star and the bloom post-pass.
// Everything window- or device-dependent lives here; the tree package stays
// headless.
package renderer

import _ "embed"

// Shader sources are embedded so the binary has no asset path to break.
var (
	//go:embed shaders/foliage.vs
	foliageVS string
	//go:embed shaders/foliage.fs
	foliageFS string
	//go:embed shaders/instanced.vs
	instancedVS string
	//go:embed shaders/instanced.fs
	instancedFS string
	//go:embed shaders/base.vs
	baseVS string
	//go:embed shaders/bloom.fs
	bloomFS string
)
