package material

import "github.com/dfaulx/spiraltrace/pkg/core"

// NewLight creates an emissive material. Its declared Color is kept
// for completeness, but the shader renders every light hit as hard
// white regardless, a deliberate simplification rather than a bug.
func NewLight(color core.Color) Material {
	return Material{Kind: Light, Color: color}
}
