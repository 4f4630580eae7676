package material

import "github.com/dfaulx/spiraltrace/pkg/core"

// NewDielectric creates a reserved, not-yet-shadable material. Scenes
// may load one without error; the shader fatals with
// renderer.ErrUnimplementedMaterial the moment a Dielectric object
// becomes the closest hit.
func NewDielectric(color core.Color, refraction float64) Material {
	return Material{Kind: Dielectric, Color: color, Refraction: refraction}
}
