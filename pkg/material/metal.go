package material

import "github.com/dfaulx/spiraltrace/pkg/core"

// NewMetal creates a specular material. Fuzz is the radius of the
// random perturbation applied to the mirror-reflected direction; 0
// is a perfect mirror.
func NewMetal(color core.Color, albedo, fuzz float64) Material {
	return Material{Kind: Metal, Color: color, Albedo: albedo, Fuzz: fuzz}
}
