package material

import "github.com/dfaulx/spiraltrace/pkg/core"

// NewLambertian creates a perfectly diffuse material. Albedo scales
// how much of the incident light intensity the surface's base color
// reflects back.
func NewLambertian(color core.Color, albedo float64) Material {
	return Material{Kind: Lambertian, Color: color, Albedo: albedo}
}
