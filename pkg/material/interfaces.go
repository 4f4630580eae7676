// Package material defines the closed set of shading descriptors a
// scene object can carry. Materials are a tagged variant rather than
// an interface hierarchy: the shader makes per-kind decisions
// (Lambertian diffuse, Metal reflection with a grazing guard,
// Dielectric reserved, Light hard-white), so a Kind switch reads
// clearer than virtual dispatch here.
package material

import "github.com/dfaulx/spiraltrace/pkg/core"

// Kind tags which variant a Material is.
type Kind int

const (
	Lambertian Kind = iota
	Metal
	Dielectric
	Light
)

func (k Kind) String() string {
	switch k {
	case Lambertian:
		return "lambertian"
	case Metal:
		return "metal"
	case Dielectric:
		return "dielectric"
	case Light:
		return "light"
	default:
		return "unknown"
	}
}

// Material is the closed shading descriptor. Only the fields that
// apply to Kind are meaningful; each New* constructor below only
// populates the ones its variant uses.
type Material struct {
	Kind Kind

	Color core.Color // base color; ignored by Light at shading time (see pkg/renderer/shader.go)

	Albedo     float64 // Lambertian, Metal
	Fuzz       float64 // Metal
	Refraction float64 // Dielectric (reserved, unimplemented)
}
