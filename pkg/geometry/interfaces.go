// Package geometry implements the hit-testable primitives a scene can
// contain. Currently the only primitive is Sphere; the Hitable
// interface exists so the shader and loader stay agnostic to that,
// should a second primitive show up.
package geometry

import (
	"math/rand"

	"github.com/dfaulx/spiraltrace/pkg/core"
)

// Face records which side of a surface a ray hit.
type Face int

const (
	Front Face = iota
	Back
)

// Collision describes a ray/primitive intersection.
type Collision struct {
	Point  core.Vec3
	Normal core.Vec3 // unit length, outward-facing from the surface
	Face   Face
}

// Hitable is the capability every primitive in a scene must provide:
// intersection testing, its world position (used for the light
// n_dot_l term), and a random point on or inside it that soft-shadow
// rays are aimed at.
type Hitable interface {
	Hit(ray core.Ray) (Collision, bool)
	Pos() core.Vec3
	RandomSurfacePoint(rng *rand.Rand) core.Vec3
}
