package geometry

import (
	"math"
	"math/rand"

	"github.com/dfaulx/spiraltrace/pkg/core"
)

// Sphere is the one analytic primitive the renderer supports. Both
// scene objects and point lights are represented as spheres; only the
// enclosing scene.Object's Kind distinguishes their shading role.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a sphere.
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Hit solves the ray/sphere quadratic and returns the nearest forward
// intersection beyond the self-intersection epsilon (t <= 0.001 is
// rejected).
func (s *Sphere) Hit(ray core.Ray) (Collision, bool) {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Collision{}, false
	}

	t := (-b - math.Sqrt(discriminant)) / (2 * a)
	if t <= 0.001 {
		return Collision{}, false
	}

	point := ray.At(t)
	normal := point.Subtract(s.Center).Divide(s.Radius)

	face := Front
	if normal.Dot(ray.Direction) > 0 {
		normal = normal.Negate()
		face = Back
	}

	return Collision{Point: point, Normal: normal, Face: face}, true
}

// Pos returns the sphere's center.
func (s *Sphere) Pos() core.Vec3 {
	return s.Center
}

// RandomSurfacePoint returns a point within the sphere's volume,
// used to jitter shadow rays aimed at a finite-size light: center
// plus a random unit-ball point scaled by radius.
func (s *Sphere) RandomSurfacePoint(rng *rand.Rand) core.Vec3 {
	return s.Center.Add(core.RandomUnitBallPoint(rng).Multiply(s.Radius))
}
