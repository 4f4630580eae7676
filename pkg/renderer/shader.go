package renderer

import (
	"math/rand"

	"github.com/dfaulx/spiraltrace/pkg/core"
	"github.com/dfaulx/spiraltrace/pkg/geometry"
	"github.com/dfaulx/spiraltrace/pkg/material"
	"github.com/dfaulx/spiraltrace/pkg/scene"
)

var background = core.NewVec3(0, 0, 0)
var white = core.NewVec3(1, 1, 1)

const grazingGuard = -0.60

// collide scans both the scene's objects and its lights for the
// closest forward hit, tie-broken by strictly smaller distance from
// the ray's origin (first-wins on ties).
func collide(ray core.Ray, sc *scene.Scene) (geometry.Collision, scene.Object, bool) {
	var (
		found      bool
		bestObj    scene.Object
		bestHit    geometry.Collision
		bestDistSq = -1.0
	)

	consider := func(obj scene.Object) {
		hit, ok := obj.Geometry.Hit(ray)
		if !ok {
			return
		}
		distSq := ray.Origin.Subtract(hit.Point).LengthSquared()
		if !found || distSq < bestDistSq {
			found = true
			bestObj = obj
			bestHit = hit
			bestDistSq = distSq
		}
	}

	for _, obj := range sc.Objects {
		consider(obj)
	}
	for _, light := range sc.Lights {
		consider(light)
	}

	return bestHit, bestObj, found
}

// RayColor recursively shades a ray against the scene: closest-hit
// selection, shadow-sampled light visibility, and material-dependent
// scattering. depthRemaining bounds recursion through Metal
// reflection; it returns black immediately once exhausted.
func RayColor(ray core.Ray, sc *scene.Scene, depthRemaining int, shadowSamples int, rng *rand.Rand) (core.Color, error) {
	if depthRemaining <= 0 {
		return background, nil
	}

	hit, obj, ok := collide(ray, sc)
	if !ok {
		return background, nil
	}

	if obj.Kind == scene.KindLight {
		return white, nil
	}

	mat := obj.Material
	lightIntensity := lightIntensity(hit, sc, shadowSamples, rng)

	switch mat.Kind {
	case material.Lambertian:
		return mat.Color.Multiply(lightIntensity * mat.Albedo), nil

	case material.Metal:
		norm := hit.Normal.Normalize()
		reflDir := core.Reflect(ray.Direction, norm).Normalize().
			Add(core.RandomUnitBallPoint(rng).Multiply(mat.Fuzz))

		if norm.Dot(ray.Direction) > grazingGuard {
			return mat.Color.Multiply(lightIntensity), nil
		}

		reflected := core.NewRay(hit.Point, reflDir)
		rcol, err := RayColor(reflected, sc, depthRemaining-1, shadowSamples, rng)
		if err != nil {
			return core.Vec3{}, err
		}
		return mat.Color.Multiply(lightIntensity * mat.Albedo).Add(rcol.Multiply(mat.Albedo)), nil

	case material.Dielectric:
		return core.Vec3{}, ErrUnimplementedMaterial

	default:
		return background, nil
	}
}

// lightIntensity averages, over every light in the scene, the
// product of a shadow-visibility fraction and an n_dot_l term. Note
// that n_dot_l is computed against the light's absolute world
// position rather than the direction actually sampled toward it; this
// is intentional, not an oversight.
func lightIntensity(hit geometry.Collision, sc *scene.Scene, shadowSamples int, rng *rand.Rand) float64 {
	if len(sc.Lights) == 0 {
		return 0
	}

	normal := hit.Normal.Normalize()

	total := 0.0
	for _, light := range sc.Lights {
		visible := 0
		for i := 0; i < shadowSamples; i++ {
			target := light.Geometry.RandomSurfacePoint(rng)
			shadowRay := core.NewRay(hit.Point, target.Subtract(hit.Point))

			_, shadowObj, ok := collide(shadowRay, sc)
			if ok && shadowObj.Kind == scene.KindLight {
				visible++
			}
		}
		visibility := float64(visible) / float64(shadowSamples)

		nDotL := normal.Dot(light.Geometry.Pos())
		if nDotL < 0 {
			nDotL = 0
		} else if nDotL > 1 {
			nDotL = 1
		}

		total += nDotL * visibility
	}

	return total / float64(len(sc.Lights))
}
