package core

import "math/rand"

// RandomUnitBallPoint rejection-samples a point uniformly inside the
// unit ball: draw (x,y,z) in [-1,1]^3 until x^2+y^2+z^2 < 1.
func RandomUnitBallPoint(rng *rand.Rand) Vec3 {
	for {
		v := Vec3{
			X: 1 - 2*rng.Float64(),
			Y: 1 - 2*rng.Float64(),
			Z: 1 - 2*rng.Float64(),
		}
		if v.LengthSquared() < 1 {
			return v
		}
	}
}

// RandomOffset draws a single jitter offset in [-1, +1), used for
// anti-aliasing sub-pixel sampling.
func RandomOffset(rng *rand.Rand) float64 {
	return 2*rng.Float64() - 1
}
