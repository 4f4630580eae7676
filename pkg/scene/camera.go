package scene

import (
	"math"

	"github.com/dfaulx/spiraltrace/pkg/core"
)

// Camera generates primary rays from a position/look-at/field-of-view
// triple. The viewport (aspect ratio fixed at 1.0) is derived once at
// construction.
type Camera struct {
	pos             core.Vec3
	dir             core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera builds a camera at pos with the given vertical field of
// view in degrees. dir is the unit vector from pos toward lookAt; the
// viewport is centered at pos - dir, so primary rays point away from
// lookAt (GetRay(0.5, 0.5) runs along -dir). The viewport's horizontal
// and vertical axes are the world X and Y axes whatever dir is.
func NewCamera(pos, lookAt core.Vec3, fovDegrees float64) *Camera {
	dir := lookAt.Subtract(pos).Normalize()

	theta := fovDegrees * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2)
	viewportWidth := 1.0 * viewportHeight // aspect fixed at 1.0

	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, viewportHeight, 0)
	lowerLeft := pos.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(dir)

	return &Camera{
		pos:             pos,
		dir:             dir,
		lowerLeftCorner: lowerLeft,
		horizontal:      horizontal,
		vertical:        vertical,
	}
}

// Pos returns the camera's world position, the origin of every ray it
// generates.
func (c *Camera) Pos() core.Vec3 {
	return c.pos
}

// GetRay generates a primary ray through normalized screen
// coordinates (u, v), each nominally in [0, 1].
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.pos)

	return core.NewRay(c.pos, direction)
}
