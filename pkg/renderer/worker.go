package renderer

import (
	"math/rand"

	"github.com/dfaulx/spiraltrace/pkg/core"
	"github.com/dfaulx/spiraltrace/pkg/scene"
)

// maxShadeDepth bounds RayColor's Metal-reflection recursion.
const maxShadeDepth = 100

// RenderTile runs the per-pixel sampling loop over one tile's pixels
// and returns the averaged, clamped color for each. Loop order is
// outer row (j) then inner column (i), so a single tile's pixels are
// always produced in that order regardless of which worker renders
// it.
func RenderTile(tile BBox, sc *scene.Scene, cam *scene.Camera, settings Settings, rng *rand.Rand) ([]Pixel, error) {
	pixels := make([]Pixel, 0, tile.W*tile.H)

	width, height := sc.Width, sc.Height

	for j := tile.Y; j < tile.Y+tile.H; j++ {
		for i := tile.X; i < tile.X+tile.W; i++ {
			finalColor := core.Vec3{}

			for s := 0; s < settings.Samples; s++ {
				xoff := core.RandomOffset(rng)
				yoff := core.RandomOffset(rng)

				u := (float64(i) + xoff) / float64(width-1)
				v := (float64(j) + yoff) / float64(height-1)

				ray := cam.GetRay(u, v)

				color, err := RayColor(ray, sc, maxShadeDepth, settings.ShadowSamples, rng)
				if err != nil {
					return nil, err
				}
				finalColor = finalColor.Add(color)
			}

			finalColor = finalColor.Divide(float64(settings.Samples)).Clamp(0, 1)
			pixels = append(pixels, Pixel{X: i, Y: j, Color: finalColor})
		}
	}

	return pixels, nil
}
