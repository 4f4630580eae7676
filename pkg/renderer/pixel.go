package renderer

import "github.com/dfaulx/spiraltrace/pkg/core"

// Pixel is one averaged, clamped sample result ready for the
// framebuffer.
type Pixel struct {
	X, Y  int
	Color core.Color
}
