package renderer

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/dfaulx/spiraltrace/pkg/core"
)

// Framebuffer accumulates pixels written by a single consumer
// goroutine and encodes them to 8-bit sRGB-ish PNG on Save.
// Internally it's a plain *image.RGBA, whose row-major Pix slice
// already has the exact 4-byte-per-pixel layout callers expect.
type Framebuffer struct {
	img *image.RGBA
}

// NewFramebuffer creates a zeroed width x height framebuffer (alpha
// is filled in as pixels are written; unwritten pixels stay fully
// transparent black until PutPixel touches them).
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// PutPixel writes one pixel, applying sqrt gamma encoding to each
// clamped-to-[0,1] channel before quantizing to a byte, and forcing
// full opacity.
func (fb *Framebuffer) PutPixel(x, y int, col core.Color) {
	clamped := col.Clamp(0, 1)
	encode := func(channel float64) uint8 {
		return uint8(math.Round(math.Sqrt(channel) * 255))
	}
	fb.img.SetRGBA(x, y, color.RGBA{R: encode(clamped.X), G: encode(clamped.Y), B: encode(clamped.Z), A: 255})
}

// Bytes returns the underlying RGBA byte slice, exposed for tests
// that check the exact byte-layout.
func (fb *Framebuffer) Bytes() []byte {
	return fb.img.Pix
}

// Width and Height report the framebuffer's pixel dimensions.
func (fb *Framebuffer) Width() int  { return fb.img.Rect.Dx() }
func (fb *Framebuffer) Height() int { return fb.img.Rect.Dy() }

// Save encodes the framebuffer as an 8-bit RGBA PNG at path.
func (fb *Framebuffer) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return &IOError{Path: path, Cause: err}
	}
	defer file.Close()

	if err := png.Encode(file, fb.img); err != nil {
		return &IOError{Path: path, Cause: err}
	}
	return nil
}
