package renderer

import (
	"math"
	"testing"

	"github.com/dfaulx/spiraltrace/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestPutPixelAppliesSqrtGammaAndAlpha(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.PutPixel(1, 2, core.NewVec3(0.5, 0.25, 1.0))

	offset := 4 * (2*fb.Width() + 1)
	bytes := fb.Bytes()

	assert.Equal(t, byte(math.Round(math.Sqrt(0.5)*255)), bytes[offset])
	assert.Equal(t, byte(math.Round(math.Sqrt(0.25)*255)), bytes[offset+1])
	assert.Equal(t, byte(math.Round(math.Sqrt(1.0)*255)), bytes[offset+2])
	assert.Equal(t, byte(255), bytes[offset+3])
}

func TestPutPixelClampsOutOfRangeChannels(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.PutPixel(0, 0, core.NewVec3(-1, 2, 0))

	bytes := fb.Bytes()
	assert.Equal(t, byte(0), bytes[0])
	assert.Equal(t, byte(255), bytes[1])
	assert.Equal(t, byte(0), bytes[2])
}
