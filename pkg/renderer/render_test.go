package renderer

import (
	"testing"

	"github.com/dfaulx/spiraltrace/pkg/core"
	"github.com/dfaulx/spiraltrace/pkg/geometry"
	"github.com/dfaulx/spiraltrace/pkg/material"
	"github.com/dfaulx/spiraltrace/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 1: an empty scene renders as pure black background.
func TestRenderEmptySceneIsBackground(t *testing.T) {
	sc := scene.NewScene(1, 1)
	cam := scene.NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 90)
	settings := Settings{Samples: 1, ShadowSamples: 1, Threads: 1, Bboxes: 1}

	fb := NewFramebuffer(sc.Width, sc.Height)
	err := Render(fb, cam, sc, settings, nil)
	require.NoError(t, err)

	assert.Equal(t, []byte{0, 0, 0, 255}, fb.Bytes())
}

// Scenario 3: a light filling the frame renders as hard white.
func TestRenderLightFillsFrameWithWhite(t *testing.T) {
	sc := scene.NewScene(1, 1)
	sc.AddLight(geometry.NewSphere(core.NewVec3(0, 0, -1), 50), material.NewLight(core.NewVec3(0, 0, 1)))
	cam := scene.NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 90)
	settings := Settings{Samples: 1, ShadowSamples: 1, Threads: 1, Bboxes: 1}

	fb := NewFramebuffer(sc.Width, sc.Height)
	err := Render(fb, cam, sc, settings, nil)
	require.NoError(t, err)

	assert.Equal(t, []byte{255, 255, 255, 255}, fb.Bytes())
}

func TestRenderProgressIsNonDecreasingAndReachesOne(t *testing.T) {
	sc := scene.NewScene(8, 8)
	sc.AddLight(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.1), material.NewLight(core.NewVec3(1, 1, 1)))
	cam := scene.NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 90)
	settings := Settings{Samples: 1, ShadowSamples: 1, Threads: 2, Bboxes: 4}

	var observed []float64
	onProgress := func(p float64) { observed = append(observed, p) }

	fb := NewFramebuffer(sc.Width, sc.Height)
	err := Render(fb, cam, sc, settings, onProgress)
	require.NoError(t, err)

	require.NotEmpty(t, observed)
	last := 0.0
	reachedOne := 0
	for _, p := range observed {
		assert.GreaterOrEqual(t, p, last)
		last = p
		if p >= 1.0 {
			reachedOne++
		}
	}
	assert.Equal(t, 1, reachedOne)
	assert.Equal(t, 1.0, observed[len(observed)-1])
}

func TestRenderPropagatesDielectricError(t *testing.T) {
	sc := scene.NewScene(1, 1)
	sc.AddObject(geometry.NewSphere(core.NewVec3(0, 0, -2), 1), material.NewDielectric(core.NewVec3(1, 1, 1), 1.5))
	cam := scene.NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 90)
	settings := Settings{Samples: 1, ShadowSamples: 1, Threads: 1, Bboxes: 1}

	fb := NewFramebuffer(sc.Width, sc.Height)
	err := Render(fb, cam, sc, settings, nil)
	assert.ErrorIs(t, err, ErrUnimplementedMaterial)
}
