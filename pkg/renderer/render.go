package renderer

import (
	"fmt"

	"github.com/dfaulx/spiraltrace/pkg/core"
	"github.com/dfaulx/spiraltrace/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout, exactly
// the ambient logging shape the render driver and CLI share.
type DefaultLogger struct{}

// NewDefaultLogger creates a stdout logger.
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// RenderScene is the renderer facade: it validates settings, builds a
// framebuffer sized to the scene, drives Render, and hands back the
// finished framebuffer.
func RenderScene(sc *scene.Scene, cam *scene.Camera, settings Settings, logger core.Logger) (*Framebuffer, error) {
	if err := settings.Validate(sc.Width, sc.Height); err != nil {
		return nil, err
	}

	logger.Printf("rendering %dx%d, %d samples, %d shadow samples, %d threads, %dx%d tiles\n",
		sc.Width, sc.Height, settings.Samples, settings.ShadowSamples, settings.Threads, settings.Bboxes, settings.Bboxes)

	fb := NewFramebuffer(sc.Width, sc.Height)
	onProgress := func(p float64) { logger.Printf("progress: %.1f%%\n", p*100) }
	if err := Render(fb, cam, sc, settings, onProgress); err != nil {
		return nil, err
	}

	return fb, nil
}
