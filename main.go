package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dfaulx/spiraltrace/pkg/loader"
	"github.com/dfaulx/spiraltrace/pkg/renderer"
)

// Config holds all the configuration for the raytracer CLI.
type Config struct {
	Width         int
	Height        int
	Output        string
	Scene         string
	Samples       int
	ShadowSamples int
	Threads       int
	Bboxes        int
	Help          bool
}

func main() {
	config := parseFlags()
	if config.Help {
		showHelp()
		return
	}

	startTime := time.Now()

	sc, cam, err := loader.Load(config.Scene, config.Width, config.Height)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	settings := renderer.Settings{
		Samples:       config.Samples,
		ShadowSamples: config.ShadowSamples,
		Threads:       config.Threads,
		Bboxes:        config.Bboxes,
	}

	logger := renderer.NewDefaultLogger()
	fb, err := renderer.RenderScene(sc, cam, settings, logger)
	if err != nil {
		fmt.Printf("Error rendering scene: %v\n", err)
		os.Exit(1)
	}

	if err := fb.Save(config.Output); err != nil {
		fmt.Printf("Error writing output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render completed in %v, saved to %s\n", time.Since(startTime), config.Output)
}

// parseFlags parses command line flags and returns configuration.
func parseFlags() Config {
	config := Config{}
	flag.IntVar(&config.Width, "w", 400, "image width in pixels")
	flag.IntVar(&config.Width, "width", 400, "image width in pixels")
	flag.IntVar(&config.Height, "h", 300, "image height in pixels")
	flag.IntVar(&config.Height, "height", 300, "image height in pixels")
	flag.StringVar(&config.Output, "o", "render.png", "output PNG path")
	flag.StringVar(&config.Output, "output", "render.png", "output PNG path")
	flag.StringVar(&config.Scene, "s", "", "input scene JSON path")
	flag.StringVar(&config.Scene, "scene", "", "input scene JSON path")
	flag.IntVar(&config.Samples, "per-pixel-samples", 16, "anti-aliasing samples per pixel")
	flag.IntVar(&config.ShadowSamples, "shadow-samples", 4, "soft-shadow rays per light per shading call")
	flag.IntVar(&config.Threads, "threads", 4, "worker pool size")
	flag.IntVar(&config.Bboxes, "tiles", 4, "tile subdivision factor N (image split into NxN tiles)")
	flag.BoolVar(&config.Help, "help", false, "show help information")
	flag.Parse()
	return config
}

// showHelp displays help information.
func showHelp() {
	fmt.Println("spiraltrace")
	fmt.Println("Usage: spiraltrace -scene scene.json -width 400 -height 300 -output render.png")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
}
