package renderer

import (
	"math/rand"
	"sync"
	"time"

	"github.com/dfaulx/spiraltrace/pkg/scene"
)

// message is the tagged union carried on the pixel channel: either a
// completed tile's pixels, or a progress fraction emitted by the
// aggregator. This implementation uses one channel with a tag rather
// than two merged by a select, since the aggregator and the tile
// workers are the only two producers and the framebuffer consumer is
// the only reader.
type message struct {
	isProgress bool

	pixels []Pixel
	bbox   BBox

	progress float64
}

// tileTask pairs a tile with a worker-local RNG so concurrent workers
// never share a *rand.Rand (which is not safe for concurrent use).
type tileTask struct {
	bbox BBox
	rng  *rand.Rand
}

// Render drives one full render: it builds the reversed tile spiral,
// fans tiles out across a fixed-size worker pool, aggregates
// per-tile-complete signals into a monotonically increasing progress
// fraction, and writes every produced pixel into fb. It blocks until
// the pool drains and the framebuffer consumer exits.
// onProgress, if non-nil, is invoked by the framebuffer consumer for
// every progress fraction it observes; values are non-decreasing and
// reach 1.0 exactly once. It is called from the consumer goroutine
// only, never concurrently.
func Render(fb *Framebuffer, cam *scene.Camera, sc *scene.Scene, settings Settings, onProgress func(float64)) error {
	tiles := Tiles(sc.Width, sc.Height, settings.Bboxes)
	reverseTiles(tiles) // start at the image center, a user-visible progress cue

	pixelChan := make(chan message, len(tiles)+8)
	tileProgress := make(chan struct{}, len(tiles))

	var firstErr error
	var errOnce sync.Once
	recordErr := func(err error) {
		errOnce.Do(func() { firstErr = err })
	}

	// Progress aggregator: one tick per completed tile, emitted as a
	// cumulative fraction on the pixel channel.
	var aggWG sync.WaitGroup
	aggWG.Add(1)
	go func() {
		defer aggWG.Done()
		completed := 0
		for range tileProgress {
			completed++
			cumulative := float64(completed) / float64(len(tiles))
			pixelChan <- message{isProgress: true, progress: cumulative}
			if cumulative >= 1.0 {
				return
			}
		}
	}()

	// Worker pool: a fixed number of goroutines pulling tiles off a
	// shared task channel.
	taskChan := make(chan tileTask, len(tiles))
	for i, tile := range tiles {
		seed := time.Now().UnixNano() ^ int64(i*2654435761)
		taskChan <- tileTask{bbox: tile, rng: rand.New(rand.NewSource(seed))}
	}
	close(taskChan)

	var poolWG sync.WaitGroup
	for w := 0; w < settings.Threads; w++ {
		poolWG.Add(1)
		go func() {
			defer poolWG.Done()
			for task := range taskChan {
				pixels, err := RenderTile(task.bbox, sc, cam, settings, task.rng)
				if err != nil {
					recordErr(err)
					tileProgress <- struct{}{}
					continue
				}
				pixelChan <- message{pixels: pixels, bbox: task.bbox}
				tileProgress <- struct{}{}
			}
		}()
	}

	// Framebuffer consumer: the sole writer into fb.
	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		for msg := range pixelChan {
			if msg.isProgress {
				if onProgress != nil {
					onProgress(msg.progress)
				}
				if msg.progress >= 1.0 {
					return
				}
				continue
			}
			for _, p := range msg.pixels {
				fb.PutPixel(p.X, p.Y, p.Color)
			}
		}
	}()

	poolWG.Wait()
	close(tileProgress)
	aggWG.Wait()
	close(pixelChan)
	<-consumerDone

	return firstErr
}

// reverseTiles reverses a tile list in place.
func reverseTiles(tiles []BBox) {
	for i, j := 0, len(tiles)-1; i < j; i, j = i+1, j-1 {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
}
