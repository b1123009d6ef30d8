package renderer

import (
	"context"
	"image"
	"sync"
	"time"

	"github.com/df07/go-pathtracer/pkg/log"
)

// PassResult contains the result of a single pass
type PassResult struct {
	PassNumber  int
	Framebuffer *Framebuffer // Snapshot owned by the receiver
	Image       *image.RGBA
	Stats       RenderStats
	IsLast      bool
}

// RenderOptions configures progressive rendering behavior
type RenderOptions struct {
	TileUpdates bool // Whether to generate tile completion events
}

// ProgressiveRaytracer refines an image over repeated passes. Each pass adds
// one sample to every pixel, so after n passes each pixel is the mean of n samples.
type ProgressiveRaytracer struct {
	scene       Scene
	width       int
	height      int
	config      ProgressiveConfig
	totalPasses int
	currentPass int
	scheduler   *tileScheduler
	logger      log.Logger

	mu     sync.Mutex
	closed bool
}

// NewProgressiveRaytracer creates a new progressive raytracer. The number of
// passes equals the scene's samples per pixel.
func NewProgressiveRaytracer(scene Scene, config ProgressiveConfig) (*ProgressiveRaytracer, error) {
	totalPasses := scene.GetSamplingConfig().SamplesPerPixel

	scheduler, err := newTileScheduler(scene, config, totalPasses)
	if err != nil {
		return nil, err
	}

	camera := scene.GetCameraConfig()
	return &ProgressiveRaytracer{
		scene:       scene,
		width:       camera.Width,
		height:      camera.Height(),
		config:      config,
		totalPasses: totalPasses,
		scheduler:   scheduler,
		logger:      log.New("renderer"),
	}, nil
}

// TotalPasses returns the number of passes a full render takes
func (pr *ProgressiveRaytracer) TotalPasses() int {
	return pr.totalPasses
}

// RenderPass renders the next progressive pass using parallel processing and
// returns a snapshot of the refined image
func (pr *ProgressiveRaytracer) RenderPass(tileCallback func(TileCompletionResult)) (PassResult, error) {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	if pr.closed {
		return PassResult{}, ErrWorkerPoolClosed
	}

	pr.currentPass++
	passNumber := pr.currentPass

	pr.logger.Infof("pass %d/%d: rendering %d tiles (using %d workers)",
		passNumber, pr.totalPasses, len(pr.scheduler.tiles), pr.scheduler.pool.GetNumWorkers())

	start := time.Now()
	if err := pr.scheduler.runPass(passNumber, 1, tileCallback); err != nil {
		return PassResult{}, err
	}

	fb, stats := collectStats(pr.scheduler.pixels, pr.width, pr.height, passNumber)
	stats.PassNumber = passNumber
	stats.Duration = time.Since(start)

	pr.logger.Infof("pass %d completed in %v", passNumber, stats.Duration)

	return PassResult{
		PassNumber:  passNumber,
		Framebuffer: fb,
		Image:       fb.Image(),
		Stats:       stats,
		IsLast:      passNumber >= pr.totalPasses,
	}, nil
}

// Close stops the worker pool. Further passes fail with ErrWorkerPoolClosed.
func (pr *ProgressiveRaytracer) Close() {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	pr.closed = true
	pr.scheduler.pool.Stop()
}

// RenderProgressive renders every pass in the background, streaming a result
// after each. Cancelling ctx stops further passes; the pass in flight finishes
// first. The worker pool is closed when the returned channels close.
func (pr *ProgressiveRaytracer) RenderProgressive(ctx context.Context, options RenderOptions) (<-chan PassResult, <-chan TileCompletionResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	tileChan := make(chan TileCompletionResult, 100) // Buffer for tiles
	errChan := make(chan error, 1)

	// If tile updates are disabled, close the channel immediately
	if !options.TileUpdates {
		close(tileChan)
	}

	go func() {
		defer close(passChan)
		if options.TileUpdates {
			defer close(tileChan)
		}
		defer close(errChan)
		defer pr.Close()

		pr.logger.Infof("starting progressive rendering with %d passes", pr.totalPasses)

		var tileCallback func(TileCompletionResult)
		if options.TileUpdates {
			tileCallback = func(result TileCompletionResult) {
				select {
				case tileChan <- result:
				case <-ctx.Done():
				default:
					// Slow consumers miss tile events, never passes
				}
			}
		}

		for pass := pr.currentPass + 1; pass <= pr.totalPasses; pass++ {
			select {
			case <-ctx.Done():
				pr.logger.Noticef("rendering cancelled before pass %d", pass)
				errChan <- ctx.Err()
				return
			default:
			}

			result, err := pr.RenderPass(tileCallback)
			if err != nil {
				errChan <- err
				return
			}

			select {
			case passChan <- result:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}
		}
	}()

	return passChan, tileChan, errChan
}
