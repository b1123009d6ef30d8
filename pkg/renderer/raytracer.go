package renderer

import (
	"context"
	"errors"
	"time"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
)

var (
	// ErrInvalidDimensions is returned when the image would have no pixels
	ErrInvalidDimensions = errors.New("renderer: image width and height must be positive")

	// ErrInvalidSampleCount is returned when a render would take no samples
	ErrInvalidSampleCount = errors.New("renderer: samples per pixel must be positive")

	// ErrWorkerPoolClosed is returned when a render is attempted on a stopped worker pool
	ErrWorkerPoolClosed = errors.New("renderer: worker pool closed")
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed for the per-tile random generators
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        integrator.DefaultMaxDepth,
		Seed:            42,
	}
}

// ProgressiveConfig contains configuration for tiled parallel rendering
type ProgressiveConfig struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		TileSize:   DefaultTileSize,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Scene is the read-only view of a scene the renderer needs
type Scene interface {
	GetWorld() *geometry.World
	GetRoot() geometry.Handle
	GetBackground() integrator.Background
	GetCameraConfig() CameraConfig
	GetSamplingConfig() SamplingConfig
}

// TileCompletionResult contains information about a completed tile for callbacks
type TileCompletionResult struct {
	TileX      int // Tile coordinates (not pixel coordinates)
	TileY      int
	PassNumber int // Which pass this tile was rendered in

	// Progress information
	TileNumber  int // Current tile number in this pass (1-based)
	TotalTiles  int // Total number of tiles in the image
	TotalPasses int // Total number of passes planned
}

// tileScheduler fans the tiles of one pass out to a worker pool and joins them
type tileScheduler struct {
	pool        *WorkerPool
	tiles       []*Tile
	pixels      []PixelStats
	tileSize    int
	totalPasses int
}

func newTileScheduler(scene Scene, config ProgressiveConfig, totalPasses int) (*tileScheduler, error) {
	camera := scene.GetCameraConfig()
	sampling := scene.GetSamplingConfig()
	width, height := camera.Width, camera.Height()

	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if sampling.SamplesPerPixel <= 0 {
		return nil, ErrInvalidSampleCount
	}

	tileSize := config.TileSize
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	tiles := NewTileGrid(width, height, tileSize, sampling.Seed)
	renderer := NewTileRenderer(scene, integrator.NewPathTracer(sampling.MaxDepth))

	return &tileScheduler{
		pool:        NewWorkerPool(renderer, len(tiles), config.NumWorkers),
		tiles:       tiles,
		pixels:      make([]PixelStats, width*height),
		tileSize:    tileSize,
		totalPasses: totalPasses,
	}, nil
}

// runPass renders every tile once with the given number of new samples and
// waits for all of them. Callbacks run on the calling goroutine.
func (ts *tileScheduler) runPass(passNumber, samples int, tileCallback func(TileCompletionResult)) error {
	ts.pool.Start()

	for taskID, tile := range ts.tiles {
		ts.pool.SubmitTask(TileTask{
			Tile:       tile,
			PassNumber: passNumber,
			Samples:    samples,
			TaskID:     taskID,
			Pixels:     ts.pixels,
		})
	}

	for i := 0; i < len(ts.tiles); i++ {
		result, ok := ts.pool.GetResult()
		if !ok {
			return ErrWorkerPoolClosed
		}

		tile := ts.tiles[result.TaskID]
		tile.PassesCompleted++

		if tileCallback != nil {
			tileCallback(TileCompletionResult{
				TileX:       tile.Bounds.Min.X / ts.tileSize,
				TileY:       tile.Bounds.Min.Y / ts.tileSize,
				PassNumber:  result.Stats.PassNumber,
				TileNumber:  i + 1,
				TotalTiles:  len(ts.tiles),
				TotalPasses: ts.totalPasses,
			})
		}
	}

	return nil
}

// Raytracer renders an image in a single pass: every pixel takes all of its
// samples at once and is written exactly once
type Raytracer struct {
	scene     Scene
	width     int
	height    int
	sampling  SamplingConfig
	scheduler *tileScheduler
	logger    log.Logger
	done      bool
}

// NewRaytracer creates a batch raytracer for the scene
func NewRaytracer(scene Scene, config ProgressiveConfig) (*Raytracer, error) {
	scheduler, err := newTileScheduler(scene, config, 1)
	if err != nil {
		return nil, err
	}

	camera := scene.GetCameraConfig()
	return &Raytracer{
		scene:     scene,
		width:     camera.Width,
		height:    camera.Height(),
		sampling:  scene.GetSamplingConfig(),
		scheduler: scheduler,
		logger:    log.New("renderer"),
	}, nil
}

// Render produces the final image. The worker pool is released afterwards, so
// a second call fails with ErrWorkerPoolClosed.
func (rt *Raytracer) Render(ctx context.Context, tileCallback func(TileCompletionResult)) (*Framebuffer, RenderStats, error) {
	if rt.done {
		return nil, RenderStats{}, ErrWorkerPoolClosed
	}
	rt.done = true
	defer rt.scheduler.pool.Stop()

	if err := ctx.Err(); err != nil {
		return nil, RenderStats{}, err
	}

	rt.logger.Infof("rendering %dx%d at %d samples per pixel (using %d workers)",
		rt.width, rt.height, rt.sampling.SamplesPerPixel, rt.scheduler.pool.GetNumWorkers())

	start := time.Now()
	if err := rt.scheduler.runPass(1, rt.sampling.SamplesPerPixel, tileCallback); err != nil {
		return nil, RenderStats{}, err
	}

	fb, stats := collectStats(rt.scheduler.pixels, rt.width, rt.height, rt.sampling.SamplesPerPixel)
	stats.PassNumber = 1
	stats.Duration = time.Since(start)

	rt.logger.Infof("render completed in %v", stats.Duration)
	return fb, stats, nil
}
