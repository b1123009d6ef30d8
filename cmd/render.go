package cmd

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli"
)

const (
	modeBatch       = "batch"
	modeProgressive = "progressive"
)

// ErrUnknownMode is returned for a render mode other than batch or progressive
var ErrUnknownMode = errors.New("cmd: unknown render mode")

// renderSettings collects the render command options. Zero values keep the
// scene's own recommendation.
type renderSettings struct {
	SceneID     string
	Mode        string
	Output      string
	Texture     string
	Seed        int64
	Width       int
	Samples     int
	MaxDepth    int
	Workers     int
	TileSize    int
	Previews    bool
	PreviewSize uint
	Upload      bool
	Quiet       bool
}

func settingsFromContext(ctx *cli.Context) (renderSettings, error) {
	settings := renderSettings{
		SceneID:     ctx.String("scene"),
		Mode:        ctx.String("mode"),
		Output:      ctx.String("out"),
		Texture:     ctx.String("texture"),
		Seed:        ctx.Int64("seed"),
		Width:       ctx.Int("width"),
		Samples:     ctx.Int("spp"),
		MaxDepth:    ctx.Int("depth"),
		Workers:     ctx.Int("workers"),
		TileSize:    ctx.Int("tile-size"),
		Previews:    ctx.Bool("previews"),
		PreviewSize: ctx.Uint("preview-size"),
		Upload:      ctx.Bool("upload"),
		Quiet:       ctx.Bool("quiet"),
	}

	// A positional argument names the scene too
	if ctx.NArg() > 0 {
		settings.SceneID = ctx.Args().First()
	}

	if settings.Mode != modeBatch && settings.Mode != modeProgressive {
		return settings, fmt.Errorf("%w %q (use %s or %s)", ErrUnknownMode, settings.Mode, modeBatch, modeProgressive)
	}
	if settings.Output == "" {
		settings.Output = defaultOutputPath(settings.SceneID, time.Now())
	}
	return settings, nil
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.png
func defaultOutputPath(sceneID string, now time.Time) string {
	return filepath.Join("output", sceneID, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

// applyOverrides replaces the scene's recommended settings with the ones given on the command line
func applyOverrides(s *scene.Scene, settings renderSettings) {
	if settings.Width > 0 {
		s.CameraConfig.Width = settings.Width
	}
	if settings.Samples > 0 {
		s.SamplingConfig.SamplesPerPixel = settings.Samples
	}
	if settings.MaxDepth > 0 {
		s.SamplingConfig.MaxDepth = settings.MaxDepth
	}
	s.SamplingConfig.Seed = settings.Seed
}

func tileCount(width, height, tileSize int) int {
	if tileSize <= 0 {
		tileSize = renderer.DefaultTileSize
	}
	return ((width + tileSize - 1) / tileSize) * ((height + tileSize - 1) / tileSize)
}

// Render a built-in scene to an image file.
func Render(ctx *cli.Context) error {
	setupLogging(ctx)

	settings, err := settingsFromContext(ctx)
	if err != nil {
		return err
	}

	s, err := scene.Load(settings.SceneID, scene.Options{TexturePath: settings.Texture, Seed: settings.Seed})
	if err != nil {
		return err
	}
	applyOverrides(s, settings)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	config := renderer.ProgressiveConfig{TileSize: settings.TileSize, NumWorkers: settings.Workers}

	logger.Noticef("rendering scene %q (%s mode)", settings.SceneID, settings.Mode)
	start := time.Now()

	var img *image.RGBA
	var stats renderer.RenderStats
	if settings.Mode == modeProgressive {
		img, stats, err = renderProgressive(runCtx, s, config, settings)
	} else {
		img, stats, err = renderBatch(runCtx, s, config, settings)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := output.SaveImage(img, settings.Output); err != nil {
		return err
	}
	logger.Noticef("render statistics\n%s", formatRenderStats(settings.SceneID, s, stats, elapsed))
	logger.Noticef("render saved as %s", settings.Output)

	if settings.Upload {
		return uploadRender(runCtx, img, settings)
	}
	return nil
}

func renderBatch(ctx context.Context, s *scene.Scene, config renderer.ProgressiveConfig, settings renderSettings) (*image.RGBA, renderer.RenderStats, error) {
	rt, err := renderer.NewRaytracer(s, config)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}

	var tileCallback func(renderer.TileCompletionResult)
	if !settings.Quiet {
		camera := s.GetCameraConfig()
		bar := progressbar.NewOptions(tileCount(camera.Width, camera.Height(), config.TileSize),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("rendering tiles"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()

		tileCallback = func(renderer.TileCompletionResult) {
			_ = bar.Add(1)
		}
	}

	fb, stats, err := rt.Render(ctx, tileCallback)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}
	return fb.Image(), stats, nil
}

func renderProgressive(ctx context.Context, s *scene.Scene, config renderer.ProgressiveConfig, settings renderSettings) (*image.RGBA, renderer.RenderStats, error) {
	pr, err := renderer.NewProgressiveRaytracer(s, config)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}

	passChan, _, errChan := pr.RenderProgressive(ctx, renderer.RenderOptions{})

	var last renderer.PassResult
	for result := range passChan {
		last = result
		logger.Infof("pass %d/%d done in %v, mean luminance %.4f",
			result.PassNumber, pr.TotalPasses(), result.Stats.Duration, result.Framebuffer.MeanLuminance())

		if settings.Previews && !result.IsLast {
			preview := output.PassFilename(settings.Output, result.PassNumber)
			if err := output.SavePreview(result.Image, preview, settings.PreviewSize); err != nil {
				logger.Warningf("skipping preview: %v", err)
			}
		}
	}

	if err := <-errChan; err != nil {
		if !errors.Is(err, context.Canceled) || last.Image == nil {
			return nil, renderer.RenderStats{}, err
		}
		logger.Warningf("render interrupted, keeping pass %d of %d", last.PassNumber, pr.TotalPasses())
	}
	if last.Image == nil {
		return nil, renderer.RenderStats{}, errors.New("cmd: render produced no passes")
	}
	return last.Image, last.Stats, nil
}

// uploadRender stores the final image in the bucket configured through S3_* variables
func uploadRender(ctx context.Context, img image.Image, settings renderSettings) error {
	uploader, err := output.NewS3Uploader(output.S3ConfigFromEnv())
	if err != nil {
		return err
	}

	base := filepath.Base(settings.Output)
	name := settings.SceneID + "/" + strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
	key, err := uploader.Upload(ctx, name, img)
	if err != nil {
		return err
	}

	logger.Noticef("render uploaded as %s", key)
	return nil
}
