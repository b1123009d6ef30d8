package renderer

import (
	"image"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene      Scene
	camera     *Camera
	integrator integrator.Integrator
	width      int
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(scene Scene, integratorInst integrator.Integrator) *TileRenderer {
	config := scene.GetCameraConfig()
	return &TileRenderer{
		scene:      scene,
		camera:     NewCamera(config),
		integrator: integratorInst,
		width:      config.Width,
	}
}

// RenderTileBounds takes samples new samples for every pixel in bounds and
// folds their average into pixels, writing each pixel exactly once
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixels []PixelStats, sampler core.Sampler, samples int) RenderStats {
	stats := RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		MaxSamples:  samples,
		MinSamples:  samples,
	}

	world := tr.scene.GetWorld()
	root := tr.scene.GetRoot()
	background := tr.scene.GetBackground()

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			var sum core.Vec3
			for s := 0; s < samples; s++ {
				ray := tr.camera.GetRay(i, j, sampler)
				sum = sum.Add(tr.integrator.RayColor(ray, world, root, background, sampler))
			}
			pixels[j*tr.width+i].AddSamples(sum, samples)
			stats.TotalSamples += samples
		}
	}

	stats.MaxSamplesUsed = samples
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return stats
}
