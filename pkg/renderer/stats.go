package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	PassNumber     int           // Pass that produced these stats (1 for batch renders)
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	MaxSamples     int           // Target samples per pixel
	MinSamples     int           // Minimum samples taken by any pixel
	MaxSamplesUsed int           // Maximum samples actually taken by any pixel
	Duration       time.Duration // Wall time spent rendering
}

// PixelStats tracks the running estimate of a single pixel
type PixelStats struct {
	Mean        core.Vec3 // Average of every sample so far
	SampleCount int       // Number of samples taken
}

// AddSample folds one new sample into the running average
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.SampleCount++
	ps.Mean = ps.Mean.Add(color.Subtract(ps.Mean).Divide(float64(ps.SampleCount)))
}

// AddSamples folds count samples, given as their sum, into the running average
func (ps *PixelStats) AddSamples(sum core.Vec3, count int) {
	if count == 1 {
		ps.AddSample(sum)
		return
	}
	if count <= 0 {
		return
	}
	ps.SampleCount += count
	ps.Mean = ps.Mean.Add(sum.Subtract(ps.Mean.Multiply(float64(count))).Divide(float64(ps.SampleCount)))
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	return ps.Mean
}

// collectStats builds render statistics and a framebuffer snapshot from pixel state
func collectStats(pixels []PixelStats, width, height, targetSamples int) (*Framebuffer, RenderStats) {
	fb := NewFramebuffer(width, height)
	stats := RenderStats{
		TotalPixels: len(pixels),
		MaxSamples:  targetSamples,
		MinSamples:  targetSamples,
	}

	for i := range pixels {
		fb.Pixels[i] = pixels[i].GetColor()
		stats.TotalSamples += pixels[i].SampleCount
		stats.MinSamples = min(stats.MinSamples, pixels[i].SampleCount)
		stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, pixels[i].SampleCount)
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return fb, stats
}
