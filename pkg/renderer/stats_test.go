package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestPixelStats_RunningAverage(t *testing.T) {
	samples := []core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 2, 0),
		core.NewVec3(0, 0, 3),
		core.NewVec3(0.5, 0.5, 0.5),
	}

	var ps PixelStats
	var sum core.Vec3
	for _, s := range samples {
		ps.AddSample(s)
		sum = sum.Add(s)
	}

	expected := sum.Divide(float64(len(samples)))
	if ps.SampleCount != len(samples) {
		t.Errorf("SampleCount = %d, want %d", ps.SampleCount, len(samples))
	}
	if ps.GetColor().Subtract(expected).Length() > 1e-12 {
		t.Errorf("GetColor() = %v, want %v", ps.GetColor(), expected)
	}
}

func TestPixelStats_AddSamples(t *testing.T) {
	var incremental, merged PixelStats

	a := core.NewVec3(1, 1, 1)
	b := core.NewVec3(0, 0.5, 1)
	c := core.NewVec3(2, 0, 0)

	incremental.AddSample(a)
	incremental.AddSample(b)
	incremental.AddSample(c)

	merged.AddSample(a)
	merged.AddSamples(b.Add(c), 2)
	merged.AddSamples(core.NewVec3(100, 100, 100), 0) // ignored

	if merged.SampleCount != 3 {
		t.Fatalf("SampleCount = %d, want 3", merged.SampleCount)
	}
	if merged.GetColor().Subtract(incremental.GetColor()).Length() > 1e-12 {
		t.Errorf("merged mean %v differs from incremental mean %v", merged.GetColor(), incremental.GetColor())
	}
}

func TestCollectStats(t *testing.T) {
	pixels := make([]PixelStats, 4)
	pixels[0].AddSamples(core.NewVec3(2, 2, 2), 2)
	pixels[1].AddSamples(core.NewVec3(4, 0, 0), 4)
	pixels[2].AddSample(core.NewVec3(0, 1, 0))
	pixels[3].AddSamples(core.NewVec3(0, 0, 3), 3)

	fb, stats := collectStats(pixels, 2, 2, 4)

	if stats.TotalPixels != 4 || stats.TotalSamples != 10 {
		t.Errorf("TotalPixels=%d TotalSamples=%d, want 4 and 10", stats.TotalPixels, stats.TotalSamples)
	}
	if stats.MinSamples != 1 || stats.MaxSamplesUsed != 4 || stats.MaxSamples != 4 {
		t.Errorf("MinSamples=%d MaxSamplesUsed=%d MaxSamples=%d", stats.MinSamples, stats.MaxSamplesUsed, stats.MaxSamples)
	}
	if math.Abs(stats.AverageSamples-2.5) > 1e-12 {
		t.Errorf("AverageSamples = %f, want 2.5", stats.AverageSamples)
	}
	if fb.At(0, 0) != core.NewVec3(1, 1, 1) || fb.At(0, 1) != core.NewVec3(0, 1, 0) {
		t.Errorf("framebuffer = %v", fb.Pixels)
	}
}
