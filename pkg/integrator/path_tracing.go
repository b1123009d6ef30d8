package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// DefaultMaxDepth is the bounce limit used when none is configured
const DefaultMaxDepth = 50

// shadowAcneEpsilon keeps scattered rays from re-hitting their own origin
const shadowAcneEpsilon = 0.001

// PathTracer implements unidirectional path tracing without Russian roulette.
// Every bounce recurses once, so MaxDepth bounds the stack depth.
type PathTracer struct {
	MaxDepth int
}

// NewPathTracer creates a path tracer with the given bounce limit
func NewPathTracer(maxDepth int) *PathTracer {
	return &PathTracer{MaxDepth: maxDepth}
}

// RayColor computes the color for a single ray. The result is unclamped.
func (pt *PathTracer) RayColor(ray core.Ray, world *geometry.World, root geometry.Handle, background Background, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, pt.MaxDepth, world, root, background, sampler)
}

func (pt *PathTracer) rayColor(ray core.Ray, depth int, world *geometry.World, root geometry.Handle, background Background, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(root, ray, core.NewInterval(shadowAcneEpsilon, math.Inf(1)), sampler)
	if !isHit {
		return background.Color(ray)
	}

	colorEmitted := material.Emitted(&hit)

	scatter, didScatter := material.Scatter(ray, &hit, sampler)
	if !didScatter {
		return colorEmitted
	}

	colorScattered := scatter.Attenuation.MultiplyVec(
		pt.rayColor(scatter.Scattered, depth-1, world, root, background, sampler))

	return colorEmitted.Add(colorScattered)
}
