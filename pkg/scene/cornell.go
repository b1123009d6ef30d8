package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:        core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:        core.NewVec3(278, 278, 0),    // Look at the center of the box
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   1.0,
		VFov:          40.0,
		FocusDistance: 10,
	}
}

func cornellSampling() renderer.SamplingConfig {
	sampling := renderer.DefaultSamplingConfig()
	sampling.SamplesPerPixel = 200
	return sampling
}

// addCornellWalls adds the five walls of the open box and returns the shared white material
func addCornellWalls(s *Scene) material.Material {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	// Right wall (green) - YZ plane at x=boxSize
	s.Add(geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green))
	// Left wall (red) - YZ plane at x=0
	s.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red))
	// Floor
	s.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white))
	// Ceiling
	s.Add(geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white))
	// Back wall
	s.Add(geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white))

	return white
}

// addCornellBlock adds an axis-aligned box with one corner at the origin,
// turned around Y by angle degrees and moved by offset. The handle of the
// placed block is returned without making it a top-level object.
func addCornellBlock(s *Scene, size core.Vec3, angle float64, offset core.Vec3, mat material.Material) geometry.Handle {
	block := s.World.AddBox(core.NewVec3(0, 0, 0), size, mat)
	rotated := s.World.Add(geometry.NewRotateY(block, angle))
	return s.World.Add(geometry.NewTranslate(rotated, offset))
}

// NewCornellScene creates the classic Cornell box with two rotated blocks and a ceiling light
func NewCornellScene() *Scene {
	s := NewScene(cornellCamera(), cornellSampling(), integrator.NewConstantBackground(core.Vec3{}))

	white := addCornellWalls(s)

	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	s.Add(geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light))

	s.AddHandle(addCornellBlock(s, core.NewVec3(165, 330, 165), 15, core.NewVec3(265, 0, 295), white))
	s.AddHandle(addCornellBlock(s, core.NewVec3(165, 165, 165), -18, core.NewVec3(130, 0, 65), white))

	return s
}

// NewCornellSmokeScene replaces the Cornell blocks with black and white smoke
// under a larger, dimmer light
func NewCornellSmokeScene() *Scene {
	s := NewScene(cornellCamera(), cornellSampling(), integrator.NewConstantBackground(core.Vec3{}))

	white := addCornellWalls(s)

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	s.Add(geometry.NewQuad(core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305), light))

	tall := addCornellBlock(s, core.NewVec3(165, 330, 165), 15, core.NewVec3(265, 0, 295), white)
	short := addCornellBlock(s, core.NewVec3(165, 165, 165), -18, core.NewVec3(130, 0, 65), white)

	s.Add(geometry.NewConstantMediumFromColor(tall, 0.01, core.NewVec3(0, 0, 0)))
	s.Add(geometry.NewConstantMediumFromColor(short, 0.01, core.NewVec3(1, 1, 1)))

	return s
}
