package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewQuadsScene creates five colored quads facing a wide-angle camera
func NewQuadsScene() *Scene {
	camera := renderer.CameraConfig{
		Center:        core.NewVec3(0, 0, 9),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   1.0,
		VFov:          80,
		FocusDistance: 10,
	}

	s := NewScene(camera, renderer.DefaultSamplingConfig(), integrator.NewConstantBackground(skyBlue))

	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	s.Add(geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed))
	s.Add(geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen))
	s.Add(geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue))
	s.Add(geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange))
	s.Add(geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal))
	return s
}

// NewSimpleLightScene lights the marbled spheres with an emissive quad and
// sphere against a black background
func NewSimpleLightScene(random *rand.Rand) *Scene {
	camera := renderer.CameraConfig{
		Center:        core.NewVec3(26, 3, 6),
		LookAt:        core.NewVec3(0, 2, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20,
		FocusDistance: 10,
	}

	s := NewScene(camera, renderer.DefaultSamplingConfig(), integrator.NewConstantBackground(core.Vec3{}))

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, random))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble))
	s.Add(geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble))

	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	s.Add(geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light))
	s.Add(geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light))
	return s
}
