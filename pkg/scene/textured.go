package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// textureCamera is a narrow, in-focus view of the origin
func textureCamera(center core.Vec3) renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:        center,
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20,
		FocusDistance: 10,
	}
}

// NewCheckeredSpheresScene creates two large touching spheres with a 3D checker texture
func NewCheckeredSpheresScene() *Scene {
	s := NewScene(textureCamera(core.NewVec3(13, 2, 3)), renderer.DefaultSamplingConfig(),
		integrator.NewConstantBackground(skyBlue))

	checker := material.NewTexturedLambertian(
		material.NewCheckerTextureFromColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))

	s.Add(geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker))
	s.Add(geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker))
	return s
}

// NewEarthScene creates a single globe wrapped in the given texture
func NewEarthScene(surface material.ColorSource) *Scene {
	s := NewScene(textureCamera(core.NewVec3(0, 0, 12)), renderer.DefaultSamplingConfig(),
		integrator.NewConstantBackground(skyBlue))

	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(surface)))
	return s
}

// NewPerlinSpheresScene creates a marbled sphere on a marbled ground
func NewPerlinSpheresScene(random *rand.Rand) *Scene {
	s := NewScene(textureCamera(core.NewVec3(13, 2, 3)), renderer.DefaultSamplingConfig(),
		integrator.NewConstantBackground(skyBlue))

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, random))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble))
	s.Add(geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble))
	return s
}
