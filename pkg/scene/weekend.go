package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// skyBlue is the flat background of the textured example scenes
var skyBlue = core.NewVec3(0.70, 0.80, 1.00)

func randomVec3(random *rand.Rand, min, max float64) core.Vec3 {
	return core.NewVec3(
		min+(max-min)*random.Float64(),
		min+(max-min)*random.Float64(),
		min+(max-min)*random.Float64(),
	)
}

// weekendCamera looks at the field of small spheres with a shallow depth of field
func weekendCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20,
		DefocusAngle:  0.6,
		FocusDistance: 10,
	}
}

// addRandomSpheres scatters small spheres over a 22x22 grid around the origin and
// adds the three large feature spheres. bounce gives diffuse spheres a vertical motion.
func addRandomSpheres(s *Scene, random *rand.Rand, bounce bool) {
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			// Leave room around the metal feature sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := randomVec3(random, 0, 1).MultiplyVec(randomVec3(random, 0, 1))
				diffuse := material.NewLambertian(albedo)
				if bounce {
					center2 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
					s.Add(geometry.NewMovingSphere(center, center2, 0.2, diffuse))
				} else {
					s.Add(geometry.NewSphere(center, 0.2, diffuse))
				}
			case chooseMat < 0.95:
				albedo := randomVec3(random, 0.5, 1)
				fuzz := 0.5 * random.Float64()
				s.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				s.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	s.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	s.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	s.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))
}

// NewWeekendScene creates the random sphere field: about 480 small spheres of
// mixed materials on a huge ground sphere around three large spheres
func NewWeekendScene(random *rand.Rand) *Scene {
	sampling := renderer.DefaultSamplingConfig()
	sampling.SamplesPerPixel = 50
	sampling.MaxDepth = 8

	s := NewScene(weekendCamera(), sampling, integrator.SkyBackground())

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	addRandomSpheres(s, random, false)
	return s
}

// NewBouncingSpheresScene is the random sphere field with motion-blurred
// diffuse spheres on a checkered ground
func NewBouncingSpheresScene(random *rand.Rand) *Scene {
	s := NewScene(weekendCamera(), renderer.DefaultSamplingConfig(), integrator.SkyBackground())

	checker := material.NewCheckerTextureFromColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	addRandomSpheres(s, random, true)
	return s
}

// NewTwoSpheresScene creates a gray sphere resting on a large gray ground
// sphere under a sky gradient
func NewTwoSpheresScene() *Scene {
	s := NewScene(renderer.DefaultCameraConfig(), renderer.DefaultSamplingConfig(), integrator.SkyBackground())

	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray))

	return s
}
