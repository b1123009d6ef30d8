package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewFinalScene creates the showcase scene: a field of boxes, a moving sphere,
// glass, metal, participating media, a textured globe, a marbled sphere and a
// rotated cluster of small spheres. surface wraps the globe.
func NewFinalScene(random *rand.Rand, surface material.ColorSource) (*Scene, error) {
	camera := renderer.CameraConfig{
		Center:        core.NewVec3(478, 278, -600),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   1.0,
		VFov:          40,
		FocusDistance: 10,
	}

	sampling := renderer.DefaultSamplingConfig()
	sampling.SamplesPerPixel = 250
	sampling.MaxDepth = 40

	s := NewScene(camera, sampling, integrator.NewConstantBackground(core.Vec3{}))

	// Ground: a 20x20 field of boxes with random heights
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	var boxes []geometry.Handle
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			const w = 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := 1 + 100*random.Float64()
			boxes = append(boxes, s.World.AddBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	groundBVH, err := s.World.BuildBVH(boxes, random)
	if err != nil {
		return nil, err
	}
	s.AddHandle(groundBVH)

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	s.Add(geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light))

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	s.Add(geometry.NewMovingSphere(center1, center2, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	s.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	s.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	// Blue subsurface sphere: glass shell filled with dense medium
	shell := s.Add(geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5)))
	s.Add(geometry.NewConstantMediumFromColor(shell, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist over everything
	mist := s.World.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5)))
	s.Add(geometry.NewConstantMediumFromColor(mist, 0.0001, core.NewVec3(1, 1, 1)))

	s.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(surface)))
	s.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(material.NewNoiseTexture(0.2, random))))

	// Cluster of small white spheres, turned and moved as one object
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	const clusterSize = 1000
	cluster := make([]geometry.Handle, 0, clusterSize)
	for j := 0; j < clusterSize; j++ {
		center := randomVec3(random, 0, 165)
		cluster = append(cluster, s.World.Add(geometry.NewSphere(center, 10, white)))
	}
	clusterBVH, err := s.World.BuildBVH(cluster, random)
	if err != nil {
		return nil, err
	}
	rotated := s.World.Add(geometry.NewRotateY(clusterBVH, 15))
	s.Add(geometry.NewTranslate(rotated, core.NewVec3(-100, 270, 395)))

	return s, nil
}
