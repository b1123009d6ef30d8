package renderer

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// testScene is a minimal Scene for renderer tests
type testScene struct {
	world      *geometry.World
	root       geometry.Handle
	background integrator.Background
	camera     CameraConfig
	sampling   SamplingConfig
}

func (s *testScene) GetWorld() *geometry.World            { return s.world }
func (s *testScene) GetRoot() geometry.Handle             { return s.root }
func (s *testScene) GetBackground() integrator.Background { return s.background }
func (s *testScene) GetCameraConfig() CameraConfig        { return s.camera }
func (s *testScene) GetSamplingConfig() SamplingConfig    { return s.sampling }

// newTwoSphereScene creates a gray sphere resting on a large gray ground sphere
func newTwoSphereScene(camera CameraConfig, sampling SamplingConfig) *testScene {
	world := geometry.NewWorld()
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	objects := []geometry.Handle{
		world.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray)),
		world.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray)),
	}

	root, err := world.BuildBVH(objects, rand.New(rand.NewSource(1)))
	if err != nil {
		panic(err)
	}

	return &testScene{
		world:      world,
		root:       root,
		background: integrator.SkyBackground(),
		camera:     camera,
		sampling:   sampling,
	}
}

// twoPixelCamera is a 1x2 camera whose top pixel looks up and bottom pixel looks down
func twoPixelCamera(center core.Vec3) CameraConfig {
	return CameraConfig{
		Center:        center,
		LookAt:        center.Add(core.NewVec3(0, 0, -2)),
		Up:            core.NewVec3(0, 1, 0),
		Width:         1,
		AspectRatio:   0.5,
		VFov:          90,
		FocusDistance: 10,
	}
}

// constantSampler returns the same value for every dimension
type constantSampler struct {
	value float64
}

func (s constantSampler) Get1D() float64   { return s.value }
func (s constantSampler) Get2D() core.Vec2 { return core.NewVec2(s.value, s.value) }
func (s constantSampler) Get3D() core.Vec3 { return core.Splat(s.value) }

func inUnitCube(c core.Vec3) bool {
	const eps = 1e-12
	return c.X >= 0 && c.Y >= 0 && c.Z >= 0 && c.X <= 1+eps && c.Y <= 1+eps && c.Z <= 1+eps
}
