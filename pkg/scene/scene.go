package scene

import (
	"errors"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ErrNoObjects is returned when preprocessing a scene without any objects
var ErrNoObjects = errors.New("scene: no objects to render")

var logger = log.New("scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	World          *geometry.World
	Objects        []geometry.Handle // Top-level objects the BVH is built over
	Root           geometry.Handle   // BVH over Objects, valid after Preprocess
	Background     integrator.Background
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
	BVHStats       geometry.BVHStats

	preprocessed bool
}

var _ renderer.Scene = (*Scene)(nil)

// NewScene creates an empty scene with the given camera and sampling settings
func NewScene(camera renderer.CameraConfig, sampling renderer.SamplingConfig, background integrator.Background) *Scene {
	return &Scene{
		World:          geometry.NewWorld(),
		Background:     background,
		CameraConfig:   camera,
		SamplingConfig: sampling,
	}
}

// Add stores a surface in the world and makes it a top-level object
func (s *Scene) Add(surface geometry.Surface) geometry.Handle {
	h := s.World.Add(surface)
	s.Objects = append(s.Objects, h)
	return h
}

// AddHandle makes a surface already stored in the world a top-level object
func (s *Scene) AddHandle(h geometry.Handle) {
	s.Objects = append(s.Objects, h)
}

// NewGroundQuad creates a large horizontal quad centered at the given point with normal pointing up
func NewGroundQuad(center core.Vec3, size float64, mat material.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// (0,0,size) x (size,0,0) points up
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, mat)
}

// Preprocess builds the BVH over the top-level objects. The split axes are
// drawn from a generator seeded with the scene's sampling seed. Later calls
// keep the existing root.
func (s *Scene) Preprocess() error {
	if s.preprocessed {
		return nil
	}
	if len(s.Objects) == 0 {
		return ErrNoObjects
	}

	bvh, err := geometry.NewBVH(s.World, s.Objects, rand.New(rand.NewSource(s.SamplingConfig.Seed)))
	if err != nil {
		return err
	}

	s.Root = s.World.Add(bvh)
	s.BVHStats = bvh.Stats()
	s.preprocessed = true

	logger.Debugf("built BVH over %d objects: %d nodes, %d leaves, depth %d",
		len(s.Objects), s.BVHStats.TotalNodes, s.BVHStats.LeafNodes, s.BVHStats.MaxDepth)
	return nil
}

// Preprocessed reports whether Preprocess has built the root BVH
func (s *Scene) Preprocessed() bool {
	return s.preprocessed
}

// GetWorld returns the surface arena
func (s *Scene) GetWorld() *geometry.World { return s.World }

// GetRoot returns the handle rays are traced against
func (s *Scene) GetRoot() geometry.Handle { return s.Root }

// GetBackground returns the color of rays that leave the scene
func (s *Scene) GetBackground() integrator.Background { return s.Background }

// GetCameraConfig returns the camera configuration
func (s *Scene) GetCameraConfig() renderer.CameraConfig { return s.CameraConfig }

// GetSamplingConfig returns the sampling configuration
func (s *Scene) GetSamplingConfig() renderer.SamplingConfig { return s.SamplingConfig }
