package scene

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func TestPreprocessEmptyScene(t *testing.T) {
	s := NewScene(renderer.DefaultCameraConfig(), renderer.DefaultSamplingConfig(), integrator.SkyBackground())
	if err := s.Preprocess(); !errors.Is(err, ErrNoObjects) {
		t.Errorf("Expected ErrNoObjects, got %v", err)
	}
	if s.Preprocessed() {
		t.Error("Empty scene reported as preprocessed")
	}
}

func TestPreprocessBuildsRoot(t *testing.T) {
	s := NewTwoSpheresScene()
	if err := s.Preprocess(); err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}

	if _, ok := s.World.Get(s.Root).(*geometry.BVH); !ok {
		t.Fatalf("Root is %T, want *geometry.BVH", s.World.Get(s.Root))
	}
	if s.BVHStats.TotalNodes != 3 || s.BVHStats.LeafNodes != 2 {
		t.Errorf("Unexpected BVH stats %+v", s.BVHStats)
	}

	// Straight ahead hits the front of the small sphere
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := s.World.Hit(s.Root, ray, core.NewInterval(0.001, math.Inf(1)), core.NewSeededSampler(1))
	if !ok {
		t.Fatal("Expected a hit")
	}
	if math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("hit.T = %f, want 0.5", hit.T)
	}
}

func TestPreprocessTwiceKeepsRoot(t *testing.T) {
	s := NewTwoSpheresScene()
	if err := s.Preprocess(); err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	root, surfaces := s.Root, s.World.Len()

	if err := s.Preprocess(); err != nil {
		t.Fatalf("second Preprocess failed: %v", err)
	}
	if s.Root != root {
		t.Errorf("Root changed from %v to %v", root, s.Root)
	}
	if s.World.Len() != surfaces {
		t.Errorf("World grew from %d to %d surfaces", surfaces, s.World.Len())
	}
}

func TestAddHandle(t *testing.T) {
	s := NewScene(renderer.DefaultCameraConfig(), renderer.DefaultSamplingConfig(), integrator.SkyBackground())

	inner := s.World.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))
	if len(s.Objects) != 0 {
		t.Fatal("World.Add must not create a top-level object")
	}

	s.AddHandle(s.World.Add(geometry.NewTranslate(inner, core.NewVec3(5, 0, 0))))
	if err := s.Preprocess(); err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}

	box := s.World.BoundingBox(s.Root)
	if box.X.Min < 3.99 || box.X.Max > 6.01 {
		t.Errorf("root box %v does not follow the translation", box)
	}
}

func TestGroundQuadFacesUp(t *testing.T) {
	quad := NewGroundQuad(core.NewVec3(1, 0, 1), 10, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	if quad.Normal.Subtract(core.NewVec3(0, 1, 0)).Length() > 1e-12 {
		t.Errorf("ground normal = %v, want up", quad.Normal)
	}

	ray := core.NewRay(core.NewVec3(1, 5, 1), core.NewVec3(0, -1, 0))
	hit, ok := quad.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !ok || math.Abs(hit.T-5) > 1e-9 || !hit.FrontFace {
		t.Errorf("Expected a front-face hit at t=5, got ok=%v %+v", ok, hit)
	}
}

func TestRenderBuiltinScene(t *testing.T) {
	for _, id := range []string{"cornell-smoke", "two-spheres"} {
		t.Run(id, func(t *testing.T) {
			s, err := Load(id, Options{Seed: 3})
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			s.CameraConfig.Width = 6
			s.SamplingConfig.SamplesPerPixel = 2
			s.SamplingConfig.MaxDepth = 4

			rt, err := renderer.NewRaytracer(s, renderer.DefaultProgressiveConfig())
			if err != nil {
				t.Fatalf("NewRaytracer failed: %v", err)
			}
			fb, stats, err := rt.Render(context.Background(), nil)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}

			if stats.TotalPixels != fb.Width*fb.Height || stats.TotalSamples != 2*stats.TotalPixels {
				t.Errorf("Unexpected stats %+v", stats)
			}
			for i, c := range fb.Pixels {
				if !c.IsFinite() || c.X < 0 || c.Y < 0 || c.Z < 0 {
					t.Fatalf("pixel %d = %v is not a finite non-negative color", i, c)
				}
			}
		})
	}
}
