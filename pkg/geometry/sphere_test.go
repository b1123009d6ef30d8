package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

var hitRange = core.NewInterval(0.001, math.Inf(1))

func vec3Near(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestSphere_Hit_FromOutside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NewLambertian(core.Splat(0.5)))

	hit, ok := sphere.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), hitRange)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}
	if !hit.FrontFace {
		t.Error("Expected front face hit")
	}
	if !vec3Near(hit.Normal, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}
	if hit.Material != sphere.Material {
		t.Error("Expected hit to carry the sphere material")
	}

	if _, ok := sphere.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1)), hitRange); ok {
		t.Error("Expected ray aimed away from the sphere to miss")
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 3, 0),
			rayDirection:   core.NewVec3(0, -2, 0),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := sphere.Hit(core.NewRay(tt.rayOrigin, tt.rayDirection), hitRange)
			if !ok {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !vec3Near(hit.Normal, tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	if hit, ok := sphere.Hit(ray, core.NewInterval(0.001, 0.5)); ok {
		t.Errorf("Expected miss due to max bound, but got hit at t=%f", hit.T)
	}
	if hit, ok := sphere.Hit(ray, core.NewInterval(3.5, 1000)); ok {
		t.Errorf("Expected miss due to min bound, but got hit at t=%f", hit.T)
	}

	// Bounds are exclusive
	if _, ok := sphere.Hit(ray, core.NewInterval(1, 3)); ok {
		t.Error("Expected roots on the interval ends to be rejected")
	}

	// Near root excluded, far root accepted
	hit, ok := sphere.Hit(ray, core.NewInterval(1.5, 1000))
	if !ok || math.Abs(hit.T-3) > 1e-9 {
		t.Errorf("Expected far intersection at t=3, got ok=%v t=%f", ok, hit.T)
	}
}

func TestMovingSphere(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 1.0, nil)

	early := core.NewRayAtTime(core.NewVec3(0, 2, 5), core.NewVec3(0, 0, -1), 0)
	if _, ok := sphere.Hit(early, hitRange); ok {
		t.Error("Expected miss at time 0")
	}

	late := core.NewRayAtTime(core.NewVec3(0, 2, 5), core.NewVec3(0, 0, -1), 1)
	hit, ok := sphere.Hit(late, hitRange)
	if !ok || math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected hit at t=4 at time 1, got ok=%v t=%f", ok, hit.T)
	}

	box := sphere.BoundingBox()
	if box.Y.Min != -1 || box.Y.Max != 3 {
		t.Errorf("Expected box to span both ends in Y, got %v", box.Y)
	}
}

func TestSphereUV(t *testing.T) {
	tests := []struct {
		name  string
		point core.Vec3
		want  core.Vec2
	}{
		{"+x", core.NewVec3(1, 0, 0), core.NewVec2(0.5, 0.5)},
		{"+z", core.NewVec3(0, 0, 1), core.NewVec2(0.25, 0.5)},
		{"-z", core.NewVec3(0, 0, -1), core.NewVec2(0.75, 0.5)},
		{"+y", core.NewVec3(0, 1, 0), core.NewVec2(0.5, 1)},
		{"-y", core.NewVec3(0, -1, 0), core.NewVec2(0.5, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sphereUV(tt.point)
			if math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("v = %f, want %f", got.Y, tt.want.Y)
			}
			// u is undefined at the poles
			if tt.point.Y == 0 && math.Abs(got.X-tt.want.X) > 1e-9 {
				t.Errorf("u = %f, want %f", got.X, tt.want.X)
			}
		})
	}
}

func TestSphere_ZeroRadiusBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 0, nil)
	box := sphere.BoundingBox()
	if box.X.Size() <= 0 || box.Y.Size() <= 0 || box.Z.Size() <= 0 {
		t.Errorf("Expected padded box for zero radius sphere, got %v", box)
	}
}

func TestSphere_ZeroRadiusMisses(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0, material.NewLambertian(core.Splat(0.5)))

	// Straight through the center, where the quadratic has a double root
	if hit, ok := sphere.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), hitRange); ok {
		t.Errorf("Expected zero radius sphere to miss, got hit with normal %v", hit.Normal)
	}
}

func TestSphere_NegativeRadiusFlipsNormal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), -0.5, material.NewLambertian(core.Splat(0.5)))
	if sphere.Radius != -0.5 {
		t.Errorf("Expected radius kept as given, got %f", sphere.Radius)
	}

	hit, ok := sphere.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), hitRange)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("Expected t=0.5, got t=%f", hit.T)
	}
	if !hit.Normal.IsFinite() {
		t.Fatalf("Expected finite normal, got %v", hit.Normal)
	}
	// The outward normal points inward, so the ray arrives on the back face
	if hit.FrontFace {
		t.Error("Expected back face hit for negative radius")
	}
	if !vec3Near(hit.Normal, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}

	box := sphere.BoundingBox()
	if box.X.Min > -0.5 || box.X.Max < 0.5 {
		t.Errorf("Expected box to cover |radius|, got %v", box)
	}
}
