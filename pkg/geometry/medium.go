package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ConstantMedium is a volume of uniform density bounded by a closed convex surface
type ConstantMedium struct {
	Boundary      Handle
	NegInvDensity float64
	PhaseFunction material.Material
}

// NewConstantMedium creates a medium of the given density inside boundary, scattering with albedo
func NewConstantMedium(boundary Handle, density float64, albedo material.ColorSource) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1 / density,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
	}
}

// NewConstantMediumFromColor creates a medium with a uniform albedo
func NewConstantMediumFromColor(boundary Handle, density float64, albedo core.Vec3) *ConstantMedium {
	return NewConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

func (*ConstantMedium) isSurface() {}

func (m *ConstantMedium) hit(w *World, ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	entry, ok := w.Hit(m.Boundary, ray, core.UniverseInterval, sampler)
	if !ok {
		return material.HitRecord{}, false
	}

	exit, ok := w.Hit(m.Boundary, ray, core.NewInterval(entry.T+0.0001, math.Inf(1)), sampler)
	if !ok {
		return material.HitRecord{}, false
	}

	t1 := math.Max(entry.T, rayT.Min)
	t2 := math.Min(exit.T, rayT.Max)
	if t1 >= t2 {
		return material.HitRecord{}, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.NegInvDensity * math.Log(sampler.Get1D())

	if hitDistance > distanceInsideBoundary {
		return material.HitRecord{}, false
	}

	t := t1 + hitDistance/rayLength
	return material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // also arbitrary
		Material:  m.PhaseFunction,
	}, true
}
