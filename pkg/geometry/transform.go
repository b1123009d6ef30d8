package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate displaces a surface by a fixed offset
type Translate struct {
	Object Handle
	Offset core.Vec3
}

// NewTranslate creates a translated instance of object
func NewTranslate(object Handle, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

func (*Translate) isSurface() {}

func (t *Translate) hit(w *World, ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	// Move the ray into object space instead of moving the object
	local := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, ok := w.Hit(t.Object, local, rayT, sampler)
	if !ok {
		return material.HitRecord{}, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// RotateY rotates a surface about the Y axis
type RotateY struct {
	Object   Handle
	SinTheta float64
	CosTheta float64
}

// NewRotateY creates an instance of object rotated by angle degrees about the Y axis
func NewRotateY(object Handle, angle float64) *RotateY {
	radians := core.DegreesToRadians(angle)
	return &RotateY{
		Object:   object,
		SinTheta: math.Sin(radians),
		CosTheta: math.Cos(radians),
	}
}

func (*RotateY) isSurface() {}

// toLocal rotates a world-space vector into object space (by -theta)
func (r *RotateY) toLocal(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.CosTheta*v.X-r.SinTheta*v.Z,
		v.Y,
		r.SinTheta*v.X+r.CosTheta*v.Z,
	)
}

// toWorld rotates an object-space vector into world space (by +theta)
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.CosTheta*v.X+r.SinTheta*v.Z,
		v.Y,
		-r.SinTheta*v.X+r.CosTheta*v.Z,
	)
}

func (r *RotateY) hit(w *World, ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	local := core.NewRayAtTime(r.toLocal(ray.Origin), r.toLocal(ray.Direction), ray.Time)

	hit, ok := w.Hit(r.Object, local, rayT, sampler)
	if !ok {
		return material.HitRecord{}, false
	}

	// Rotation preserves dot products, so FrontFace is still valid
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// boundingBox rotates the 8 corners of the child box and bounds the result
func (r *RotateY) boundingBox(w *World) core.AABB {
	box := w.BoundingBox(r.Object)

	minP := core.Splat(math.Inf(1))
	maxP := core.Splat(math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*box.X.Max + float64(1-i)*box.X.Min
				y := float64(j)*box.Y.Max + float64(1-j)*box.Y.Min
				z := float64(k)*box.Z.Max + float64(1-k)*box.Z.Min

				rotated := r.toWorld(core.NewVec3(x, y, z))

				minP = core.NewVec3(math.Min(minP.X, rotated.X), math.Min(minP.Y, rotated.Y), math.Min(minP.Z, rotated.Z))
				maxP = core.NewVec3(math.Max(maxP.X, rotated.X), math.Max(maxP.Y, rotated.Y), math.Max(maxP.Z, rotated.Z))
			}
		}
	}

	return core.NewAABBFromPoints(minP, maxP)
}
