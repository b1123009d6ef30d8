package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// List is an unaccelerated collection of surfaces
type List struct {
	Objects []Handle
}

// NewList creates a list of the given surfaces
func NewList(objects ...Handle) *List {
	return &List{Objects: objects}
}

func (*List) isSurface() {}

func (l *List) hit(w *World, ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	var closest material.HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if hit, ok := w.Hit(object, ray, core.NewInterval(rayT.Min, closestSoFar), sampler); ok {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}

func (l *List) boundingBox(w *World) core.AABB {
	box := core.EmptyAABB
	for _, object := range l.Objects {
		box = box.Union(w.BoundingBox(object))
	}
	return box
}
