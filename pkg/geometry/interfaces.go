package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Handle identifies a surface stored in a World
type Handle int32

// Surface is the closed set of things a World can hold: *Sphere, *Quad, *List,
// *Translate, *RotateY, *ConstantMedium and *BVH. Composite surfaces refer to
// their children by Handle, so children must be added to the World first.
type Surface interface {
	isSurface()
}

// World is an arena owning every surface of a scene. It is immutable once
// rendering starts and safe for concurrent reads.
type World struct {
	surfaces []Surface
	boxes    []core.AABB
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{}
}

// Add stores a surface and returns its handle. The bounding box is computed
// once here from the already-stored children.
func (w *World) Add(surface Surface) Handle {
	box := w.computeBoundingBox(surface)
	w.surfaces = append(w.surfaces, surface)
	w.boxes = append(w.boxes, box)
	return Handle(len(w.surfaces) - 1)
}

// Get returns the surface behind a handle
func (w *World) Get(h Handle) Surface {
	return w.surfaces[h]
}

// Len returns the number of stored surfaces
func (w *World) Len() int {
	return len(w.surfaces)
}

// BoundingBox returns the cached bounding box of a surface
func (w *World) BoundingBox(h Handle) core.AABB {
	return w.boxes[h]
}

// Hit finds the closest intersection of ray with the surface h whose t lies in
// rayT. The sampler is only consumed by participating media.
func (w *World) Hit(h Handle, ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	switch s := w.surfaces[h].(type) {
	case *Sphere:
		return s.Hit(ray, rayT)
	case *Quad:
		return s.Hit(ray, rayT)
	case *List:
		return s.hit(w, ray, rayT, sampler)
	case *Translate:
		return s.hit(w, ray, rayT, sampler)
	case *RotateY:
		return s.hit(w, ray, rayT, sampler)
	case *ConstantMedium:
		return s.hit(w, ray, rayT, sampler)
	case *BVH:
		return s.hit(w, ray, rayT, sampler)
	default:
		return material.HitRecord{}, false
	}
}

func (w *World) computeBoundingBox(surface Surface) core.AABB {
	switch s := surface.(type) {
	case *Sphere:
		return s.BoundingBox()
	case *Quad:
		return s.BoundingBox()
	case *List:
		return s.boundingBox(w)
	case *Translate:
		return w.boxes[s.Object].Add(s.Offset)
	case *RotateY:
		return s.boundingBox(w)
	case *ConstantMedium:
		return w.boxes[s.Boundary]
	case *BVH:
		return s.BoundingBox()
	default:
		return core.EmptyAABB
	}
}
