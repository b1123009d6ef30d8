package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3 // One corner of the quad
	U        core.Vec3 // First edge vector
	V        core.Vec3 // Second edge vector
	Normal   core.Vec3 // Unit normal (U × V normalized)
	D        float64   // Plane equation constant: normal · p = D
	W        core.Vec3 // n / (n · n) for planar coordinates, n = U × V
	Material material.Material
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		D:        normal.Dot(corner),
		W:        n.Divide(n.LengthSquared()),
		Material: mat,
	}
}

func (*Quad) isSurface() {}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	denominator := q.Normal.Dot(ray.Direction)

	// Parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return material.HitRecord{}, false
	}

	t := (q.D - q.Normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return material.HitRecord{}, false
	}

	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))

	unit := core.NewInterval(0, 1)
	if !unit.Contains(alpha) || !unit.Contains(beta) {
		return material.HitRecord{}, false
	}

	hit := material.HitRecord{
		T:        t,
		Point:    hitPoint,
		UV:       core.NewVec2(alpha, beta),
		Material: q.Material,
	}
	hit.SetFaceNormal(ray, q.Normal)

	return hit, true
}

// BoundingBox returns the padded box around the four corners
func (q *Quad) BoundingBox() core.AABB {
	diagonal1 := core.NewAABBFromPoints(q.Corner, q.Corner.Add(q.U).Add(q.V))
	diagonal2 := core.NewAABBFromPoints(q.Corner.Add(q.U), q.Corner.Add(q.V))
	return diagonal1.Union(diagonal2).Pad()
}
