package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// AddBox adds an axis-aligned box spanning the opposite corners a and b, made
// up of 6 outward-facing quads gathered in a List, and returns the list handle
func (w *World) AddBox(a, b core.Vec3, mat material.Material) Handle {
	minP := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	maxP := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(maxP.X-minP.X, 0, 0)
	dy := core.NewVec3(0, maxP.Y-minP.Y, 0)
	dz := core.NewVec3(0, 0, maxP.Z-minP.Z)

	faces := []Handle{
		w.Add(NewQuad(core.NewVec3(minP.X, minP.Y, maxP.Z), dx, dy, mat)),          // front
		w.Add(NewQuad(core.NewVec3(maxP.X, minP.Y, maxP.Z), dz.Negate(), dy, mat)), // right
		w.Add(NewQuad(core.NewVec3(maxP.X, minP.Y, minP.Z), dx.Negate(), dy, mat)), // back
		w.Add(NewQuad(core.NewVec3(minP.X, minP.Y, minP.Z), dz, dy, mat)),          // left
		w.Add(NewQuad(core.NewVec3(minP.X, maxP.Y, maxP.Z), dx, dz.Negate(), mat)), // top
		w.Add(NewQuad(core.NewVec3(minP.X, minP.Y, minP.Z), dx, dz, mat)),          // bottom
	}

	return w.Add(NewList(faces...))
}
