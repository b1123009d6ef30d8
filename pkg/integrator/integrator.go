package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray from the surface root of world
	RayColor(ray core.Ray, world *geometry.World, root geometry.Handle, background Background, sampler core.Sampler) core.Vec3
}

// Background is the radiance of rays that escape the scene: a vertical
// gradient from Bottom (straight down) to Top (straight up)
type Background struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewConstantBackground creates a background of a single color
func NewConstantBackground(color core.Vec3) Background {
	return Background{Top: color, Bottom: color}
}

// SkyBackground returns the white to light blue sky gradient
func SkyBackground() Background {
	return Background{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color returns the background radiance in the direction of ray
func (b Background) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Multiply(1.0 - a).Add(b.Top.Multiply(a))
}
