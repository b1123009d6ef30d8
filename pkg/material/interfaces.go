package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material is the closed set of surface materials: *Lambertian, *Metal,
// *Dielectric, *DiffuseLight and *Isotropic. Use Scatter and Emitted to
// evaluate one; they dispatch on the concrete type.
type Material interface {
	isMaterial()
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection.
// It lives for a single integrator step.
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Texture coordinates
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Scatter asks the hit material for a scattered ray. It returns false when the
// material absorbs the ray.
func Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m := hit.Material.(type) {
	case *Lambertian:
		return m.Scatter(rayIn, hit, sampler)
	case *Metal:
		return m.Scatter(rayIn, hit, sampler)
	case *Dielectric:
		return m.Scatter(rayIn, hit, sampler)
	case *Isotropic:
		return m.Scatter(rayIn, hit, sampler)
	case *DiffuseLight:
		return ScatterResult{}, false
	default:
		return ScatterResult{}, false
	}
}

// Emitted returns the light emitted by the hit material; zero for anything but lights
func Emitted(hit *HitRecord) core.Vec3 {
	if light, ok := hit.Material.(*DiffuseLight); ok {
		return light.Emit(hit.UV, hit.Point)
	}
	return core.Vec3{}
}
