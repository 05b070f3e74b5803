package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ShadowAcneEpsilon is the smallest t accepted for a hit, so a scattered ray
// does not immediately re-hit the surface it left
const ShadowAcneEpsilon = 0.001

// PathTracingIntegrator implements recursive unidirectional path tracing
type PathTracingIntegrator struct {
	MaxDepth   int       // Maximum number of ray bounces
	Background core.Vec3 // Radiance returned by rays that miss everything
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int, background core.Vec3) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth:   maxDepth,
		Background: background,
	}
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world core.Hittable, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, pt.MaxDepth, world, sampler)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, depth int, world core.Hittable, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(ShadowAcneEpsilon, math.Inf(1)), sampler)
	if !isHit {
		return pt.Background
	}

	// Start with emitted light from the hit material
	colorEmitted := emittedLight(hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted
	}

	colorScattered := scatter.Attenuation.MultiplyVec(pt.rayColor(scatter.Scattered, depth-1, world, sampler))
	return colorEmitted.Add(colorScattered)
}

// emittedLight returns the emitted light from a material if it's emissive
func emittedLight(hit *core.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(core.Emitter); isEmissive {
		return emitter.Emit(hit.UV, hit.Point)
	}
	return core.Vec3{X: 0, Y: 0, Z: 0}
}
