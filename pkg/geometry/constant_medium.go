package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// boundaryEpsilon separates the two boundary queries so the exit is not the entry again
const boundaryEpsilon = 0.0001

// ConstantMedium is a homogeneous participating medium (fog, smoke) filling a boundary hittable.
// The boundary must be closed and convex for the entry/exit pair to be meaningful.
type ConstantMedium struct {
	Boundary      core.Hittable
	PhaseFunction core.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium of the given density whose phase function samples tex
func NewConstantMedium(boundary core.Hittable, density float64, tex core.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewIsotropic(tex),
		negInvDensity: -1.0 / density,
	}
}

// NewConstantMediumColor creates a medium with a solid-colored phase function
func NewConstantMediumColor(boundary core.Hittable, density float64, albedo core.Color) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewIsotropicColor(albedo),
		negInvDensity: -1.0 / density,
	}
}

// Hit samples a scattering distance inside the boundary along the ray.
// It reports no hit when the sampled distance lies beyond the exit point.
func (cm *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	entry, isHit := cm.Boundary.Hit(ray, core.UniverseInterval, sampler)
	if !isHit {
		return nil, false
	}

	exit, isHit := cm.Boundary.Hit(ray, core.NewInterval(entry.T+boundaryEpsilon, math.Inf(1)), sampler)
	if !isHit {
		return nil, false
	}

	t1 := math.Max(entry.T, rayT.Min)
	t2 := math.Min(exit.T, rayT.Max)
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := cm.negInvDensity * math.Log(sampler.Get1D())
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // also arbitrary
		Material:  cm.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's bounding box
func (cm *ConstantMedium) BoundingBox() core.AABB {
	return cm.Boundary.BoundingBox()
}
