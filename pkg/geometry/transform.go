package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Translate wraps a hittable and displaces it by a fixed offset
type Translate struct {
	Object core.Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate creates a translated instance of object
func NewTranslate(object core.Hittable, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Translate(offset),
	}
}

// Hit moves the ray into object space, delegates, and moves the hit point back
func (tr *Translate) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	offsetRay := core.NewRayWithTime(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)

	hit, isHit := tr.Object.Hit(offsetRay, rayT, sampler)
	if !isHit {
		return nil, false
	}

	hit.Point = hit.Point.Add(tr.Offset)
	return hit, true
}

// BoundingBox returns the translated bounding box of the wrapped object
func (tr *Translate) BoundingBox() core.AABB {
	return tr.bbox
}

// RotateY wraps a hittable and rotates it about the Y axis
type RotateY struct {
	Object   core.Hittable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY creates an instance of object rotated by angle degrees about the Y axis.
// The bounding box is the axis-aligned box around all eight rotated corners of the inner box.
func NewRotateY(object core.Hittable, angle float64) *RotateY {
	radians := core.DegreesToRadians(angle)
	r := &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	box := object.BoundingBox()
	corners := make([]core.Vec3, 0, 8)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				corner := core.NewVec3(
					pick(box.X, i),
					pick(box.Y, j),
					pick(box.Z, k),
				)
				corners = append(corners, r.toWorld(corner))
			}
		}
	}
	r.bbox = core.NewAABBFromPoints(corners...)

	return r
}

// pick returns the interval's minimum for 0 and its maximum for 1
func pick(interval core.Interval, which int) float64 {
	if which == 0 {
		return interval.Min
	}
	return interval.Max
}

// toObject applies the inverse rotation, taking world space to object space
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld applies the forward rotation, taking object space to world space
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, delegates, and rotates the hit back to world space
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	rotated := core.NewRayWithTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	hit, isHit := r.Object.Hit(rotated, rayT, sampler)
	if !isHit {
		return nil, false
	}

	// Rotation preserves t, and the face orientation already matches the rotated ray
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the conservative world-space box of the rotated object
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}
