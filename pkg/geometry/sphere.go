package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Sphere represents a sphere shape, optionally moving linearly over the ray time interval
type Sphere struct {
	Center   core.Vec3 // Center at time 0
	Motion   core.Vec3 // Displacement of the center between time 0 and time 1
	Radius   float64
	Material core.Material
	bbox     core.AABB
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return NewMovingSphere(center, center, radius, material)
}

// NewMovingSphere creates a sphere whose center moves from center1 at time 0
// to center2 at time 1. Negative radii are treated as zero.
func NewMovingSphere(center1, center2 core.Vec3, radius float64, material core.Material) *Sphere {
	radius = math.Max(0, radius)
	rvec := core.NewVec3(radius, radius, radius)
	box1 := core.NewAABB(center1.Subtract(rvec), center1.Add(rvec))
	box2 := core.NewAABB(center2.Subtract(rvec), center2.Add(rvec))

	return &Sphere{
		Center:   center1,
		Motion:   center2.Subtract(center1),
		Radius:   radius,
		Material: material,
		bbox:     box1.Union(box2),
	}
}

// CenterAt returns the sphere's center at the given ray time
func (s *Sphere) CenterAt(time float64) core.Vec3 {
	return s.Center.Add(s.Motion.Multiply(time))
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	center := s.CenterAt(ray.Time)

	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Find the nearest root that lies in the acceptable range
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hitRecord := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Calculate outward normal (from center to hit point)
	outwardNormal := hitRecord.Point.Subtract(center).Multiply(1.0 / s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.UV = SphereUV(outwardNormal)

	return hitRecord, true
}

// BoundingBox returns the box enclosing the sphere over its whole motion
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// SphereUV maps a point on the unit sphere centered at the origin to texture coordinates.
// u wraps around the Y axis with the seam at +Z, v runs from Y=-1 (v=0) to Y=+1 (v=1).
func SphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(math.Max(-1, math.Min(1, -p.Y)))
	phi := math.Atan2(p.X, -p.Z) + math.Pi

	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
