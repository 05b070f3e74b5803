package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Quad represents a planar parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3     // One corner of the quad
	U        core.Vec3     // First edge vector
	V        core.Vec3     // Second edge vector
	Normal   core.Vec3     // Unit normal (direction of U × V)
	Material core.Material // Material of the quad
	D        float64       // Plane equation constant: normal · p = d
	W        core.Vec3     // Cached n / (n · n) for planar coordinates
	bbox     core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	// Bound both diagonals; padding keeps the flat axis non-degenerate
	diagonal1 := core.NewAABB(corner, corner.Add(u).Add(v))
	diagonal2 := core.NewAABB(corner.Add(u), corner.Add(v))

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		D:        normal.Dot(corner),
		W:        n.Multiply(1.0 / n.Dot(n)),
		bbox:     diagonal1.Union(diagonal2),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray is parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if !rayT.Surrounds(t) {
		return nil, false
	}

	// Express the hit point in the (U, V) frame anchored at the corner
	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))

	if !isInterior(alpha, beta) {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        t,
		Point:    hitPoint,
		UV:       core.NewVec2(alpha, beta),
		Material: q.Material,
	}
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

// BoundingBox returns the padded bounding box of the quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

func isInterior(alpha, beta float64) bool {
	unit := core.NewInterval(0, 1)
	return unit.Contains(alpha) && unit.Contains(beta)
}
