package core

import "math"

// minAABBThickness is the smallest extent an AABB may have along any axis
const minAABBThickness = 0.0001

// AABB represents an axis-aligned bounding box as the product of three intervals
type AABB struct {
	X, Y, Z Interval
}

var (
	// EmptyAABB bounds nothing; it is the identity for Union
	EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}
	// UniverseAABB bounds all of space
	UniverseAABB = AABB{X: UniverseInterval, Y: UniverseInterval, Z: UniverseInterval}
)

// NewAABB creates an AABB with a and b as opposite corners, in any order.
// Axes thinner than the minimum thickness are padded.
func NewAABB(a, b Vec3) AABB {
	return AABB{
		X: NewInterval(min(a.X, b.X), max(a.X, b.X)),
		Y: NewInterval(min(a.Y, b.Y), max(a.Y, b.Y)),
		Z: NewInterval(min(a.Z, b.Z), max(a.Z, b.Z)),
	}.Pad()
}

// NewAABBFromIntervals creates an AABB from per-axis intervals, padded
func NewAABBFromIntervals(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}.Pad()
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return EmptyAABB
	}

	min := points[0]
	max := points[0]
	for _, point := range points[1:] {
		min = min.Min(point)
		max = max.Max(point)
	}

	return NewAABB(min, max)
}

// NewAABBFromBoxes returns the union of two boxes
func NewAABBFromBoxes(box0, box1 AABB) AABB {
	return box0.Union(box1)
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: NewIntervalFromIntervals(aabb.X, other.X),
		Y: NewIntervalFromIntervals(aabb.Y, other.Y),
		Z: NewIntervalFromIntervals(aabb.Z, other.Z),
	}
}

// Pad widens any axis thinner than the minimum thickness
func (aabb AABB) Pad() AABB {
	return AABB{X: padInterval(aabb.X), Y: padInterval(aabb.Y), Z: padInterval(aabb.Z)}
}

// padInterval widens i about its midpoint until its computed size reaches
// minAABBThickness. Max is stepped up ulp by ulp since Min+δ may round below δ.
func padInterval(i Interval) Interval {
	if i.Size() >= minAABBThickness {
		return i
	}

	mid := i.Min + (i.Max-i.Min)/2
	lo := math.Min(mid-minAABBThickness/2, i.Min)
	hi := math.Max(lo+minAABBThickness, i.Max)
	for hi-lo < minAABBThickness {
		hi = math.Nextafter(hi, math.Inf(1))
	}
	return Interval{Min: lo, Max: hi}
}

// Axis returns the interval for axis n (0=X, 1=Y, 2=Z)
func (aabb AABB) Axis(n int) Interval {
	switch n {
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	default:
		return aabb.X
	}
}

// Translate returns the box shifted by offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{
		X: aabb.X.Add(offset.X),
		Y: aabb.Y.Add(offset.Y),
		Z: aabb.Z.Add(offset.Z),
	}
}

// Hit tests if a ray intersects with this AABB using the slab method
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	_, hit := aabb.HitInterval(ray, rayT)
	return hit
}

// HitInterval clips rayT to the portion of the ray inside the box.
// Zero direction components divide to ±Inf, which the comparisons handle.
func (aabb AABB) HitInterval(ray Ray, rayT Interval) (Interval, bool) {
	for axis := 0; axis < 3; axis++ {
		slab := aabb.Axis(axis)
		invDirection := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (slab.Min - origin) * invDirection
		t1 := (slab.Max - origin) * invDirection
		if invDirection < 0 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return rayT, false
		}
	}

	return rayT, true
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min().Add(aabb.Max()).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return NewVec3(aabb.X.Size(), aabb.Y.Size(), aabb.Z.Size())
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
// Ties prefer X, then Z, then Y.
func (aabb AABB) LongestAxis() int {
	x, y, z := aabb.X.Size(), aabb.Y.Size(), aabb.Z.Size()
	if x >= y {
		if x >= z {
			return 0
		}
		return 2
	}
	if y > z {
		return 1
	}
	return 2
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return !aabb.X.IsEmpty() && !aabb.Y.IsEmpty() && !aabb.Z.IsEmpty()
}
