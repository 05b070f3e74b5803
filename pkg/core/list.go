package core

// HittableList is an unordered aggregate of hittables searched linearly
type HittableList struct {
	Objects []Hittable
	bbox    AABB
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{bbox: EmptyAABB}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object and grows the list's bounding box
func (l *HittableList) Add(object Hittable) {
	if len(l.Objects) == 0 {
		l.bbox = EmptyAABB
	}
	l.bbox = l.bbox.Union(object.BoundingBox())
	l.Objects = append(l.Objects, object)
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit scans every object, shrinking the accepted range to the closest hit so far
func (l *HittableList) Hit(ray Ray, rayT Interval, sampler Sampler) (*HitRecord, bool) {
	var closestHit *HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, NewInterval(rayT.Min, closestSoFar), sampler); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all object boxes
func (l *HittableList) BoundingBox() AABB {
	if len(l.Objects) == 0 {
		return EmptyAABB
	}
	return l.bbox
}
