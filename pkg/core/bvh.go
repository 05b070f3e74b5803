package core

import (
	"sort"
)

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox AABB
	Left        *BVHNode
	Right       *BVHNode
	Object      Hittable // Set for leaf nodes only (nil for internal nodes)
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// It is immutable once built and safe for concurrent queries.
type BVH struct {
	Root *BVHNode
}

// NewBVH constructs a BVH from a slice of objects.
// It panics if objects is empty.
func NewBVH(objects []Hittable) *BVH {
	if len(objects) == 0 {
		panic("core: cannot build a BVH from an empty object collection")
	}

	// Make a copy of the objects slice to avoid modifying the original
	// This is crucial for thread safety when multiple workers build BVHs concurrently
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return &BVH{
		Root: buildBVH(objectsCopy),
	}
}

// NewBVHFromList constructs a BVH over the objects of a list
func NewBVHFromList(list *HittableList) *BVH {
	return NewBVH(list.Objects)
}

// buildBVH recursively splits the objects at the index median along the
// longest axis of their combined bounding box
func buildBVH(objects []Hittable) *BVHNode {
	boundingBox := EmptyAABB
	for _, object := range objects {
		boundingBox = boundingBox.Union(object.BoundingBox())
	}
	axis := boundingBox.LongestAxis()

	switch len(objects) {
	case 1:
		return newLeaf(objects[0])
	case 2:
		left, right := objects[0], objects[1]
		if boxCompare(right, left, axis) {
			left, right = right, left
		}
		return newBranch(newLeaf(left), newLeaf(right))
	}

	sortObjectsByAxis(objects, axis)

	mid := len(objects) / 2
	return newBranch(buildBVH(objects[:mid]), buildBVH(objects[mid:]))
}

func newLeaf(object Hittable) *BVHNode {
	return &BVHNode{BoundingBox: object.BoundingBox(), Object: object}
}

func newBranch(left, right *BVHNode) *BVHNode {
	return &BVHNode{
		BoundingBox: left.BoundingBox.Union(right.BoundingBox),
		Left:        left,
		Right:       right,
	}
}

// boxCompare orders objects by the minimum of their bounding box along axis
func boxCompare(a, b Hittable, axis int) bool {
	return a.BoundingBox().Axis(axis).Min < b.BoundingBox().Axis(axis).Min
}

// sortObjectsByAxis sorts objects by their bounding box minimum along the specified axis
func sortObjectsByAxis(objects []Hittable, axis int) {
	sort.SliceStable(objects, func(i, j int) bool {
		return boxCompare(objects[i], objects[j], axis)
	})
}

// Hit tests if a ray intersects any object in the BVH
func (bvh *BVH) Hit(ray Ray, rayT Interval, sampler Sampler) (*HitRecord, bool) {
	return bvh.Root.hit(ray, rayT, sampler)
}

// BoundingBox returns the bounding box of the whole hierarchy
func (bvh *BVH) BoundingBox() AABB {
	return bvh.Root.BoundingBox
}

// hit recursively tests ray intersection with BVH nodes
func (node *BVHNode) hit(ray Ray, rayT Interval, sampler Sampler) (*HitRecord, bool) {
	// First check if ray hits the bounding box
	if !node.BoundingBox.Hit(ray, rayT) {
		return nil, false
	}

	if node.Object != nil {
		return node.Object.Hit(ray, rayT, sampler)
	}

	hitLeft, isHitLeft := node.Left.hit(ray, rayT, sampler)

	// The right subtree only needs to report hits closer than the left one
	rightT := rayT
	if isHitLeft {
		rightT.Max = hitLeft.T
	}
	if hitRight, isHitRight := node.Right.hit(ray, rightT, sampler); isHitRight {
		return hitRight, true
	}

	return hitLeft, isHitLeft
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes   int
	LeafNodes    int
	MaxDepth     int
	AvgDepth     float64
	TotalObjects int
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{}
	bvh.collectStats(bvh.Root, 0, &stats)

	// Calculate average depth after collecting all data
	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}

	return stats
}

// collectStats recursively collects statistics about the BVH
func (bvh *BVH) collectStats(node *BVHNode, depth int, stats *BVHStats) {
	stats.TotalNodes++

	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if node.Object != nil {
		stats.LeafNodes++
		stats.TotalObjects++
		stats.AvgDepth += float64(depth) // Accumulate depth for average calculation
		return
	}

	bvh.collectStats(node.Left, depth+1, stats)
	bvh.collectStats(node.Right, depth+1, stats)
}
