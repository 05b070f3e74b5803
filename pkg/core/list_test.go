package core

import (
	"math"
	"testing"
)

func TestHittableList_ClosestHitIndependentOfOrder(t *testing.T) {
	near := &mockSphere{center: NewVec3(0, 0, -3), radius: 1, material: &mockMaterial{id: 1}}
	far := &mockSphere{center: NewVec3(0, 0, -10), radius: 1, material: &mockMaterial{id: 2}}
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -1))
	rayT := NewInterval(0.001, math.Inf(1))

	for _, list := range []*HittableList{NewHittableList(near, far), NewHittableList(far, near)} {
		hit, isHit := list.Hit(ray, rayT, nil)
		if !isHit {
			t.Fatal("Expected hit")
		}
		if math.Abs(hit.T-2) > 1e-12 {
			t.Errorf("Expected t=2, got %f", hit.T)
		}
		if hit.Material != near.material {
			t.Error("Expected the nearer sphere's material")
		}
	}
}

func TestHittableList_RespectsInterval(t *testing.T) {
	list := NewHittableList(&mockSphere{center: NewVec3(0, 0, -3), radius: 1})
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -1))

	if _, isHit := list.Hit(ray, NewInterval(0.001, 1.5), nil); isHit {
		t.Error("Expected no hit when the sphere lies beyond the interval")
	}

	// Starting past the front face yields the back face
	hit, isHit := list.Hit(ray, NewInterval(2.5, math.Inf(1)), nil)
	if !isHit || math.Abs(hit.T-4) > 1e-12 {
		t.Errorf("Expected back-face hit at t=4, got %v", hit)
	}
}

func TestHittableList_BoundingBox(t *testing.T) {
	empty := NewHittableList()
	if empty.BoundingBox().IsValid() {
		t.Error("Expected empty list to have an empty bounding box")
	}

	list := NewHittableList(
		&mockSphere{center: NewVec3(0, 0, 0), radius: 1},
		&mockSphere{center: NewVec3(5, 0, 0), radius: 1},
	)
	box := list.BoundingBox()
	if box.Min() != NewVec3(-1, -1, -1) || box.Max() != NewVec3(6, 1, 1) {
		t.Errorf("Unexpected list bounds %v - %v", box.Min(), box.Max())
	}
	if list.Len() != 2 {
		t.Errorf("Expected 2 objects, got %d", list.Len())
	}
}
