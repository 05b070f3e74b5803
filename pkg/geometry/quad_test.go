package geometry

import (
	"fmt"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestQuad_Hit_BasicIntersection(t *testing.T) {
	// Create a 1x1 quad in the XZ plane at y=0
	corner := core.NewVec3(0, 0, 0)
	u := core.NewVec3(1, 0, 0) // X direction
	v := core.NewVec3(0, 0, 1) // Z direction
	quad := NewQuad(corner, u, v, DummyMaterial{})

	// Ray shooting down at the quad
	ray := core.NewRay(core.NewVec3(0.25, 1, 0.75), core.NewVec3(0, -1, 0))

	hit, isHit := quad.Hit(ray, hitRange, nil)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected t=1, got t=%f", hit.T)
	}
	if !vecNear(hit.Point, core.NewVec3(0.25, 0, 0.75), 1e-9) {
		t.Errorf("Expected hit point (0.25, 0, 0.75), got %v", hit.Point)
	}
	if math.Abs(hit.UV.X-0.25) > 1e-9 || math.Abs(hit.UV.Y-0.75) > 1e-9 {
		t.Errorf("Expected UV (0.25, 0.75), got (%f, %f)", hit.UV.X, hit.UV.Y)
	}

	// u × v points down (-Y), so a downward ray strikes the back face
	if hit.FrontFace {
		t.Error("Expected back-face hit")
	}
	if !vecNear(hit.Normal, core.NewVec3(0, 1, 0), 1e-9) {
		t.Errorf("Expected normal facing the ray (0,1,0), got %v", hit.Normal)
	}
}

func TestQuad_Hit_OutsideBounds(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), DummyMaterial{})

	tests := []struct {
		name      string
		rayOrigin core.Vec3
		rayDir    core.Vec3
	}{
		{
			name:      "outside X bounds (negative)",
			rayOrigin: core.NewVec3(-0.5, 1, 0.5),
			rayDir:    core.NewVec3(0, -1, 0),
		},
		{
			name:      "outside X bounds (positive)",
			rayOrigin: core.NewVec3(1.5, 1, 0.5),
			rayDir:    core.NewVec3(0, -1, 0),
		},
		{
			name:      "outside Z bounds (negative)",
			rayOrigin: core.NewVec3(0.5, 1, -0.5),
			rayDir:    core.NewVec3(0, -1, 0),
		},
		{
			name:      "outside Z bounds (positive)",
			rayOrigin: core.NewVec3(0.5, 1, 1.5),
			rayDir:    core.NewVec3(0, -1, 0),
		},
		{
			name:      "plane behind the ray",
			rayOrigin: core.NewVec3(0.5, 1, 0.5),
			rayDir:    core.NewVec3(0, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDir)
			hit, isHit := quad.Hit(ray, hitRange, nil)
			if isHit {
				t.Errorf("Expected miss, but got hit at t=%f", hit.T)
			}
		})
	}
}

func TestQuad_Hit_CornerHits(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), DummyMaterial{})

	corners := []core.Vec3{
		{X: 0, Y: 0, Z: 0}, // corner
		{X: 1, Y: 0, Z: 0}, // corner + u
		{X: 0, Y: 0, Z: 1}, // corner + v
		{X: 1, Y: 0, Z: 1}, // corner + u + v
	}

	for i, cornerPoint := range corners {
		t.Run(fmt.Sprintf("corner_%d", i), func(t *testing.T) {
			ray := core.NewRay(cornerPoint.Add(core.NewVec3(0, 1, 0)), core.NewVec3(0, -1, 0))
			if _, isHit := quad.Hit(ray, hitRange, nil); !isHit {
				t.Errorf("Expected hit at corner %v, but got miss", cornerPoint)
			}
		})
	}
}

func TestQuad_Hit_ParallelRay(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), DummyMaterial{})

	// Ray parallel to the quad
	ray := core.NewRay(core.NewVec3(0.5, 1, 0.5), core.NewVec3(1, 0, 0))

	if _, isHit := quad.Hit(ray, hitRange, nil); isHit {
		t.Error("Expected miss for parallel ray, but got hit")
	}
}

func TestQuad_Hit_Parallelogram(t *testing.T) {
	// Sheared quad: the square test would accept points the parallelogram does not cover
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(1, 1, 0), DummyMaterial{})

	inside := core.NewRay(core.NewVec3(2.5, 0.9, -1), core.NewVec3(0, 0, 1))
	if _, isHit := quad.Hit(inside, hitRange, nil); !isHit {
		t.Error("Expected hit inside the sheared quad")
	}

	outside := core.NewRay(core.NewVec3(0.2, 0.9, -1), core.NewVec3(0, 0, 1))
	if _, isHit := quad.Hit(outside, hitRange, nil); isHit {
		t.Error("Expected miss left of the sheared edge")
	}
}

func TestQuad_BoundingBox(t *testing.T) {
	// X-aligned quad in the YZ plane
	quad := NewQuad(
		core.NewVec3(5, 0, 0), // corner
		core.NewVec3(0, 2, 0), // u vector (along Y)
		core.NewVec3(0, 0, 3), // v vector (along Z)
		DummyMaterial{},
	)

	bbox := quad.BoundingBox()

	if bbox.X.Size() < 1e-4 {
		t.Errorf("Expected padded X extent, got %f", bbox.X.Size())
	}
	if math.Abs(bbox.X.Min+bbox.X.Max-10) > 1e-12 {
		t.Errorf("Expected X extent centered on 5, got [%f, %f]", bbox.X.Min, bbox.X.Max)
	}
	if bbox.Y != core.NewInterval(0, 2) || bbox.Z != core.NewInterval(0, 3) {
		t.Errorf("Unexpected Y/Z extents %v %v", bbox.Y, bbox.Z)
	}
}
