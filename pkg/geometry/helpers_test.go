package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DummyMaterial for testing
type DummyMaterial struct{}

func (d DummyMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// hitRange is the acceptance window the integrator uses
var hitRange = core.NewInterval(0.001, math.Inf(1))

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}
