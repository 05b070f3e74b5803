package renderer

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// constantSampler returns the same value for every dimension
type constantSampler struct {
	value float64
}

func (c *constantSampler) Get1D() float64 { return c.value }
func (c *constantSampler) Get2D() core.Vec2 {
	return core.NewVec2(c.value, c.value)
}
func (c *constantSampler) Get3D() core.Vec3 {
	return core.NewVec3(c.value, c.value, c.value)
}

// forwardCamera looks down -Z from the origin with a unit focus distance
func forwardCamera(width int) *Camera {
	camera := NewCamera()
	camera.ImageWidth = width
	camera.LookFrom = core.NewVec3(0, 0, 0)
	camera.LookAt = core.NewVec3(0, 0, -1)
	camera.FocusDist = 1
	return camera
}

func expectPanic(t testing.TB, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
