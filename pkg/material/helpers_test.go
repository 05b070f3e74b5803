package material

import (
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
