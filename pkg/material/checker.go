package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CheckerTexture alternates between two textures on a 3D lattice of cubes
type CheckerTexture struct {
	InvScale float64
	Even     core.Texture
	Odd      core.Texture
}

// NewCheckerTexture creates a checker pattern with cubes of side scale
func NewCheckerTexture(scale float64, even, odd core.Texture) *CheckerTexture {
	return &CheckerTexture{
		InvScale: 1.0 / scale,
		Even:     even,
		Odd:      odd,
	}
}

// NewCheckerTextureColors creates a checker pattern between two solid colors
func NewCheckerTextureColors(scale float64, even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Evaluate picks the even or odd texture by the parity of the lattice cell containing point
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	x := int(math.Floor(c.InvScale * point.X))
	y := int(math.Floor(c.InvScale * point.Y))
	z := int(math.Floor(c.InvScale * point.Z))

	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}
