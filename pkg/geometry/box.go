package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewBox returns the six quad faces of the axis-aligned box with opposite corners a and b
func NewBox(a, b core.Vec3, material core.Material) *core.HittableList {
	sides := core.NewHittableList()

	minCorner := a.Min(b)
	maxCorner := a.Max(b)

	dx := core.NewVec3(maxCorner.X-minCorner.X, 0, 0)
	dy := core.NewVec3(0, maxCorner.Y-minCorner.Y, 0)
	dz := core.NewVec3(0, 0, maxCorner.Z-minCorner.Z)

	sides.Add(NewQuad(core.NewVec3(minCorner.X, minCorner.Y, maxCorner.Z), dx, dy, material))          // front
	sides.Add(NewQuad(core.NewVec3(maxCorner.X, minCorner.Y, maxCorner.Z), dz.Negate(), dy, material)) // right
	sides.Add(NewQuad(core.NewVec3(maxCorner.X, minCorner.Y, minCorner.Z), dx.Negate(), dy, material)) // back
	sides.Add(NewQuad(core.NewVec3(minCorner.X, minCorner.Y, minCorner.Z), dz, dy, material))          // left
	sides.Add(NewQuad(core.NewVec3(minCorner.X, maxCorner.Y, maxCorner.Z), dx, dz.Negate(), material)) // top
	sides.Add(NewQuad(core.NewVec3(minCorner.X, minCorner.Y, minCorner.Z), dx, dz, material))          // bottom

	return sides
}
