package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const cornellSize = 555.0

var (
	cornellRed   = core.NewVec3(0.65, 0.05, 0.05)
	cornellWhite = core.NewVec3(0.73, 0.73, 0.73)
	cornellGreen = core.NewVec3(0.12, 0.45, 0.15)
)

// cornellWalls returns the five walls and the ceiling light of the box
func cornellWalls() []core.Hittable {
	white := material.NewLambertian(cornellWhite)
	red := material.NewLambertian(cornellRed)
	green := material.NewLambertian(cornellGreen)
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	s := cornellSize
	return []core.Hittable{
		geometry.NewQuad(core.NewVec3(s, 0, 0), core.NewVec3(0, s, 0), core.NewVec3(0, 0, s), green), // right wall
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, s, 0), core.NewVec3(0, 0, s), red),   // left wall
		geometry.NewQuad(core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305), light),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(s, 0, 0), core.NewVec3(0, 0, s), white),   // floor
		geometry.NewQuad(core.NewVec3(s, s, s), core.NewVec3(-s, 0, 0), core.NewVec3(0, 0, -s), white), // ceiling
		geometry.NewQuad(core.NewVec3(0, 0, s), core.NewVec3(s, 0, 0), core.NewVec3(0, s, 0), white),   // back wall
	}
}

// cornellBlocks returns the tall and the short block, rotated and placed inside the box
func cornellBlocks(mat core.Material) (tall, short core.Hittable) {
	tallBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat)
	tall = geometry.NewTranslate(geometry.NewRotateY(tallBox, 15), core.NewVec3(265, 0, 295))

	shortBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat)
	short = geometry.NewTranslate(geometry.NewRotateY(shortBox, -18), core.NewVec3(130, 0, 65))
	return tall, short
}

func cornellCamera(spp int) *renderer.Camera {
	return newCamera(1.0, 600, spp, black, 40, core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0))
}

// NewCornellBox creates the classic Cornell box with two white blocks
func NewCornellBox(sampler core.Sampler) (*core.HittableList, *renderer.Camera) {
	world := core.NewHittableList(cornellWalls()...)

	tall, short := cornellBlocks(material.NewLambertian(cornellWhite))
	world.Add(tall)
	world.Add(short)

	return world, cornellCamera(200)
}

// NewCornellSmoke replaces the Cornell blocks with black smoke and white fog
func NewCornellSmoke(sampler core.Sampler) (*core.HittableList, *renderer.Camera) {
	world := core.NewHittableList(cornellWalls()...)

	tall, short := cornellBlocks(material.NewLambertian(cornellWhite))
	world.Add(geometry.NewConstantMediumColor(tall, 0.01, core.NewVec3(0, 0, 0)))
	world.Add(geometry.NewConstantMediumColor(short, 0.01, core.NewVec3(1, 1, 1)))

	return world, cornellCamera(200)
}
