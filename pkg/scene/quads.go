package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewQuads creates five coloured quads arranged as an open box around the view axis
func NewQuads(sampler core.Sampler) (*core.HittableList, *renderer.Camera) {
	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	world := core.NewHittableList(
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange),
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
	)

	camera := newCamera(1.0, 400, 100, skyBlue, 80, core.NewVec3(0, 0, 9), core.NewVec3(0, 0, 0))
	return world, camera
}

// NewSimpleLight lights the Perlin spheres with an emissive quad and sphere against a black sky
func NewSimpleLight(sampler core.Sampler) (*core.HittableList, *renderer.Camera) {
	world := core.NewHittableList(perlinSpheres(sampler)...)

	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	world.Add(geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light))
	world.Add(geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light))

	camera := newCamera(16.0/9.0, 1200, 100, black, 20, core.NewVec3(26, 3, 6), core.NewVec3(0, 2, 0))
	return world, camera
}
