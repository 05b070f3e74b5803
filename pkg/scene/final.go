package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

const (
	groundBoxesPerSide = 20
	sphereClusterCount = 1000
)

// NewFinalScene exercises every primitive, material and texture in one world
func NewFinalScene(sampler core.Sampler) (*core.HittableList, *renderer.Camera) {
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	boxes := core.NewHittableList()
	for i := 0; i < groundBoxesPerSide; i++ {
		for j := 0; j < groundBoxesPerSide; j++ {
			const w = 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := core.RandomRange(sampler, 1, 101)
			boxes.Add(geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}

	world := core.NewHittableList(core.NewBVHFromList(boxes))

	light := material.NewDiffuseLight(core.NewVec3(9, 9, 9))
	world.Add(geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 305), light))

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	world.Add(geometry.NewMovingSphere(center1, center2, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	world.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 70, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	// Glass shell filled with blue medium
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	world.Add(boundary)
	world.Add(geometry.NewConstantMediumColor(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist over everything
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMediumColor(mist, 0.0001, core.NewVec3(1, 1, 1)))

	earth := material.NewTexturedLambertian(material.NewImageTextureFromFile(EarthImage))
	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, earth))

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(material.NewPerlin(sampler), 0.1))
	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, marble))

	white := material.NewLambertian(cornellWhite)
	cluster := core.NewHittableList()
	for n := 0; n < sphereClusterCount; n++ {
		cluster.Add(geometry.NewSphere(core.RandomVec3(sampler, 0, 165), 10, white))
	}
	world.Add(geometry.NewTranslate(
		geometry.NewRotateY(core.NewBVHFromList(cluster), 15),
		core.NewVec3(-100, 270, 395),
	))

	camera := newCamera(1.0, 800, 1000, black, 40, core.NewVec3(478, 278, -600), core.NewVec3(278, 278, 0))
	camera.MaxDepth = 40

	return world, camera
}
