package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// EarthImage is the texture asset used by the earth scenes
const EarthImage = "earthmap.jpg"

// NewRandomSpheres creates the cover scene: a checkered ground, three large spheres
// and a grid of small randomly placed diffuse (moving), metal and glass spheres
func NewRandomSpheres(sampler core.Sampler) (*core.HittableList, *renderer.Camera) {
	world := core.NewHittableList()

	checker := material.NewCheckerTextureColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// Diffuse, bouncing upwards during the exposure
				albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
				center2 := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
				world.Add(geometry.NewMovingSphere(center, center2, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	camera := newCamera(16.0/9.0, 400, 100, skyBlue, 20, core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0))
	camera.DefocusAngle = 0.6
	camera.FocusDist = 10.0

	return world, camera
}

// NewTwoSpheres creates two large checkered spheres touching at the origin
func NewTwoSpheres(sampler core.Sampler) (*core.HittableList, *renderer.Camera) {
	checker := material.NewCheckerTextureColors(0.8, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	surface := material.NewTexturedLambertian(checker)

	world := core.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, surface),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, surface),
	)

	camera := newCamera(16.0/9.0, 1200, 10, skyBlue, 20, core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0))
	return world, camera
}

// NewEarth creates a single globe textured with an equirectangular earth map
func NewEarth(sampler core.Sampler) (*core.HittableList, *renderer.Camera) {
	surface := material.NewTexturedLambertian(material.NewImageTextureFromFile(EarthImage))
	world := core.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, surface))

	camera := newCamera(16.0/9.0, 1200, 10, skyBlue, 20, core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0))
	return world, camera
}

// NewPerlinSpheres creates a marble ground and sphere
func NewPerlinSpheres(sampler core.Sampler) (*core.HittableList, *renderer.Camera) {
	world := core.NewHittableList(perlinSpheres(sampler)...)

	camera := newCamera(16.0/9.0, 1200, 50, skyBlue, 20, core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0))
	return world, camera
}

// perlinSpheres returns the ground and the sphere shared by the Perlin scenes
func perlinSpheres(sampler core.Sampler) []core.Hittable {
	ground := material.NewTexturedLambertian(material.NewNoiseTexture(material.NewPerlin(sampler), 4))
	ball := material.NewTexturedLambertian(material.NewNoiseTexture(material.NewPerlin(sampler), 4))
	return []core.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, ball),
	}
}
