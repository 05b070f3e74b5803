package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

var logger = log.New("scene")

// ErrUnknownScene is returned when a scene name is not in the catalogue
var ErrUnknownScene = errors.New("unknown scene")

// Scene is a world ready to render together with the camera it was designed for
type Scene struct {
	Name     string
	World    core.Hittable // BVH over the top-level objects
	Camera   *renderer.Camera
	BVHStats core.BVHStats
}

// buildFunc populates a world and returns it with its camera. Scenes with random
// content draw from sampler so that a seed reproduces them.
type buildFunc func(sampler core.Sampler) (*core.HittableList, *renderer.Camera)

// SceneInfo describes one entry of the scene catalogue
type SceneInfo struct {
	Name        string
	Description string
	build       buildFunc
}

// catalogue lists the built-in scenes in display order
var catalogue = []SceneInfo{
	{"random-spheres", "Ground of checkered spheres with hundreds of small moving, metal and glass spheres", NewRandomSpheres},
	{"two-spheres", "Two large checker-textured spheres", NewTwoSpheres},
	{"earth", "A globe with an image-mapped texture", NewEarth},
	{"perlin-spheres", "Ground and sphere with marble-like Perlin noise", NewPerlinSpheres},
	{"quads", "Five coloured quads facing the camera", NewQuads},
	{"simple-light", "Perlin spheres lit by an emissive quad and sphere", NewSimpleLight},
	{"cornell-box", "Classic Cornell box with two rotated blocks", NewCornellBox},
	{"cornell-smoke", "Cornell box whose blocks are made of smoke and fog", NewCornellSmoke},
	{"final-scene", "Everything at once: boxes, motion blur, glass, fog, noise, textures and instancing", NewFinalScene},
}

// List returns the scene catalogue
func List() []SceneInfo {
	scenes := make([]SceneInfo, len(catalogue))
	copy(scenes, catalogue)
	return scenes
}

// Names returns the names of all built-in scenes
func Names() []string {
	names := make([]string, len(catalogue))
	for i, info := range catalogue {
		names[i] = info.Name
	}
	return names
}

// Lookup finds a scene by name
func Lookup(name string) (SceneInfo, error) {
	for _, info := range catalogue {
		if info.Name == name {
			return info, nil
		}
	}
	return SceneInfo{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// New builds the named scene, using seed for any random content, and wraps its
// world in a BVH
func New(name string, seed int64) (*Scene, error) {
	info, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return info.Build(seed), nil
}

// Build constructs the scene
func (info SceneInfo) Build(seed int64) *Scene {
	world, camera := info.build(core.NewSeededSampler(seed))

	bvh := core.NewBVHFromList(world)
	stats := bvh.Stats()
	logger.Debugf("Scene %s: %d objects, BVH with %d nodes, %d leaves, max depth %d, avg depth %.1f",
		info.Name, world.Len(), stats.TotalNodes, stats.LeafNodes, stats.MaxDepth, stats.AvgDepth)

	return &Scene{
		Name:     info.Name,
		World:    bvh,
		Camera:   camera,
		BVHStats: stats,
	}
}

// newCamera returns a camera with the settings shared by most scenes
func newCamera(aspect float64, width, spp int, background core.Vec3, vfov float64, lookFrom, lookAt core.Vec3) *renderer.Camera {
	camera := renderer.NewCamera()
	camera.AspectRatio = aspect
	camera.ImageWidth = width
	camera.SamplesPerPixel = spp
	camera.MaxDepth = 50
	camera.Background = background
	camera.VFov = vfov
	camera.LookFrom = lookFrom
	camera.LookAt = lookAt
	camera.VUp = core.NewVec3(0, 1, 0)
	camera.DefocusAngle = 0
	camera.FocusDist = 10
	return camera
}

var skyBlue = core.NewVec3(0.7, 0.8, 1.0)
var black = core.NewVec3(0, 0, 0)
