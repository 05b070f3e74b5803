package renderer

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// testWorld is a small scene exercising diffuse, metal and glass scattering
func testWorld() core.Hittable {
	world := core.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)),
	)
	return core.NewBVHFromList(world)
}

func testCamera() *Camera {
	camera := NewCamera()
	camera.ImageWidth = 24
	camera.AspectRatio = 1.5
	camera.SamplesPerPixel = 2
	camera.MaxDepth = 5
	camera.LookFrom = core.NewVec3(0, 0, 0)
	camera.LookAt = core.NewVec3(0, 0, -1)
	camera.Background = core.NewVec3(0.7, 0.8, 1.0)
	return camera
}

func TestRenderIsDeterministic(t *testing.T) {
	world := testWorld()
	config := RenderConfig{NumWorkers: 2, TileSize: 8, Seed: 7}

	first, _ := Render(testCamera(), world, config)
	second, _ := Render(testCamera(), world, config)

	if len(first.Pixels) != len(second.Pixels) {
		t.Fatalf("Expected equal frame sizes, got %d and %d", len(first.Pixels), len(second.Pixels))
	}
	for i := range first.Pixels {
		if first.Pixels[i] != second.Pixels[i] {
			t.Fatalf("Expected identical output, pixel %d differs: %v vs %v", i, first.Pixels[i], second.Pixels[i])
		}
	}
}

func TestRenderIndependentOfWorkerCount(t *testing.T) {
	world := testWorld()
	reference, _ := Render(testCamera(), world, RenderConfig{NumWorkers: 1, TileSize: 8, Seed: 3})

	for _, workers := range []int{2, 3, 8} {
		frame, stats := Render(testCamera(), world, RenderConfig{NumWorkers: workers, TileSize: 8, Seed: 3})
		if stats.NumWorkers != workers {
			t.Errorf("Expected %d workers, got %d", workers, stats.NumWorkers)
		}
		for i := range reference.Pixels {
			if frame.Pixels[i] != reference.Pixels[i] {
				t.Fatalf("Expected %d workers to match one worker, pixel %d differs", workers, i)
			}
		}
	}
}

func TestRenderSeedChangesOutput(t *testing.T) {
	world := testWorld()
	a, _ := Render(testCamera(), world, RenderConfig{NumWorkers: 2, TileSize: 8, Seed: 1})
	b, _ := Render(testCamera(), world, RenderConfig{NumWorkers: 2, TileSize: 8, Seed: 2})

	for i := range a.Pixels {
		if a.Pixels[i] != b.Pixels[i] {
			return
		}
	}
	t.Error("Expected different seeds to produce different noise")
}

func TestRenderBackgroundOnly(t *testing.T) {
	camera := testCamera()
	camera.Background = core.NewVec3(0.25, 0.5, 1.0)

	frame, stats := Render(camera, core.NewHittableList(), DefaultRenderConfig())

	if frame.Width != 24 || frame.Height != 16 {
		t.Fatalf("Expected 24x16 frame, got %dx%d", frame.Width, frame.Height)
	}
	expected := Tonemap(camera.Background)
	for i, p := range frame.Pixels {
		if p != expected {
			t.Fatalf("Expected background %v at pixel %d, got %v", expected, i, p)
		}
	}

	if stats.TotalPixels != 24*16 {
		t.Errorf("Expected %d pixels, got %d", 24*16, stats.TotalPixels)
	}
	if stats.TotalSamples != 24*16*2 {
		t.Errorf("Expected %d samples, got %d", 24*16*2, stats.TotalSamples)
	}
	if stats.NumTiles != 1 {
		t.Errorf("Expected a single tile, got %d", stats.NumTiles)
	}
}

// halfLitPixelError renders a single pixel whose footprint is half covered by a
// light and returns the squared error of its estimate against the exact 0.5
func halfLitPixelError(spp int, seed int64) float64 {
	camera := forwardCamera(1)
	camera.SamplesPerPixel = spp
	camera.Initialize()

	light := geometry.NewQuad(core.NewVec3(0, -5, -2), core.NewVec3(5, 0, 0), core.NewVec3(0, 10, 0),
		material.NewDiffuseLight(core.NewVec3(1, 1, 1)))
	tr := NewTileRenderer(camera, light, integrator.NewPathTracingIntegrator(camera.MaxDepth, camera.Background))

	stats := [][]PixelStats{make([]PixelStats, 1)}
	tr.RenderTileBounds(NewTileGrid(1, 1, 1, 0)[0].Bounds, stats, core.NewSeededSampler(seed))

	diff := stats[0][0].GetColor().X - 0.5
	return diff * diff
}

func TestRenderErrorShrinksWithSamples(t *testing.T) {
	const trials = 20
	var fewErr, manyErr float64
	for seed := int64(0); seed < trials; seed++ {
		fewErr += halfLitPixelError(4, seed)
		manyErr += halfLitPixelError(256, seed)
	}
	fewErr /= trials
	manyErr /= trials

	if manyErr >= fewErr {
		t.Errorf("Expected error to shrink with more samples, got %g at 4 spp and %g at 256 spp", fewErr, manyErr)
	}
	if manyErr > 0.01 {
		t.Errorf("Expected 256 spp estimate near 0.5, mean squared error %g", manyErr)
	}
}

func TestNewRaytracerDefaultsTileSize(t *testing.T) {
	rt := NewRaytracer(testCamera(), testWorld(), RenderConfig{TileSize: 0}, nil)
	if rt.config.TileSize != 32 {
		t.Errorf("Expected default tile size 32, got %d", rt.config.TileSize)
	}
}
