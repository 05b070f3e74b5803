package renderer

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

func TestWorkerPoolRendersEveryTile(t *testing.T) {
	camera := testCamera()
	camera.SamplesPerPixel = 1
	camera.Initialize()
	width, height := camera.ImageWidth, camera.ImageHeight()

	pixelStats := make([][]PixelStats, height)
	for j := range pixelStats {
		pixelStats[j] = make([]PixelStats, width)
	}

	tiles := NewTileGrid(width, height, 5, 0)
	tr := NewTileRenderer(camera, core.NewHittableList(), integrator.NewPathTracingIntegrator(camera.MaxDepth, camera.Background))
	pool := NewWorkerPool(tr, len(tiles), 3)
	if pool.GetNumWorkers() != 3 {
		t.Fatalf("Expected 3 workers, got %d", pool.GetNumWorkers())
	}

	pool.Start()
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, PixelStats: pixelStats})
	}

	seen := make(map[int]bool)
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			t.Fatal("Expected a result for every tile")
		}
		if seen[result.TaskID] {
			t.Errorf("Task %d reported twice", result.TaskID)
		}
		seen[result.TaskID] = true

		bounds := tiles[result.TileID].Bounds
		if result.Samples != bounds.Dx()*bounds.Dy() {
			t.Errorf("Expected %d samples for tile %d, got %d", bounds.Dx()*bounds.Dy(), result.TileID, result.Samples)
		}
	}
	pool.Stop()

	for j := range pixelStats {
		for i := range pixelStats[j] {
			if pixelStats[j][i].SampleCount != 1 {
				t.Fatalf("Expected pixel (%d,%d) sampled once, got %d", i, j, pixelStats[j][i].SampleCount)
			}
		}
	}
}

func TestWorkerPoolDefaultsToCPUCount(t *testing.T) {
	pool := NewWorkerPool(nil, 1, 0)
	if pool.GetNumWorkers() <= 0 {
		t.Errorf("Expected a positive default worker count, got %d", pool.GetNumWorkers())
	}
}
