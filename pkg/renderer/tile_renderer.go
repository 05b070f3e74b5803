package renderer

import (
	"image"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// TileRenderer renders rectangular pixel regions with an integrator.
// It holds no mutable state and may be shared by all workers.
type TileRenderer struct {
	camera     *Camera
	world      core.Hittable
	integrator integrator.Integrator
}

// NewTileRenderer creates a new tile renderer for an initialized camera
func NewTileRenderer(camera *Camera, world core.Hittable, integratorInst integrator.Integrator) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		world:      world,
		integrator: integratorInst,
	}
}

// RenderTile renders a tile with a sampler drawn from the tile's own generator
func (tr *TileRenderer) RenderTile(tile *Tile, pixelStats [][]PixelStats) int {
	return tr.RenderTileBounds(tile.Bounds, pixelStats, core.NewRandomSampler(tile.Random))
}

// RenderTileBounds takes SamplesPerPixel samples for every pixel within bounds and
// returns the number of samples taken. Pixels are visited in row-major order.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixelStats [][]PixelStats, sampler core.Sampler) int {
	samples := 0
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			samples += tr.samplePixel(i, j, &pixelStats[j][i], sampler)
		}
	}
	return samples
}

// samplePixel accumulates the configured number of samples for pixel i, j
func (tr *TileRenderer) samplePixel(i, j int, ps *PixelStats, sampler core.Sampler) int {
	for s := 0; s < tr.camera.SamplesPerPixel; s++ {
		ray := tr.camera.GetRay(i, j, sampler)
		ps.AddSample(tr.integrator.RayColor(ray, tr.world, sampler))
	}
	return tr.camera.SamplesPerPixel
}
