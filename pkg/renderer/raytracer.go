package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
)

// RenderConfig controls how a render is split across workers
type RenderConfig struct {
	NumWorkers int   // Parallel workers; 0 uses one per CPU
	TileSize   int   // Edge length of the square tiles the image is split into
	Seed       int64 // Base seed; tile n draws from a generator seeded with Seed+n
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers: 0,
		TileSize:   32,
		Seed:       42,
	}
}

// Raytracer renders a world through a camera into a Frame
type Raytracer struct {
	camera *Camera
	world  core.Hittable
	config RenderConfig
	logger log.Logger
}

// NewRaytracer creates a new raytracer. A nil logger uses the package logger.
func NewRaytracer(camera *Camera, world core.Hittable, config RenderConfig, logger log.Logger) *Raytracer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	if logger == nil {
		logger = log.New("renderer")
	}
	return &Raytracer{
		camera: camera,
		world:  world,
		config: config,
		logger: logger,
	}
}

// Render initializes the camera and renders the whole image. The output depends only
// on the camera, the world and the seed, never on the number of workers.
func (rt *Raytracer) Render() (*Frame, RenderStats) {
	start := time.Now()

	rt.camera.Initialize()
	width, height := rt.camera.ImageWidth, rt.camera.ImageHeight()

	pixelStats := make([][]PixelStats, height)
	for j := range pixelStats {
		pixelStats[j] = make([]PixelStats, width)
	}

	tiles := NewTileGrid(width, height, rt.config.TileSize, rt.config.Seed)
	tileRenderer := NewTileRenderer(rt.camera, rt.world,
		integrator.NewPathTracingIntegrator(rt.camera.MaxDepth, rt.camera.Background))

	pool := NewWorkerPool(tileRenderer, len(tiles), rt.config.NumWorkers)
	rt.logger.Infof("Rendering %dx%d at %d spp, depth %d: %d tiles on %d workers",
		width, height, rt.camera.SamplesPerPixel, rt.camera.MaxDepth, len(tiles), pool.GetNumWorkers())

	pool.Start()
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{
			Tile:       tile,
			TaskID:     i,
			PixelStats: pixelStats,
		})
	}

	stats := RenderStats{
		Width:           width,
		Height:          height,
		TotalPixels:     width * height,
		SamplesPerPixel: rt.camera.SamplesPerPixel,
		NumWorkers:      pool.GetNumWorkers(),
		NumTiles:        len(tiles),
	}

	// Collect one result per tile, then shut the pool down
	for completed := 0; completed < len(tiles); completed++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.TotalSamples += result.Samples
		if log.Enabled(log.Debug) {
			rt.logger.Debugf("Tile %d done (%d/%d)", result.TileID, completed+1, len(tiles))
		}
	}
	pool.Stop()

	frame := NewFrame(width, height)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			frame.Set(i, j, Tonemap(pixelStats[j][i].GetColor()))
		}
	}

	stats.Duration = time.Since(start)
	rt.logger.Infof("Render finished in %v (%.0f samples/s)", stats.Duration, stats.SamplesPerSecond())

	return frame, stats
}

// Render renders world through camera with the given config
func Render(camera *Camera, world core.Hittable, config RenderConfig) (*Frame, RenderStats) {
	return NewRaytracer(camera, world, config, nil).Render()
}
