package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"time"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/df07/go-pathtracer/pkg/watcher"
	"github.com/df07/go-pathtracer/pkg/writers"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const (
	defaultScene   = "random-spheres"
	watchDebounce  = 250 * time.Millisecond
	outputDirName  = "output"
	stdoutFileName = "-"
)

// renderOptions holds the render command flags
type renderOptions struct {
	scene      string
	out        string
	configPath string
	width      int
	spp        int
	depth      int
	workers    int
	tileSize   int
	seed       int64
	watch      bool
}

// renderJob is a fully resolved render: scene, camera overrides and output
type renderJob struct {
	scene  *scene.Scene
	config renderer.RenderConfig
	out    string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}
	defaults := renderer.DefaultRenderConfig()

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene to a PPM or PNG file",
		Long: `Render a built-in scene. Settings are resolved in order: the scene's own
camera, then the config file (--config), then command line flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.scene, "scene", defaultScene, "scene to render (see 'scenes')")
	flags.StringVarP(&opts.out, "out", "o", "", "output file (.ppm or .png); '-' writes PPM to stdout")
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML or YAML render configuration file")
	flags.IntVar(&opts.width, "width", 0, "image width in pixels")
	flags.IntVar(&opts.spp, "spp", 0, "samples per pixel")
	flags.IntVar(&opts.depth, "depth", 0, "maximum ray bounce depth")
	flags.IntVar(&opts.workers, "workers", defaults.NumWorkers, "parallel workers (0 = one per CPU)")
	flags.IntVar(&opts.tileSize, "tile-size", defaults.TileSize, "tile edge length in pixels")
	flags.Int64Var(&opts.seed, "seed", defaults.Seed, "random seed")
	flags.BoolVar(&opts.watch, "watch", false, "re-render whenever the config file changes")

	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	if opts.watch && opts.configPath == "" {
		return errors.New("--watch requires --config")
	}

	if err := renderOnce(cmd, opts); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return watchConfig(ctx, cmd, opts)
}

// watchConfig re-renders on every change to the config file until ctx is done.
// A failed re-render is logged and the previous output is kept.
func watchConfig(ctx context.Context, cmd *cobra.Command, opts *renderOptions) error {
	fw, err := watcher.NewFileWatcher(watchDebounce)
	if err != nil {
		return err
	}
	defer fw.Close()

	var mu sync.Mutex
	err = fw.Watch([]string{opts.configPath}, func(path string) {
		mu.Lock()
		defer mu.Unlock()

		logger.Noticef("%s changed, re-rendering", path)
		if err := renderOnce(cmd, opts); err != nil {
			logger.Errorf("Render failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	fw.Start()

	logger.Noticef("Watching %s, press Ctrl+C to stop", opts.configPath)
	<-ctx.Done()
	return nil
}

// renderOnce resolves the job, renders it and writes the image
func renderOnce(cmd *cobra.Command, opts *renderOptions) error {
	job, err := resolveJob(cmd, opts)
	if err != nil {
		return err
	}

	frame, stats := renderer.Render(job.scene.Camera, job.scene.World, job.config)

	if err := writers.WriteFile(job.out, frame); err != nil {
		return err
	}
	if job.out != stdoutFileName {
		logger.Noticef("Saved %s", job.out)
	}

	displayRenderStats(job.scene.Name, stats)
	return nil
}

// resolveJob applies the config file and then any flags set on the command line
func resolveJob(cmd *cobra.Command, opts *renderOptions) (*renderJob, error) {
	flags := cmd.Flags()

	var file *config.File
	if opts.configPath != "" {
		var err error
		if file, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}

	sceneName := opts.scene
	if !flags.Changed("scene") && file != nil && file.Scene != nil {
		sceneName = *file.Scene
	}

	renderConfig := renderer.DefaultRenderConfig()
	if file != nil {
		file.ApplyRender(&renderConfig)
	}
	if flags.Changed("workers") {
		renderConfig.NumWorkers = opts.workers
	}
	if flags.Changed("tile-size") {
		renderConfig.TileSize = opts.tileSize
	}
	if flags.Changed("seed") {
		renderConfig.Seed = opts.seed
	}

	// The seed also drives random scene content
	s, err := scene.New(sceneName, renderConfig.Seed)
	if err != nil {
		return nil, err
	}

	if file != nil {
		file.Apply(s.Camera)
	}
	if flags.Changed("width") {
		s.Camera.ImageWidth = opts.width
	}
	if flags.Changed("spp") {
		s.Camera.SamplesPerPixel = opts.spp
	}
	if flags.Changed("depth") {
		s.Camera.MaxDepth = opts.depth
	}

	if err := validateCamera(s.Camera); err != nil {
		return nil, err
	}

	out := opts.out
	if !flags.Changed("out") {
		if file != nil && file.Output != nil {
			out = *file.Output
		} else {
			out = filepath.Join(outputDirName, sceneName+".png")
		}
	}

	return &renderJob{scene: s, config: renderConfig, out: out}, nil
}

// validateCamera reports settings the camera would reject, so bad flags and
// config values surface as errors rather than panics
func validateCamera(camera *renderer.Camera) error {
	switch {
	case camera.ImageWidth <= 0:
		return fmt.Errorf("image width must be positive, got %d", camera.ImageWidth)
	case camera.SamplesPerPixel <= 0:
		return fmt.Errorf("samples per pixel must be positive, got %d", camera.SamplesPerPixel)
	case camera.MaxDepth <= 0:
		return fmt.Errorf("max depth must be positive, got %d", camera.MaxDepth)
	case camera.AspectRatio <= 0 || math.IsNaN(camera.AspectRatio) || math.IsInf(camera.AspectRatio, 0):
		return fmt.Errorf("aspect ratio must be positive and finite, got %g", camera.AspectRatio)
	case camera.LookFrom.Subtract(camera.LookAt).NearZero():
		return errors.New("look-from and look-at must differ")
	case camera.VUp.Cross(camera.LookFrom.Subtract(camera.LookAt)).NearZero():
		return errors.New("up vector must not be parallel to the view direction")
	}
	return nil
}

func displayRenderStats(sceneName string, stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Resolution", "Samples/pixel", "Tiles", "Workers", "Samples/sec", "Render time"})
	table.Append([]string{
		sceneName,
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.NumTiles),
		fmt.Sprintf("%d", stats.NumWorkers),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
		stats.Duration.Round(time.Millisecond).String(),
	})
	table.SetFooter([]string{"", "", "", "", "", "TOTAL SAMPLES", fmt.Sprintf("%d", stats.TotalSamples)})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
