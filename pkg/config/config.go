package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for config files that are neither TOML nor YAML
var ErrUnsupportedFormat = errors.New("unsupported config format")

// File is a render configuration file. Every field is optional; only fields
// present in the file override the scene's settings.
type File struct {
	Scene  *string       `toml:"scene" yaml:"scene"`
	Output *string       `toml:"output" yaml:"output"`
	Camera CameraSection `toml:"camera" yaml:"camera"`
	Render RenderSection `toml:"render" yaml:"render"`
}

// CameraSection mirrors the public Camera fields
type CameraSection struct {
	AspectRatio     *float64    `toml:"aspect_ratio" yaml:"aspect_ratio"`
	ImageWidth      *int        `toml:"image_width" yaml:"image_width"`
	SamplesPerPixel *int        `toml:"samples_per_pixel" yaml:"samples_per_pixel"`
	MaxDepth        *int        `toml:"max_depth" yaml:"max_depth"`
	Background      *[3]float64 `toml:"background" yaml:"background"`
	VFov            *float64    `toml:"vfov" yaml:"vfov"`
	LookFrom        *[3]float64 `toml:"lookfrom" yaml:"lookfrom"`
	LookAt          *[3]float64 `toml:"lookat" yaml:"lookat"`
	VUp             *[3]float64 `toml:"vup" yaml:"vup"`
	DefocusAngle    *float64    `toml:"defocus_angle" yaml:"defocus_angle"`
	FocusDist       *float64    `toml:"focus_dist" yaml:"focus_dist"`
}

// RenderSection mirrors renderer.RenderConfig
type RenderSection struct {
	Workers  *int   `toml:"workers" yaml:"workers"`
	TileSize *int   `toml:"tile_size" yaml:"tile_size"`
	Seed     *int64 `toml:"seed" yaml:"seed"`
}

// Load reads a config file, choosing the format from its extension
// (.toml, .yaml or .yml). Unknown keys are rejected.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var file File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		// An empty document leaves every field unset
		if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config %s: %w %q", path, ErrUnsupportedFormat, ext)
	}

	return &file, nil
}

// Apply overwrites the camera fields that are set in the file
func (f *File) Apply(camera *renderer.Camera) {
	c := f.Camera
	setFloat(&camera.AspectRatio, c.AspectRatio)
	setInt(&camera.ImageWidth, c.ImageWidth)
	setInt(&camera.SamplesPerPixel, c.SamplesPerPixel)
	setInt(&camera.MaxDepth, c.MaxDepth)
	setVec(&camera.Background, c.Background)
	setFloat(&camera.VFov, c.VFov)
	setVec(&camera.LookFrom, c.LookFrom)
	setVec(&camera.LookAt, c.LookAt)
	setVec(&camera.VUp, c.VUp)
	setFloat(&camera.DefocusAngle, c.DefocusAngle)
	setFloat(&camera.FocusDist, c.FocusDist)
}

// ApplyRender overwrites the render settings that are set in the file
func (f *File) ApplyRender(config *renderer.RenderConfig) {
	setInt(&config.NumWorkers, f.Render.Workers)
	setInt(&config.TileSize, f.Render.TileSize)
	if f.Render.Seed != nil {
		config.Seed = *f.Render.Seed
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setVec(dst *core.Vec3, src *[3]float64) {
	if src != nil {
		*dst = core.NewVec3(src[0], src[1], src[2])
	}
}
