package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Camera holds the tunable render parameters and the viewing geometry derived from them.
// Set the public fields, then call Initialize once before generating rays.
type Camera struct {
	AspectRatio     float64   // Ratio of image width over height
	ImageWidth      int       // Rendered image width in pixel count
	SamplesPerPixel int       // Count of random samples for each pixel
	MaxDepth        int       // Maximum number of ray bounces into scene
	Background      core.Vec3 // Scene background color

	VFov     float64   // Vertical view angle (field of view) in degrees
	LookFrom core.Vec3 // Point camera is looking from
	LookAt   core.Vec3 // Point camera is looking at
	VUp      core.Vec3 // Camera-relative "up" direction

	DefocusAngle float64 // Variation angle of rays through each pixel, in degrees
	FocusDist    float64 // Distance from LookFrom to the plane of perfect focus

	initialized       bool
	imageHeight       int
	center            core.Vec3 // Camera center
	pixel00           core.Vec3 // Location of pixel 0, 0
	pixelDeltaU       core.Vec3 // Offset to pixel to the right
	pixelDeltaV       core.Vec3 // Offset to pixel below
	u, v, w           core.Vec3 // Camera frame basis vectors
	defocusDiskU      core.Vec3 // Defocus disk horizontal radius
	defocusDiskV      core.Vec3 // Defocus disk vertical radius
	defocusDiskRadius float64
}

// NewCamera creates a camera with default settings
func NewCamera() *Camera {
	return &Camera{
		AspectRatio:     1.0,
		ImageWidth:      100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		Background:      core.NewVec3(0, 0, 0),
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, -1),
		LookAt:          core.NewVec3(0, 0, 0),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       10,
	}
}

// Initialize derives the camera frame, viewport and defocus disk from the public fields.
// It panics when the settings cannot describe a camera.
func (c *Camera) Initialize() {
	if c.ImageWidth <= 0 {
		panic("renderer: image width must be positive")
	}
	if c.AspectRatio <= 0 || math.IsNaN(c.AspectRatio) || math.IsInf(c.AspectRatio, 0) {
		panic("renderer: aspect ratio must be positive and finite")
	}
	if c.SamplesPerPixel <= 0 {
		panic("renderer: samples per pixel must be positive")
	}
	if c.MaxDepth <= 0 {
		panic("renderer: max depth must be positive")
	}

	c.imageHeight = max(1, int(float64(c.ImageWidth)/c.AspectRatio))
	c.center = c.LookFrom

	// Determine viewport dimensions
	theta := core.DegreesToRadians(c.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * c.FocusDist
	viewportWidth := viewportHeight * (float64(c.ImageWidth) / float64(c.imageHeight))

	// Calculate the u,v,w unit basis vectors for the camera coordinate frame
	view := c.LookFrom.Subtract(c.LookAt)
	if view.NearZero() {
		panic("renderer: degenerate camera basis: look-from and look-at coincide")
	}
	c.w = view.Normalize()
	side := c.VUp.Cross(c.w)
	if side.NearZero() {
		panic("renderer: degenerate camera basis: up vector is parallel to the view direction")
	}
	c.u = side.Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	// Horizontal and vertical delta vectors from pixel to pixel
	c.pixelDeltaU = viewportU.Divide(float64(c.ImageWidth))
	c.pixelDeltaV = viewportV.Divide(float64(c.imageHeight))

	// Location of the upper left pixel
	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(c.FocusDist)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00 = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	// Camera defocus disk basis vectors
	c.defocusDiskRadius = c.FocusDist * math.Tan(core.DegreesToRadians(c.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(c.defocusDiskRadius)
	c.defocusDiskV = c.v.Multiply(c.defocusDiskRadius)

	c.initialized = true
}

// ImageHeight returns the derived image height. Valid after Initialize.
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// Basis returns the camera frame: u points right, v up, w backwards from the view direction
func (c *Camera) Basis() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}

// GetRay constructs a camera ray originating from the defocus disk and directed at a randomly
// sampled point around the pixel location i, j. The ray time is uniform in [0, 1).
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	if !c.initialized {
		panic("renderer: camera used before Initialize")
	}

	offset := sampler.Get2D()
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y - 0.5))

	origin := c.center
	if c.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRayWithTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// defocusDiskSample returns a random point in the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.SamplePointInUnitDisk(sampler.Get2D())
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
