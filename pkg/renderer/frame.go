package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RGB is an 8-bit per channel pixel
type RGB struct {
	R, G, B uint8
}

// Frame is a rendered image: one RGB triple per pixel in row-major order, top row first
type Frame struct {
	Width  int
	Height int
	Pixels []RGB
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]RGB, width*height),
	}
}

// At returns the pixel at column x, row y
func (f *Frame) At(x, y int) RGB {
	return f.Pixels[y*f.Width+x]
}

// Set stores the pixel at column x, row y
func (f *Frame) Set(x, y int, pixel RGB) {
	f.Pixels[y*f.Width+x] = pixel
}

// Image converts the frame to an opaque image.RGBA
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			p := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}

// intensity is the closed range channel values are clamped to before quantization
var intensity = core.NewInterval(0.000, 0.999)

// Tonemap converts a linear color to 8-bit channels with gamma 2 and clamping
func Tonemap(c core.Vec3) RGB {
	return RGB{
		R: toByte(c.X),
		G: toByte(c.Y),
		B: toByte(c.Z),
	}
}

// toByte gamma-corrects one linear channel and quantizes it. NaN and negative values map to 0.
func toByte(linear float64) uint8 {
	gamma := 0.0
	if linear > 0 {
		gamma = math.Sqrt(linear)
	}
	return uint8(256 * intensity.Clamp(gamma))
}
