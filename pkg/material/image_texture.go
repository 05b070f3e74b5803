package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/log"
)

// missingTextureColor marks surfaces whose image could not be loaded
var missingTextureColor = core.NewVec3(1, 0, 1)

var logger = log.New("material")

// ImageTexture provides color from a decoded raster by nearest-pixel lookup
type ImageTexture struct {
	Image *loaders.ImageData // nil when the asset failed to load
}

// NewImageTexture creates a new image texture from decoded image data
func NewImageTexture(image *loaders.ImageData) *ImageTexture {
	return &ImageTexture{Image: image}
}

// NewImageTextureFromFile loads an image asset. A missing or corrupt asset is logged
// and the texture renders as solid magenta instead of failing the render.
func NewImageTextureFromFile(filename string) *ImageTexture {
	image, err := loaders.LoadImage(filename)
	if err != nil {
		logger.Warningf("could not load image %q, using placeholder color: %v", filename, err)
		return NewImageTexture(nil)
	}
	return NewImageTexture(image)
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Image == nil || t.Image.Height <= 0 {
		return missingTextureColor
	}

	// Clamp input texture coordinates to [0,1] x [1,0]
	unit := core.NewInterval(0, 1)
	u := unit.Clamp(uv.X)
	v := 1.0 - unit.Clamp(uv.Y) // Flip V to image coordinates

	i := int(u * float64(t.Image.Width))
	j := int(v * float64(t.Image.Height))
	pixel := t.Image.PixelData(i, j)

	const colorScale = 1.0 / 255.0
	return core.NewVec3(
		colorScale*float64(pixel[0]),
		colorScale*float64(pixel[1]),
		colorScale*float64(pixel[2]),
	)
}
