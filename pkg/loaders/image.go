package loaders

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // BMP decoder
	"golang.org/x/image/draw"   // Resampling and pixel format conversion
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

const (
	// BytesPerPixel is the stride of one pixel in ImageData.Data
	BytesPerPixel = 3

	// MaxTextureSize bounds the longer side of a loaded image; larger images are downscaled
	MaxTextureSize = 4096

	// ImageDirEnv names a directory searched first for image assets
	ImageDirEnv = "RTW_IMAGES"

	// maxParentSearch is how many parent directories FindImage climbs
	maxParentSearch = 6
)

var (
	// ErrImageNotFound is returned when no candidate path for an image exists
	ErrImageNotFound = errors.New("image not found")
	// ErrEmptyImage is returned for images with no pixels
	ErrEmptyImage = errors.New("image has no pixels")
)

// ImageData is a decoded raster: row-major RGB bytes, top row first
type ImageData struct {
	Width  int
	Height int
	Data   []byte // len = Width * Height * BytesPerPixel
}

// PixelData returns the RGB bytes of pixel (x, y), clamped to the image bounds
func (img *ImageData) PixelData(x, y int) []byte {
	x = clampIndex(x, img.Width)
	y = clampIndex(y, img.Height)
	offset := (y*img.Width + x) * BytesPerPixel
	return img.Data[offset : offset+BytesPerPixel]
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// FindImage resolves an asset name to an existing file. It tries the directory named by
// RTW_IMAGES, then the name itself, then the name under up to six parent directories.
func FindImage(filename string) (string, error) {
	candidates := make([]string, 0, maxParentSearch+2)
	if dir := os.Getenv(ImageDirEnv); dir != "" {
		candidates = append(candidates, filepath.Join(dir, filename))
	}
	candidates = append(candidates, filename)

	prefix := ""
	for i := 0; i < maxParentSearch; i++ {
		prefix = filepath.Join(prefix, "..")
		candidates = append(candidates, filepath.Join(prefix, filename))
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrImageNotFound, filename)
}

// LoadImage locates and decodes an image into 8-bit RGB. PNG, JPEG, GIF, BMP, TIFF and
// WebP are supported; alpha is discarded.
func LoadImage(filename string) (*ImageData, error) {
	path, err := FindImage(filename)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (format detected from the file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return FromImage(img)
}

// FromImage converts any decoded image into 8-bit RGB, downscaling it when
// its longer side exceeds MaxTextureSize
func FromImage(img image.Image) (*ImageData, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyImage
	}

	width, height := fitTextureSize(bounds.Dx(), bounds.Dy())
	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	if width == bounds.Dx() && height == bounds.Dy() {
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(nrgba, nrgba.Bounds(), img, bounds, draw.Src, nil)
	}

	data := make([]byte, width*height*BytesPerPixel)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src := nrgba.PixOffset(x, y)
			dst := (y*width + x) * BytesPerPixel
			copy(data[dst:dst+BytesPerPixel], nrgba.Pix[src:src+BytesPerPixel])
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Data:   data,
	}, nil
}

// fitTextureSize scales dimensions down, preserving aspect, so neither exceeds MaxTextureSize
func fitTextureSize(width, height int) (int, int) {
	longest := max(width, height)
	if longest <= MaxTextureSize {
		return width, height
	}
	scale := float64(MaxTextureSize) / float64(longest)
	return max(1, int(float64(width)*scale)), max(1, int(float64(height)*scale))
}
