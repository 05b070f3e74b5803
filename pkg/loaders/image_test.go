package loaders

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
}

// TestLoadImage creates a test PNG and verifies loading
func TestLoadImage(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.png")

	// Create a simple 2x2 test image
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}) // Top-left: white
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})     // Top-right: red
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})     // Bottom-left: green
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})     // Bottom-right: blue
	writePNG(t, testFile, img)

	imageData, err := LoadImage(testFile)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	if imageData.Width != 2 || imageData.Height != 2 {
		t.Errorf("Expected 2x2 image, got %dx%d", imageData.Width, imageData.Height)
	}
	if len(imageData.Data) != 2*2*BytesPerPixel {
		t.Errorf("Expected %d bytes, got %d", 2*2*BytesPerPixel, len(imageData.Data))
	}

	tests := []struct {
		name     string
		x, y     int
		expected [3]byte
	}{
		{"Top-left (white)", 0, 0, [3]byte{255, 255, 255}},
		{"Top-right (red)", 1, 0, [3]byte{255, 0, 0}},
		{"Bottom-left (green)", 0, 1, [3]byte{0, 255, 0}},
		{"Bottom-right (blue)", 1, 1, [3]byte{0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := imageData.PixelData(tt.x, tt.y)
			if got[0] != tt.expected[0] || got[1] != tt.expected[1] || got[2] != tt.expected[2] {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPixelData_ClampsCoordinates(t *testing.T) {
	data := &ImageData{Width: 2, Height: 1, Data: []byte{1, 2, 3, 4, 5, 6}}

	if got := data.PixelData(-3, 0); got[0] != 1 {
		t.Errorf("Expected left pixel for negative x, got %v", got)
	}
	if got := data.PixelData(7, 9); got[0] != 4 {
		t.Errorf("Expected right pixel for out-of-range x, got %v", got)
	}
}

// TestLoadImageNotFound verifies error handling for missing files
func TestLoadImageNotFound(t *testing.T) {
	_, err := LoadImage("nonexistent-texture-asset.png")
	if !errors.Is(err, ErrImageNotFound) {
		t.Errorf("Expected ErrImageNotFound, got %v", err)
	}
}

func TestLoadImageCorrupt(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "corrupt.png")
	if err := os.WriteFile(testFile, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadImage(testFile); err == nil {
		t.Error("Expected decode error for corrupt file, got nil")
	}
}

func TestFindImage_EnvironmentDirectory(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "earthmap.png"), image.NewRGBA(image.Rect(0, 0, 1, 1)))
	t.Setenv(ImageDirEnv, dir)

	path, err := FindImage("earthmap.png")
	if err != nil {
		t.Fatalf("FindImage failed: %v", err)
	}
	if path != filepath.Join(dir, "earthmap.png") {
		t.Errorf("Expected path inside %s, got %s", dir, path)
	}
}

func TestFindImage_ParentDirectories(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	writePNG(t, filepath.Join(root, "asset.png"), image.NewRGBA(image.Rect(0, 0, 1, 1)))

	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(nested); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldWd) })
	t.Setenv(ImageDirEnv, "")

	path, err := FindImage("asset.png")
	if err != nil {
		t.Fatalf("FindImage failed: %v", err)
	}
	if path != filepath.Join("..", "..", "..", "asset.png") {
		t.Errorf("Expected three levels up, got %s", path)
	}
}

func TestFromImage_Downscales(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, MaxTextureSize*2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < MaxTextureSize*2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}

	data, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if data.Width != MaxTextureSize || data.Height != 1 {
		t.Errorf("Expected %dx1 after downscaling, got %dx%d", MaxTextureSize, data.Width, data.Height)
	}
	if got := data.PixelData(10, 0); got[0] < 190 || got[0] > 210 {
		t.Errorf("Expected resampled value near 200, got %d", got[0])
	}
}

func TestFromImage_Empty(t *testing.T) {
	if _, err := FromImage(image.NewRGBA(image.Rect(0, 0, 0, 0))); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Expected ErrEmptyImage, got %v", err)
	}
}
