package writers

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// WritePPM writes the frame as a plain-text PPM: a P3 header, the dimensions,
// the maximum channel value 255, then one "r g b" triple per line
func WritePPM(w io.Writer, frame *renderer.Frame) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", frame.Width, frame.Height)
	for _, p := range frame.Pixels {
		fmt.Fprintf(bw, "%d %d %d\n", p.R, p.G, p.B)
	}
	return bw.Flush()
}

// WritePNG writes the frame as a PNG image
func WritePNG(w io.Writer, frame *renderer.Frame) error {
	return png.Encode(w, frame.Image())
}

// WriteFile writes the frame to path, choosing PNG or PPM from the extension.
// A path of "-" writes PPM to stdout.
func WriteFile(path string, frame *renderer.Frame) error {
	if path == "-" {
		return WritePPM(os.Stdout, frame)
	}

	var write func(io.Writer, *renderer.Frame) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		write = WritePNG
	case ".ppm":
		write = WritePPM
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(file, frame); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}
