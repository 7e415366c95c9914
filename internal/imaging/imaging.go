// Package imaging loads and scales raster sources for image elements.
package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Load reads an image file and decodes it. SVG sources are rasterized
// at their native view-box size; everything else goes through the
// registered raster decoders.
func Load(path string) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return LoadSVG(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// LoadSVG rasterizes an SVG file into an RGBA image sized to its
// view box.
func LoadSVG(path string) (image.Image, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg %s: %w", path, err)
	}

	w := int(icon.ViewBox.W)
	h := int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("svg %s has no usable view box", path)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return rgba, nil
}

// Thumbnail scales an image per the element sizing policy: both
// targets given scales to exactly width×height (distortion allowed),
// one target given scales to a square of that value, neither given
// returns the image unchanged. Zero or negative targets count as not
// given.
func Thumbnail(img image.Image, width, height int) image.Image {
	switch {
	case width > 0 && height > 0:
		// keep both
	case width > 0:
		height = width
	case height > 0:
		width = height
	default:
		return img
	}
	return transform.Resize(img, width, height, transform.Lanczos)
}

// Raster converts a decoded image into a rows×cols grid of RGBA
// values. Source alpha is preserved in the color value; it does not
// make cells transparent.
func Raster(img image.Image) [][]color.RGBA {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || bounds.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	rows := rgba.Bounds().Dy()
	cols := rgba.Bounds().Dx()
	out := make([][]color.RGBA, rows)
	for y := 0; y < rows; y++ {
		out[y] = make([]color.RGBA, cols)
		for x := 0; x < cols; x++ {
			out[y][x] = rgba.RGBAAt(x, y)
		}
	}
	return out
}

// SupportedFormats returns the file extensions the loader accepts.
func SupportedFormats() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".tif", ".svg"}
}

// IsSupportedFormat checks if the given path has a supported extension.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}
