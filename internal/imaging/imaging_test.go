package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func solidImage(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestThumbnailPolicy(t *testing.T) {
	src := solidImage(40, 20, color.RGBA{R: 200, G: 10, B: 10, A: 255})

	tests := []struct {
		name             string
		width, height    int
		wantW, wantH     int
	}{
		{name: "both targets", width: 16, height: 8, wantW: 16, wantH: 8},
		{name: "both targets distorting", width: 10, height: 30, wantW: 10, wantH: 30},
		{name: "only width", width: 15, height: 0, wantW: 15, wantH: 15},
		{name: "only height", width: 0, height: 12, wantW: 12, wantH: 12},
		{name: "neither keeps native size", width: 0, height: 0, wantW: 40, wantH: 20},
		{name: "negative counts as unset", width: -3, height: -1, wantW: 40, wantH: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Thumbnail(src, tt.width, tt.height)
			b := got.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("Thumbnail() size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRaster(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	raster := Raster(solidImage(3, 2, red))

	want := [][]color.RGBA{
		{red, red, red},
		{red, red, red},
	}
	if diff := cmp.Diff(want, raster); diff != "" {
		t.Errorf("Raster() mismatch (-want +got):\n%s", diff)
	}
}

func TestRasterOffsetBounds(t *testing.T) {
	// Decoders may produce images whose bounds do not start at the
	// origin; the raster must still index from (0, 0).
	img := image.NewRGBA(image.Rect(5, 7, 8, 9))
	c := color.RGBA{G: 128, A: 255}
	for y := 7; y < 9; y++ {
		for x := 5; x < 8; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	sub := img.SubImage(image.Rect(5, 7, 8, 9))
	raster := Raster(sub)
	if len(raster) != 2 || len(raster[0]) != 3 {
		t.Fatalf("Raster() size = %dx%d, want 2x3", len(raster), len(raster[0]))
	}
	if raster[0][0] != c {
		t.Errorf("Raster()[0][0] = %+v, want %+v", raster[0][0], c)
	}
}

func TestIsSupportedFormat(t *testing.T) {
	supported := []string{"icon.png", "photo.JPG", "scan.tiff", "art.svg", "img.bmp"}
	for _, path := range supported {
		if !IsSupportedFormat(path) {
			t.Errorf("IsSupportedFormat(%q) = false, want true", path)
		}
	}
	unsupported := []string{"doc.pdf", "noext", "font.ttf"}
	for _, path := range unsupported {
		if IsSupportedFormat(path) {
			t.Errorf("IsSupportedFormat(%q) = true, want false", path)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("no-such-file.png"); err == nil {
		t.Error("Load() on a missing file did not fail")
	}
}
