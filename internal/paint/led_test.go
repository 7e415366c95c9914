package paint

import (
	"image/color"
	"testing"

	"matrix-editor/internal/matrix"
	"matrix-editor/pkg/geometry"
)

func TestDisplaySize(t *testing.T) {
	tests := []struct {
		name                         string
		rows, cols, pixelSize, pitch int
		wantW, wantH                 int
	}{
		{name: "32x64 at 12px 3 pitch", rows: 32, cols: 64, pixelSize: 12, pitch: 3, wantW: 957, wantH: 477},
		{name: "no pitch", rows: 8, cols: 8, pixelSize: 10, pitch: 0, wantW: 80, wantH: 80},
		{name: "single cell", rows: 1, cols: 1, pixelSize: 12, pitch: 3, wantW: 12, wantH: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := DisplaySize(tt.rows, tt.cols, tt.pixelSize, tt.pitch)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("DisplaySize() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestLEDsCellCenters(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	g, err := matrix.NewGrid(2, 3, red)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}

	img := LEDs(g, 10, 2)
	if img.Bounds().Dx() != 34 || img.Bounds().Dy() != 22 {
		t.Fatalf("image size = %dx%d, want 34x22", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// Disc centers carry the cell color.
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			x := col*12 + 5
			y := row*12 + 5
			if got := img.RGBAAt(x, y); got != red {
				t.Errorf("disc center (%d, %d) = %+v, want %+v", x, y, got, red)
			}
		}
	}

	// The gap between discs is bezel, not LED color.
	if got := img.RGBAAt(10, 5); got == red {
		t.Error("pitch gap painted with LED color")
	}
}

func TestOutlineRectClipped(t *testing.T) {
	g, _ := matrix.NewGrid(2, 2, color.RGBA{A: 255})
	img := LEDs(g, 10, 0)

	c := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	// Hangs off the top-left; only the bottom and right edges land on
	// the image.
	OutlineRect(img, geometry.NewRectInt(-3, -3, 10, 10), c)

	if got := img.RGBAAt(0, 6); got != c {
		t.Errorf("clipped bottom edge = %+v, want %+v", got, c)
	}
	if got := img.RGBAAt(6, 0); got != c {
		t.Errorf("clipped right edge = %+v, want %+v", got, c)
	}

	// Entirely off-image must be a no-op, not a panic.
	OutlineRect(img, geometry.NewRectInt(-50, -50, 10, 10), c)
}
