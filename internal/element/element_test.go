package element

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"matrix-editor/internal/glyph"
	"matrix-editor/pkg/geometry"
)

// fakeFont serves two-row-high glyphs with per-rune widths, for tests
// that need predictable shapes.
type fakeFont map[rune][]string

func (f fakeFont) Glyph(r rune) (glyph.Bitmap, error) {
	rows, ok := f[r]
	if !ok {
		return glyph.Bitmap{}, glyph.ErrNotFound
	}
	b := glyph.NewBitmap(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				b.Set(x, y)
			}
		}
	}
	return b, nil
}

func TestNewTextSize(t *testing.T) {
	font := fakeFont{
		'H': {"#.#", "###"},
		'i': {"#", "#"},
	}

	txt, err := NewText(3, 5, "Hi", font, color.RGBA{R: 255, G: 255, A: 255})
	if err != nil {
		t.Fatalf("NewText() error = %v", err)
	}

	want := geometry.NewRectInt(3, 5, 4, 2) // widths 3+1, max height 2
	if got := txt.MatrixBounds(); got != want {
		t.Errorf("MatrixBounds() = %+v, want %+v", got, want)
	}
}

func TestTextRender(t *testing.T) {
	yellow := color.RGBA{R: 255, G: 255, A: 255}
	font := fakeFont{
		'H': {"#.#", "###"},
		'i': {"#", "#"},
	}

	txt, err := NewText(0, 0, "Hi", font, yellow)
	if err != nil {
		t.Fatalf("NewText() error = %v", err)
	}
	layer, err := txt.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	wantOn := [][2]int{{0, 0}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}, {1, 3}}
	on := map[[2]int]bool{}
	for _, rc := range wantOn {
		on[rc] = true
	}
	for row := 0; row < 2; row++ {
		for col := 0; col < 4; col++ {
			c, set := layer.At(row, col)
			if on[[2]int{row, col}] {
				if !set || c != yellow {
					t.Errorf("cell (%d, %d) = %+v set=%v, want yellow", row, col, c, set)
				}
			} else if set {
				t.Errorf("cell (%d, %d) set, want transparent", row, col)
			}
		}
	}
}

func TestNewTextMissingGlyph(t *testing.T) {
	font := fakeFont{'a': {"#"}}
	if _, err := NewText(0, 0, "ab", font, color.RGBA{A: 255}); !errors.Is(err, glyph.ErrNotFound) {
		t.Errorf("NewText() error = %v, want glyph.ErrNotFound", err)
	}
}

func TestNewTextBuiltinFont(t *testing.T) {
	txt, err := NewText(0, 0, "42", glyph.Builtin(), color.RGBA{R: 255, A: 255})
	if err != nil {
		t.Fatalf("NewText() error = %v", err)
	}
	if bb := txt.MatrixBounds(); bb.Width != 8 || bb.Height != 5 {
		t.Errorf("MatrixBounds() size = %dx%d, want 8x5", bb.Width, bb.Height)
	}
}

func TestNewImageNativeSize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 6, 4))
	el := NewImage(2, 1, src, 0, 0)

	want := geometry.NewRectInt(2, 1, 6, 4)
	if got := el.MatrixBounds(); got != want {
		t.Errorf("MatrixBounds() = %+v, want %+v", got, want)
	}
}

func TestNewImageOnlyWidthGivesSquare(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 20, 10))
	el := NewImage(0, 0, src, 8, 0)

	if bb := el.MatrixBounds(); bb.Width != 8 || bb.Height != 8 {
		t.Errorf("MatrixBounds() size = %dx%d, want 8x8", bb.Width, bb.Height)
	}
}

func TestImageRenderAllCellsSet(t *testing.T) {
	c := color.RGBA{R: 1, G: 2, B: 3, A: 128}
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.SetRGBA(x, y, c)
		}
	}

	layer, err := NewImage(0, 0, src, 0, 0).Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			got, set := layer.At(row, col)
			if !set {
				t.Fatalf("cell (%d, %d) transparent, want set", row, col)
			}
			if got != c {
				t.Errorf("cell (%d, %d) = %+v, want %+v", row, col, got, c)
			}
		}
	}
}

func TestSetMatrixOriginKeepsSize(t *testing.T) {
	el := NewImage(1, 1, image.NewRGBA(image.Rect(0, 0, 4, 3)), 0, 0)
	el.SetMatrixOrigin(geometry.PointInt{X: 9, Y: 7})

	want := geometry.NewRectInt(9, 7, 4, 3)
	if got := el.MatrixBounds(); got != want {
		t.Errorf("MatrixBounds() after move = %+v, want %+v", got, want)
	}
}
