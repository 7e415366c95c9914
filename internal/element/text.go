package element

import (
	"fmt"
	"image/color"

	"matrix-editor/internal/glyph"
	"matrix-editor/internal/matrix"
)

// Text renders a string in a bitmap font with one solid color. The
// string and font are fixed at construction; replacing content means
// replacing the element.
type Text struct {
	Box
	text  string
	src   glyph.Source
	color color.RGBA
}

// NewText creates a text element at matrix cell (x, y). Glyph bitmaps
// concatenate left to right with no added spacing beyond the widths
// the font supplies; the bounding box is sum-of-widths × max-height.
// A character without a glyph fails with glyph.ErrNotFound.
func NewText(x, y int, text string, src glyph.Source, c color.RGBA) (*Text, error) {
	width, height, err := measure(text, src)
	if err != nil {
		return nil, err
	}
	return &Text{
		Box:   NewBox(x, y, width, height),
		text:  text,
		src:   src,
		color: c,
	}, nil
}

// String returns the rendered text.
func (t *Text) String() string { return t.text }

// Color returns the text color.
func (t *Text) Color() color.RGBA { return t.color }

// Render rasterizes the string: every on bit becomes the text color,
// every off bit stays transparent. Glyphs are re-read from the source
// on each call.
func (t *Text) Render() (*matrix.Layer, error) {
	bb := t.MatrixBounds()
	layer, err := matrix.NewLayer(bb.Height, bb.Width)
	if err != nil {
		return nil, err
	}

	penX := 0
	for _, r := range t.text {
		bm, err := t.src.Glyph(r)
		if err != nil {
			return nil, fmt.Errorf("text %q: %w", t.text, err)
		}
		for y := 0; y < bm.Height; y++ {
			for x := 0; x < bm.Width; x++ {
				if !bm.On(x, y) {
					continue
				}
				if err := layer.Set(y, penX+x, t.color); err != nil {
					return nil, err
				}
			}
		}
		penX += bm.Width
	}
	return layer, nil
}

func measure(text string, src glyph.Source) (width, height int, err error) {
	for _, r := range text {
		bm, err := src.Glyph(r)
		if err != nil {
			return 0, 0, fmt.Errorf("text %q: %w", text, err)
		}
		width += bm.Width
		if bm.Height > height {
			height = bm.Height
		}
	}
	if width == 0 || height == 0 {
		return 0, 0, fmt.Errorf("text %q renders to an empty bitmap", text)
	}
	return width, height, nil
}
