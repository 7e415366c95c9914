package glyph

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// alphaThreshold is the minimum 16-bit alpha for an antialiased glyph
// sample to count as an "on" LED.
const alphaThreshold = 0x8000

// FaceSource adapts a font.Face into a bit-grid glyph source by
// thresholding the rasterized coverage mask. All glyphs share the
// face's line height so that concatenated text keeps one baseline.
type FaceSource struct {
	face   font.Face
	ascent int
	height int
}

// NewFaceSource wraps an already-loaded face.
func NewFaceSource(face font.Face) *FaceSource {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	return &FaceSource{
		face:   face,
		ascent: ascent,
		height: ascent + m.Descent.Ceil(),
	}
}

// Basic returns a source backed by the fixed 7x13 face shipped with
// golang.org/x/image. Useful as a default when no font file is
// configured.
func Basic() *FaceSource {
	return NewFaceSource(basicfont.Face7x13)
}

// LoadTTF parses a TrueType font file and rasterizes it at sizePx
// pixels per em.
func LoadTTF(path string, sizePx float64) (*FaceSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return NewFaceSource(face), nil
}

// Glyph rasterizes r and thresholds its coverage mask into a bitmap of
// the glyph's advance width and the face's line height.
func (s *FaceSource) Glyph(r rune) (Bitmap, error) {
	dot := fixed.P(0, s.ascent)
	dr, mask, maskp, advance, ok := s.face.Glyph(dot, r)
	if !ok {
		return Bitmap{}, fmt.Errorf("%w: %q", ErrNotFound, r)
	}

	width := advance.Ceil()
	if width <= 0 {
		width = dr.Dx()
	}
	b := NewBitmap(width, s.height)
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		if y < 0 || y >= s.height {
			continue
		}
		for x := dr.Min.X; x < dr.Max.X; x++ {
			if x < 0 || x >= width {
				continue
			}
			_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
			if a >= alphaThreshold {
				b.Set(x, y)
			}
		}
	}
	return b, nil
}
