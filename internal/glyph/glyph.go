// Package glyph decodes characters into fixed bit grids for rendering
// text on the matrix.
package glyph

import (
	"errors"
)

// ErrNotFound reports a character with no glyph in the source. Text
// rendering propagates it rather than substituting a blank.
var ErrNotFound = errors.New("glyph: no glyph for character")

// Bitmap is a width×height on/off grid for one character.
type Bitmap struct {
	Width  int
	Height int
	bits   []bool
}

// NewBitmap creates an all-off bitmap.
func NewBitmap(width, height int) Bitmap {
	return Bitmap{Width: width, Height: height, bits: make([]bool, width*height)}
}

// On returns true if the bit at (x, y) is set. Out-of-range positions
// are off.
func (b Bitmap) On(x, y int) bool {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return false
	}
	return b.bits[y*b.Width+x]
}

// Set turns on the bit at (x, y). Out-of-range positions are ignored.
func (b *Bitmap) Set(x, y int) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.bits[y*b.Width+x] = true
}

// Source produces glyph bitmaps for characters. Implementations must
// return an error wrapping ErrNotFound for characters they cannot
// decode.
type Source interface {
	Glyph(r rune) (Bitmap, error)
}
