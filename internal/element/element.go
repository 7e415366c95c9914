// Package element defines the visual objects composed onto the matrix:
// bitmap-font text and raster images.
package element

import (
	"image/color"

	"matrix-editor/internal/matrix"
	"matrix-editor/pkg/colorutil"
	"matrix-editor/pkg/geometry"
)

// Element is a visual object that knows its own size and position in
// grid coordinates and renders itself into a sparse color grid on
// demand.
type Element interface {
	// Render produces a sparse grid sized exactly to the element's
	// matrix bounding box. Cells the element does not cover hold the
	// transparent sentinel.
	Render() (*matrix.Layer, error)

	// MatrixBounds is the authoritative position and size in
	// matrix-space cells.
	MatrixBounds() geometry.RectInt

	// DisplayBounds is the derived display-space box. It is recomputed
	// by the surface through the coordinate mapper and never mutated
	// independently.
	DisplayBounds() geometry.RectInt

	// Outline is the color used to draw the element's selection box.
	Outline() color.RGBA

	// SetMatrixOrigin moves the element. Size is unchanged. Only the
	// owning surface calls this.
	SetMatrixOrigin(p geometry.PointInt)

	// SetDisplayBounds stores the mapper-derived display box. Only the
	// owning surface calls this.
	SetDisplayBounds(r geometry.RectInt)
}

// Box carries the bounding boxes and outline color shared by all
// element variants. Embed it and set its bounds at construction.
type Box struct {
	matrixBB  geometry.RectInt
	displayBB geometry.RectInt
	outline   color.RGBA
}

// NewBox creates a Box at the given matrix-space position and size
// with a random outline color.
func NewBox(x, y, width, height int) Box {
	return Box{
		matrixBB: geometry.NewRectInt(x, y, width, height),
		outline:  colorutil.RandomOutline(),
	}
}

// MatrixBounds returns the matrix-space bounding box.
func (b *Box) MatrixBounds() geometry.RectInt { return b.matrixBB }

// DisplayBounds returns the display-space bounding box.
func (b *Box) DisplayBounds() geometry.RectInt { return b.displayBB }

// Outline returns the selection outline color.
func (b *Box) Outline() color.RGBA { return b.outline }

// SetMatrixOrigin replaces the matrix bounding box with one at the new
// origin and the same size.
func (b *Box) SetMatrixOrigin(p geometry.PointInt) {
	b.matrixBB = b.matrixBB.WithOrigin(p)
}

// SetDisplayBounds replaces the display bounding box.
func (b *Box) SetDisplayBounds(r geometry.RectInt) {
	b.displayBB = r
}
