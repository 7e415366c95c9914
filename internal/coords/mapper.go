// Package coords converts between matrix-space cell coordinates and
// display-space pixel coordinates.
//
// Matrix space is measured in whole grid cells; display space is
// measured in physical pixels of the rendering surface. One cell
// occupies pixelSize pixels followed by pitch pixels of gap, so the
// cell-to-pixel step is pixelSize+pitch in both axes.
package coords

import (
	"fmt"

	"matrix-editor/pkg/geometry"
)

// Mapper is a pure bidirectional transform between the two coordinate
// spaces. The zero value is not usable; construct with NewMapper.
type Mapper struct {
	pixelSize int
	pitch     int
	fwd       geometry.AffineTransform
	inv       geometry.AffineTransform
}

// NewMapper creates a mapper for the given LED diameter and inter-LED
// gap, both in display pixels.
func NewMapper(pixelSize, pitch int) (Mapper, error) {
	if pixelSize <= 0 {
		return Mapper{}, fmt.Errorf("coords: pixel size must be positive, got %d", pixelSize)
	}
	if pitch < 0 {
		return Mapper{}, fmt.Errorf("coords: pitch must not be negative, got %d", pitch)
	}
	step := float64(pixelSize + pitch)
	fwd := geometry.Scale(step, step)
	inv, ok := fwd.Inverse()
	if !ok {
		return Mapper{}, fmt.Errorf("coords: step %v is not invertible", step)
	}
	return Mapper{pixelSize: pixelSize, pitch: pitch, fwd: fwd, inv: inv}, nil
}

// PixelSize returns the LED diameter in display pixels.
func (m Mapper) PixelSize() int { return m.pixelSize }

// Pitch returns the inter-LED gap in display pixels.
func (m Mapper) Pitch() int { return m.pitch }

// Step returns the display distance between adjacent cell origins.
func (m Mapper) Step() int { return m.pixelSize + m.pitch }

// MatrixToDisplay converts a matrix-space bounding box to display
// space. Origin and extent both scale by the cell step.
func (m Mapper) MatrixToDisplay(bb geometry.RectInt) geometry.RectInt {
	step := m.Step()
	return geometry.RectInt{
		X:      bb.X * step,
		Y:      bb.Y * step,
		Width:  bb.Width * step,
		Height: bb.Height * step,
	}
}

// DisplayToMatrix converts a display-space point to a real-valued
// matrix coordinate. Snapping to a cell index is an explicit policy
// choice left to the caller (see geometry.Point2D.Truncate).
func (m Mapper) DisplayToMatrix(p geometry.Point2D) geometry.Point2D {
	return m.inv.Apply(p)
}
