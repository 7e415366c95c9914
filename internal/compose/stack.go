// Package compose merges the background grid and element layers into a
// single visible frame.
package compose

import (
	"errors"
	"fmt"
	"image/color"

	"matrix-editor/internal/matrix"
	"matrix-editor/pkg/geometry"
)

// ErrIndexOutOfRange reports a layer ordinal outside the stack.
var ErrIndexOutOfRange = errors.New("compose: layer index out of range")

// Stack is an ordered pile of sparse layers over an always-opaque
// background grid. Layer i corresponds to element i in the owning
// surface; that correspondence is maintained on every push and remove.
type Stack struct {
	background *matrix.Grid
	layers     []*matrix.Layer
}

// NewStack creates a stack over the given background.
func NewStack(background *matrix.Grid) (*Stack, error) {
	if background == nil {
		return nil, errors.New("compose: nil background grid")
	}
	return &Stack{background: background}, nil
}

// Background returns the background grid.
func (s *Stack) Background() *matrix.Grid { return s.background }

// Len returns the number of element layers, excluding the background.
func (s *Stack) Len() int { return len(s.layers) }

// Push appends a layer at the top of the stack.
func (s *Stack) Push(layer *matrix.Layer) {
	s.layers = append(s.layers, layer)
}

// Replace swaps the layer at index without disturbing ordering.
func (s *Stack) Replace(index int, layer *matrix.Layer) error {
	if index < 0 || index >= len(s.layers) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(s.layers))
	}
	s.layers[index] = layer
	return nil
}

// Remove deletes the layer at index; layers above shift down by one.
func (s *Stack) Remove(index int) error {
	if index < 0 || index >= len(s.layers) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(s.layers))
	}
	s.layers = append(s.layers[:index], s.layers[index+1:]...)
	return nil
}

// colorAt resolves the visible color of one cell: the topmost layer
// with a set cell wins; otherwise the background shows through. The
// background is always opaque, so resolution never fails.
func (s *Stack) colorAt(row, col int) (color.RGBA, error) {
	for i := len(s.layers) - 1; i >= 0; i-- {
		if c, ok := s.layers[i].At(row, col); ok {
			return c, nil
		}
	}
	return s.background.At(row, col)
}

// CompositeInto resolves every cell of region into dst, which must
// have the background's dimensions. The region is clipped to the grid,
// so callers may pass the union of stale and fresh bounding boxes
// without clamping.
func (s *Stack) CompositeInto(dst *matrix.Grid, region geometry.RectInt) error {
	if dst.Rows() != s.background.Rows() || dst.Cols() != s.background.Cols() {
		return fmt.Errorf("compose: destination %dx%d does not match background %dx%d",
			dst.Rows(), dst.Cols(), s.background.Rows(), s.background.Cols())
	}

	grid := geometry.NewRectInt(0, 0, s.background.Cols(), s.background.Rows())
	clipped := region.Intersect(grid)
	for row := clipped.Y; row < clipped.Y+clipped.Height; row++ {
		for col := clipped.X; col < clipped.X+clipped.Width; col++ {
			c, err := s.colorAt(row, col)
			if err != nil {
				return err
			}
			if err := dst.Set(row, col, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// Composite resolves the full grid into a fresh frame.
func (s *Stack) Composite() (*matrix.Grid, error) {
	frame := s.background.Clone()
	full := geometry.NewRectInt(0, 0, s.background.Cols(), s.background.Rows())
	if err := s.CompositeInto(frame, full); err != nil {
		return nil, err
	}
	return frame, nil
}
