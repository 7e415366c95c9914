// Package surface orchestrates the layer stack, elements, and
// coordinate mapping behind the matrix emulator.
package surface

import (
	"fmt"
	"image/color"
	"sync"

	"matrix-editor/internal/compose"
	"matrix-editor/internal/coords"
	"matrix-editor/internal/element"
	"matrix-editor/internal/matrix"
	"matrix-editor/pkg/geometry"
)

// entry pairs an element with its matrix-sized layer and cached render
// patch. Keeping the pair in one slice preserves the element↔layer
// index correspondence across inserts and removes.
type entry struct {
	el    element.Element
	patch *matrix.Layer // render output sized to the element's bounds
}

// Surface owns the composited scene: background, elements, their
// layers, and the coordinate mapper. All operations run under one
// lock; callers on the display front-end's event loop see a
// single-threaded surface.
type Surface struct {
	mu      sync.Mutex
	rows    int
	cols    int
	mapper  coords.Mapper
	stack   *compose.Stack
	entries []entry
	frame   *matrix.Grid
}

// New creates a surface with an opaque background of the given color.
func New(rows, cols int, background color.RGBA, mapper coords.Mapper) (*Surface, error) {
	bg, err := matrix.NewGrid(rows, cols, background)
	if err != nil {
		return nil, err
	}
	stack, err := compose.NewStack(bg)
	if err != nil {
		return nil, err
	}
	return &Surface{
		rows:   rows,
		cols:   cols,
		mapper: mapper,
		stack:  stack,
		frame:  bg.Clone(),
	}, nil
}

// Rows returns the matrix row count.
func (s *Surface) Rows() int { return s.rows }

// Cols returns the matrix column count.
func (s *Surface) Cols() int { return s.cols }

// Mapper returns the coordinate mapper in use.
func (s *Surface) Mapper() coords.Mapper { return s.mapper }

// Len returns the number of elements.
func (s *Surface) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Element returns the element at the given ordinal index.
func (s *Surface) Element(index int) (element.Element, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.entries) {
		return nil, fmt.Errorf("%w: element %d of %d", compose.ErrIndexOutOfRange, index, len(s.entries))
	}
	return s.entries[index].el, nil
}

// AddElement renders the element, stacks its layer on top, and
// recomposites. It returns the element's ordinal index. Indices are
// ordinal, not stable: removing an element shifts every later index
// down by one.
func (s *Surface) AddElement(el element.Element) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	patch, err := el.Render()
	if err != nil {
		return 0, err
	}
	layer, err := s.blit(patch, el.MatrixBounds())
	if err != nil {
		return 0, err
	}

	s.stack.Push(layer)
	s.entries = append(s.entries, entry{el: el, patch: patch})
	el.SetDisplayBounds(s.mapper.MatrixToDisplay(el.MatrixBounds()))

	if err := s.recomposite(s.fullRegion()); err != nil {
		return 0, err
	}
	return len(s.entries) - 1, nil
}

// MoveElement repositions an element's bounding-box origin, re-blits
// its cached patch, and recomposites the union of the old and new
// boxes. A failed index check leaves all state unchanged. Moving does
// not re-render content; only position changes.
func (s *Surface) MoveElement(index int, origin geometry.PointInt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("%w: element %d of %d", compose.ErrIndexOutOfRange, index, len(s.entries))
	}

	e := s.entries[index]
	oldBB := e.el.MatrixBounds()
	e.el.SetMatrixOrigin(origin)

	layer, err := s.blit(e.patch, e.el.MatrixBounds())
	if err != nil {
		e.el.SetMatrixOrigin(oldBB.Origin())
		return err
	}
	if err := s.stack.Replace(index, layer); err != nil {
		e.el.SetMatrixOrigin(oldBB.Origin())
		return err
	}
	e.el.SetDisplayBounds(s.mapper.MatrixToDisplay(e.el.MatrixBounds()))

	return s.recomposite(oldBB.Union(e.el.MatrixBounds()))
}

// RemoveElement deletes the element and its layer in lockstep. Indices
// of later elements shift down by one.
func (s *Surface) RemoveElement(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("%w: element %d of %d", compose.ErrIndexOutOfRange, index, len(s.entries))
	}
	removed := s.entries[index].el.MatrixBounds()
	if err := s.stack.Remove(index); err != nil {
		return err
	}
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	return s.recomposite(removed)
}

// ReplaceElement swaps the element at index for one with new content,
// re-rendering from scratch. The replacement keeps the layer position
// in the stacking order.
func (s *Surface) ReplaceElement(index int, el element.Element) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("%w: element %d of %d", compose.ErrIndexOutOfRange, index, len(s.entries))
	}

	patch, err := el.Render()
	if err != nil {
		return err
	}
	layer, err := s.blit(patch, el.MatrixBounds())
	if err != nil {
		return err
	}

	old := s.entries[index].el.MatrixBounds()
	if err := s.stack.Replace(index, layer); err != nil {
		return err
	}
	s.entries[index] = entry{el: el, patch: patch}
	el.SetDisplayBounds(s.mapper.MatrixToDisplay(el.MatrixBounds()))
	return s.recomposite(old.Union(el.MatrixBounds()))
}

// FillBackground floods the background layer and recomposites.
func (s *Surface) FillBackground(c color.RGBA) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stack.Background().Fill(c)
	return s.recomposite(s.fullRegion())
}

// Frame returns the current fully-resolved grid. The caller must treat
// it as read-only; it is replaced wholesale on the next recomposite.
func (s *Surface) Frame() *matrix.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// ElementAt returns the index of the topmost element whose bounding
// box contains the matrix-space cell, or false if the cell is bare
// background.
func (s *Surface) ElementAt(p geometry.PointInt) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].el.MatrixBounds().Contains(p) {
			return i, true
		}
	}
	return 0, false
}

// blit positions a render patch inside a matrix-sized layer. Cells
// falling off the grid are skipped, not errors: partially off-grid
// content is clipped.
func (s *Surface) blit(patch *matrix.Layer, bb geometry.RectInt) (*matrix.Layer, error) {
	layer, err := matrix.NewLayer(s.rows, s.cols)
	if err != nil {
		return nil, err
	}
	for y := 0; y < patch.Rows(); y++ {
		for x := 0; x < patch.Cols(); x++ {
			c, ok := patch.At(y, x)
			if !ok {
				continue
			}
			row, col := bb.Y+y, bb.X+x
			if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
				continue
			}
			if err := layer.Set(row, col, c); err != nil {
				return nil, err
			}
		}
	}
	return layer, nil
}

// recomposite refreshes the frame over region. The region is an
// optimization only; compositing the full grid is always equally
// correct.
func (s *Surface) recomposite(region geometry.RectInt) error {
	return s.stack.CompositeInto(s.frame, region)
}

func (s *Surface) fullRegion() geometry.RectInt {
	return geometry.NewRectInt(0, 0, s.cols, s.rows)
}
